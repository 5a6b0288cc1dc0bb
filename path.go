package asn1pkix

/*
path.go contains the path selector used to reach into decoded trees.
*/

import "strings"

/*
Select returns the node of tree v found at path, which uses the form
of [CodecError.Path], e.g.:

	tbsCertificate.extensions[2].extnValue

Field names select components of a *[Sequence], and bracketed indices
select elements of a *[Collection]. A [Chosen] or *[Resolved] node met
along the way is stepped through, so the alternative names of a CHOICE
never appear in a path. The node at the end of the path is returned
as-is.

The Boolean is false when any step cannot be taken, or when the node
found is absent.
*/
func Select(v Value, path string) (Value, bool) {
	for path != "" && v != nil {
		switch path[0] {
		case '.':
			path = path[1:]
			continue
		case '[':
			end := strings.IndexByte(path, ']')
			if end < 0 {
				return nil, false
			}
			col, ok := stepThrough(v).(*Collection)
			i, err := atoi(path[1:end])
			if !ok || err != nil {
				return nil, false
			}
			v, path = col.At(i), path[end+1:]
		default:
			n := strings.IndexAny(path, ".[")
			if n < 0 {
				n = len(path)
			}
			seq, ok := stepThrough(v).(*Sequence)
			if !ok {
				return nil, false
			}
			v, _ = seq.Get(path[:n])
			path = path[n:]
		}
	}

	return v, v != nil
}

func stepThrough(v Value) Value {
	for {
		switch tv := v.(type) {
		case Chosen:
			v = tv.Value
		case *Resolved:
			v = tv.Value
		default:
			return v
		}
	}
}
