package asn1pkix

import (
	"errors"
	"testing"
)

func TestCodecError(t *testing.T) {
	for idx, tc := range []struct {
		err  *CodecError
		want string
	}{
		{
			&CodecError{Op: "decode", Offset: 2, Detail: "trailing data after top-level element", Err: ErrMalformedEncoding},
			"DECODE ERROR: malformed encoding: trailing data after top-level element offset 2",
		},
		{
			&CodecError{Op: "decode", Path: "tbsCertificate.version", Offset: 4,
				Expected: "[0]", Found: "INTEGER", Detail: "unexpected tag", Err: ErrMalformedEncoding},
			"DECODE ERROR: malformed encoding: unexpected tag (expected [0], found INTEGER) at tbsCertificate.version offset 4",
		},
		{
			&CodecError{Op: "resolve", Path: "extnValue", Offset: 17, OID: testOIDA,
				Detail: "size 31 is out of bounds [32..32]", Err: ErrConstraintViolation},
			"RESOLVE ERROR: constraint violation: size 31 is out of bounds [32..32] at extnValue offset 17 [1.2.3.4]",
		},
		{
			&CodecError{Op: "encode", Offset: -1, Err: ErrSchema},
			"ENCODE ERROR: schema mismatch",
		},
	} {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("%s failed [case %d]:\n\twant: %s\n\tgot:  %s", t.Name(), idx, tc.want, got)
		} else if !errors.Is(tc.err, tc.err.Err) {
			t.Fatalf("%s failed [case %d]: category not unwrapped", t.Name(), idx)
		}
	}
}

func TestErrorCategories(t *testing.T) {
	if !errors.Is(ErrMaxDepth, ErrMalformedEncoding) {
		t.Fatalf("%s failed [max depth]", t.Name())
	}

	err := composeErrorf(ErrLoadOrder, "module ", "b", " requires ", "a")
	if !errors.Is(err, ErrLoadOrder) || err.Error() != "COMPOSE ERROR: module load order: module b requires a" {
		t.Fatalf("%s failed [compose]: %v", t.Name(), err)
	}

	err = schemaErrorf("not a string kind: ", KindInteger)
	if !errors.Is(err, ErrSchema) || err.Error() != "SCHEMA ERROR: not a string kind: INTEGER" {
		t.Fatalf("%s failed [schema]: %v", t.Name(), err)
	}
}
