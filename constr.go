package asn1pkix

/*
constr.go contains constraint and constraint group components which
serve to implement ASN.1's subtype constraints for schema values.
*/

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

/*
MAX stands for an unbounded upper limit in a [Size] constraint, as in
SIZE (1..MAX).
*/
const MAX = -1

/*
Lengthy is qualified through any type which bears the "Len() int" method.
*/
type Lengthy interface {
	Len() int
}

/*
Constraint implements a closure function signature meant to enforce the
constraining of decoded values, and of values about to be encoded.
*/
type Constraint func(Value) error

/*
ConstraintGroup implements a wrapper of slices of [Constraint]. Slice
instances are evaluated in the order in which they are provided.
*/
type ConstraintGroup []Constraint

/*
Constrain returns an error following the execution of all [Constraint]
instances against x which reside within the receiver instance.
*/
func (r ConstraintGroup) Constrain(x Value) (err error) {
	for i := 0; i < len(r) && err == nil; i++ {
		if r[i] != nil {
			err = r[i](x)
		}
	}

	return
}

/*
Size returns a [Constraint] checking that the logical length of a value
lies between min and max inclusive. Use [MAX] for an unbounded max.

Length is counted in octets for OCTET STRING, bits for BIT STRING,
characters for character strings and elements for SEQUENCE OF / SET OF.
*/
func Size(min, max int) Constraint {
	return func(v Value) (err error) {
		l, ok := v.(Lengthy)
		if !ok {
			return mkerr("SIZE constraint applied to " + v.Kind().String())
		}

		if n := l.Len(); n < min || (max != MAX && n > max) {
			upper := "MAX"
			if max != MAX {
				upper = itoa(max)
			}
			err = mkerr("size " + itoa(n) + " is out of bounds [" + itoa(min) + ".." + upper + "]")
		}
		return
	}
}

/*
FixedSize returns a [Size] constraint with equal bounds, as in SIZE (n).
*/
func FixedSize(n int) Constraint { return Size(n, n) }

/*
ValueRange returns a [Constraint] checking that an INTEGER or ENUMERATED
value lies between min and max inclusive.
*/
func ValueRange[T constraints.Integer](min, max T) Constraint {
	lo, hi := bigOf(min), bigOf(max)
	return func(v Value) (err error) {
		var n *big.Int
		switch tv := v.(type) {
		case Integer:
			n = tv.Big()
		case Enumerated:
			n = big.NewInt(int64(tv))
		default:
			return mkerr("value range constraint applied to " + v.Kind().String())
		}

		if n.Cmp(lo) < 0 || n.Cmp(hi) > 0 {
			err = mkerr("value " + n.String() + " is out of range [" +
				lo.String() + ".." + hi.String() + "]")
		}
		return
	}
}

/*
ValueMin returns a [Constraint] checking that an INTEGER or ENUMERATED
value is no less than min, as in INTEGER (0..MAX).
*/
func ValueMin[T constraints.Integer](min T) Constraint {
	lo := bigOf(min)
	return func(v Value) (err error) {
		var n *big.Int
		switch tv := v.(type) {
		case Integer:
			n = tv.Big()
		case Enumerated:
			n = big.NewInt(int64(tv))
		default:
			return mkerr("value range constraint applied to " + v.Kind().String())
		}

		if n.Cmp(lo) < 0 {
			err = mkerr("value " + n.String() + " is out of range [" + lo.String() + "..MAX]")
		}
		return
	}
}

func bigOf[T constraints.Integer](x T) *big.Int {
	var zero T
	if zero-1 < zero { // signed
		return big.NewInt(int64(x))
	}
	return new(big.Int).SetUint64(uint64(x))
}

/*
Union returns a [Constraint] satisfied when at least one of cs is
satisfied, as in (SIZE (4) | SIZE (16)).
*/
func Union(cs ...Constraint) Constraint {
	return func(v Value) error {
		for _, c := range cs {
			if c(v) == nil {
				return nil
			}
		}
		return mkerr("value satisfies none of " + itoa(len(cs)) + " alternative constraints")
	}
}

/*
Intersection returns a [Constraint] satisfied when every one of cs is
satisfied.
*/
func Intersection(cs ...Constraint) Constraint { return ConstraintGroup(cs).Constrain }

/*
From returns a [Constraint] checking that a character string holds only
characters found within allowed, as in FROM ("0".."9" | "-").
*/
func From(allowed string) Constraint {
	set := make(map[rune]struct{})
	for _, r := range allowed {
		set[r] = struct{}{}
	}

	return func(v Value) error {
		s, ok := v.(String)
		if !ok {
			return mkerr("FROM constraint applied to " + v.Kind().String())
		}
		for i, r := range []rune(s.text) {
			if _, ok := set[r]; !ok {
				return mkerr("character at position " + itoa(i) + " is not permitted")
			}
		}
		return nil
	}
}
