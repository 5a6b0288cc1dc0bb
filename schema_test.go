package asn1pkix

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/cryptobyte/asn1"
)

func TestSchema_tagging(t *testing.T) {
	for _, tc := range []struct {
		name     string
		s        *Schema
		outer    asn1.Tag
		explicit bool
	}{
		{"universal", IntegerType(), asn1.INTEGER, false},
		{"implicit primitive", IntegerType().Implicit(2), asn1.Tag(2).ContextSpecific(), false},
		{"implicit constructed", SequenceOfType("X", NullType()).Implicit(1), asn1.Tag(1).ContextSpecific().Constructed(), false},
		{"explicit", IntegerType().Explicit(2), asn1.Tag(2).ContextSpecific().Constructed(), true},
		{"implicit choice", ChoiceType("C", Alt("a", NullType())).Implicit(4), asn1.Tag(4).ContextSpecific().Constructed(), true},
		{"implicit open", OpenType(testDomain, "x").Implicit(0), asn1.Tag(0).ContextSpecific().Constructed(), true},
		{"application", BooleanType().ImplicitClass(ClassApplication, 3), asn1.Tag(3) | 0x40, false},
	} {
		got, ok := tc.s.outerTag()
		if !ok || got != tc.outer {
			t.Fatalf("%s failed [%s]: want %#x, got %#x", t.Name(), tc.name, tc.outer, got)
		}
		if _, _, explicit, _ := tc.s.Tagging(); explicit != tc.explicit {
			t.Fatalf("%s failed [%s explicit]: want %t", t.Name(), tc.name, tc.explicit)
		}
	}
}

func TestSchema_immutable(t *testing.T) {
	base := IntegerType()
	tagged := base.Named("Version").Explicit(0)

	if _, _, _, ok := base.Tagging(); ok {
		t.Fatalf("%s failed: base schema was tagged", t.Name())
	} else if base.Name() != "" || tagged.String() != "Version" {
		t.Fatalf("%s failed [names]: %q %q", t.Name(), base.Name(), tagged)
	} else if base.String() != "INTEGER" {
		t.Fatalf("%s failed [kind name]: %s", t.Name(), base)
	}

	require.Panics(t, func() { tagged.Implicit(1) }, "retagging must panic")
	require.Panics(t, func() { base.Implicit(31) }, "high tag numbers must panic")
	require.Panics(t, func() { StringType(KindInteger) }, "non-string kinds must panic")
}

func TestSchema_matches(t *testing.T) {
	choice := ChoiceType("Time",
		Alt("utcTime", UTCTimeType()),
		Alt("generalTime", GeneralizedTimeType()),
	)
	x400 := AnyType().Implicit(3)

	for _, tc := range []struct {
		s    *Schema
		tag  asn1.Tag
		want bool
	}{
		{choice, asn1.UTCTime, true},
		{choice, asn1.GeneralizedTime, true},
		{choice, asn1.INTEGER, false},
		{AnyType(), asn1.SEQUENCE, true},
		{OpenType(testDomain, "x"), asn1.BOOLEAN, true},
		{OpenOctetStringType(testDomain, "x"), asn1.OCTET_STRING, true},
		{OpenOctetStringType(testDomain, "x"), asn1.SEQUENCE, false},
		{x400, asn1.Tag(3).ContextSpecific(), true},
		{x400, asn1.Tag(3).ContextSpecific().Constructed(), true},
		{x400, asn1.Tag(2).ContextSpecific(), false},
	} {
		if got := tc.s.matches(tc.tag); got != tc.want {
			t.Fatalf("%s failed [%s / %#x]: want %t", t.Name(), tc.s, tc.tag, tc.want)
		}
	}
}

func TestSchema_accessors(t *testing.T) {
	f, ok := testExtension.Field("critical")
	require.True(t, ok)
	require.Equal(t, Boolean(false), f.Default)
	require.True(t, f.absentAllowed())

	_, ok = testExtension.Field("nothing")
	require.False(t, ok)
	require.Len(t, testExtension.Fields(), 3)

	ev, _ := testExtension.Field("extnValue")
	d, sib, carrier, ok := ev.Type.OpenDomain()
	require.True(t, ok)
	require.Equal(t, testDomain, d)
	require.Equal(t, "extnID", sib)
	require.Equal(t, CarrierOctetString, carrier)

	_, _, _, ok = IntegerType().OpenDomain()
	require.False(t, ok)

	col := SetOfType("S", OIDType())
	require.Equal(t, KindOID, col.Elem().Kind())
	require.Equal(t, KindSetOf, col.Kind())
}

func TestKind(t *testing.T) {
	if !KindBMPString.IsString() || KindUTCTime.IsString() {
		t.Fatalf("%s failed [IsString]", t.Name())
	} else if !KindGeneralizedTime.IsTime() || KindInteger.IsTime() {
		t.Fatalf("%s failed [IsTime]", t.Name())
	} else if Kind(200).String() != "INVALID" {
		t.Fatalf("%s failed [String]", t.Name())
	}
}
