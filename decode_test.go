package asn1pkix

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDecode_primitives(t *testing.T) {
	for idx, tc := range []struct {
		s    *Schema
		der  []byte
		want Value
	}{
		{BooleanType(), []byte{0x01, 0x01, 0xff}, Boolean(true)},
		{BooleanType(), []byte{0x01, 0x01, 0x00}, Boolean(false)},
		{IntegerType(), []byte{0x02, 0x02, 0x01, 0x2c}, NewInteger(300)},
		{IntegerType(), []byte{0x02, 0x01, 0xff}, NewInteger(-1)},
		{IntegerType(), []byte{0x02, 0x02, 0x00, 0x80}, NewInteger(128)},
		{EnumeratedType(), []byte{0x0a, 0x01, 0x03}, Enumerated(3)},
		{BitStringType(), []byte{0x03, 0x02, 0x07, 0x80}, BitString{Bytes: []byte{0x80}, BitLength: 1}},
		{BitStringType(), []byte{0x03, 0x01, 0x00}, BitString{Bytes: []byte{}, BitLength: 0}},
		{OctetStringType(), []byte{0x04, 0x03, 0x01, 0x02, 0x03}, OctetString{0x01, 0x02, 0x03}},
		{NullType(), []byte{0x05, 0x00}, Null{}},
		{OIDType(), []byte{0x06, 0x03, 0x2a, 0x03, 0x04}, testOIDA},
		{StringType(KindUTF8String), []byte("\x0c\x05caf\xc3\xa9"), mustString(t, KindUTF8String, "café")},
		{StringType(KindPrintableString), []byte("\x13\x02US"), mustString(t, KindPrintableString, "US")},
		{StringType(KindIA5String), []byte("\x16\x03a@b"), mustString(t, KindIA5String, "a@b")},
		{StringType(KindBMPString), []byte("\x1e\x04\x00h\x00i"), mustString(t, KindBMPString, "hi")},
		{StringType(KindUniversalString), []byte("\x1c\x08\x00\x00\x00h\x00\x00\x00i"), mustString(t, KindUniversalString, "hi")},
		{UTCTimeType(), []byte("\x17\x0d210413195435Z"), NewUTCTime(time.Date(2021, 4, 13, 19, 54, 35, 0, time.UTC))},
		{UTCTimeType(), []byte("\x17\x0d500101000000Z"), NewUTCTime(time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC))},
		{GeneralizedTimeType(), []byte("\x18\x0f29991231000000Z"), NewGeneralizedTime(time.Date(2999, 12, 31, 0, 0, 0, 0, time.UTC))},
		{AnyType(), []byte{0x30, 0x03, 0x02, 0x01, 0x05}, Raw{0x30, 0x03, 0x02, 0x01, 0x05}},
	} {
		got, err := Decode(tc.der, tc.s)
		if err != nil {
			t.Fatalf("%s failed [case %d decoding]: %v", t.Name(), idx, err)
		} else if !Equal(got, tc.want) {
			t.Fatalf("%s failed [case %d cmp.]:\n\twant: %s\n\tgot:  %s", t.Name(), idx, tc.want, got)
		}

		enc, err := Encode(got, tc.s)
		if err != nil {
			t.Fatalf("%s failed [case %d encoding]: %v", t.Name(), idx, err)
		} else if !bytes.Equal(enc, tc.der) {
			t.Fatalf("%s failed [case %d round trip]:\n\twant: %x\n\tgot:  %x", t.Name(), idx, tc.der, enc)
		}
	}
}

func TestDecode_nonDER(t *testing.T) {
	for _, tc := range []struct {
		name string
		s    *Schema
		der  []byte
	}{
		{"BOOLEAN TRUE not 0xFF", BooleanType(), []byte{0x01, 0x01, 0x01}},
		{"non-minimal INTEGER", IntegerType(), []byte{0x02, 0x02, 0x00, 0x01}},
		{"empty INTEGER", IntegerType(), []byte{0x02, 0x00}},
		{"long form short length", OctetStringType(), []byte{0x04, 0x81, 0x01, 0x00}},
		{"indefinite length", SequenceOfType("S", NullType()), []byte{0x30, 0x80, 0x05, 0x00, 0x00, 0x00}},
		{"BIT STRING padding", BitStringType(), []byte{0x03, 0x02, 0x07, 0x81}},
		{"UTCTime without seconds", UTCTimeType(), []byte("\x17\x0b2104131954Z")},
		{"UTCTime with offset", UTCTimeType(), []byte("\x17\x11210413195435+0100")},
		{"GeneralizedTime fraction", GeneralizedTimeType(), []byte("\x18\x1120210413195435.5Z")},
		{"PrintableString charset", StringType(KindPrintableString), []byte("\x13\x03a@b")},
		{"BMPString surrogate", StringType(KindBMPString), []byte{0x1e, 0x02, 0xd8, 0x00}},
		{"NULL with content", NullType(), []byte{0x05, 0x01, 0x00}},
		{"OID non-minimal arc", OIDType(), []byte{0x06, 0x03, 0x2a, 0x80, 0x01}},
		{"high tag number", OctetStringType(), []byte{0x1f, 0x81, 0x00, 0x00}},
		{"truncated", OctetStringType(), []byte{0x04, 0x05, 0x01}},
		{"empty input", NullType(), nil},
		{"tag mismatch", IntegerType(), []byte{0x04, 0x01, 0x00}},
		{"SET OF order", SetOfType("S", IntegerType()), []byte{0x31, 0x06, 0x02, 0x01, 0x02, 0x02, 0x01, 0x01}},
		{"encoded DEFAULT", testExtension, seqDER(oidDER(testOIDA), []byte{0x01, 0x01, 0x00}, tlv(0x04, []byte{0x05, 0x00}))},
		{"missing field", testAlgorithm, []byte{0x30, 0x00}},
		{"extra field", testAlgorithm, seqDER(oidDER(testOIDA), []byte{0x05, 0x00}, []byte{0x05, 0x00})},
		{"trailing data", NullType(), []byte{0x05, 0x00, 0x00}},
		{"two elements under EXPLICIT", IntegerType().Explicit(0), []byte{0xa0, 0x06, 0x02, 0x01, 0x01, 0x02, 0x01, 0x02}},
	} {
		v, err := Decode(tc.der, tc.s)
		if err == nil {
			t.Fatalf("%s failed [%s]: expected error, got %s", t.Name(), tc.name, v)
		} else if !errors.Is(err, ErrMalformedEncoding) {
			t.Fatalf("%s failed [%s]: wrong error category: %v", t.Name(), tc.name, err)
		} else if v != nil {
			t.Fatalf("%s failed [%s]: partial tree returned", t.Name(), tc.name)
		}
	}
}

func TestDecode_errorDetail(t *testing.T) {
	s := SequenceType("Outer",
		Required("version", IntegerType()),
		Required("items", SequenceOfType("Items", BooleanType())),
	)
	der := []byte{0x30, 0x0b, 0x02, 0x01, 0x01, 0x30, 0x06, 0x01, 0x01, 0xff, 0x01, 0x01, 0x07}

	_, err := Decode(der, s)
	var cerr *CodecError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, "decode", cerr.Op)
	require.Equal(t, "items[1]", cerr.Path)
	require.Equal(t, 10, cerr.Offset)
	require.Contains(t, err.Error(), "DECODE ERROR: malformed encoding")

	_, err = Decode([]byte{0x04, 0x01, 0x00}, IntegerType())
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, "INTEGER", cerr.Expected)
	require.Equal(t, "OCTET STRING", cerr.Found)
	require.Equal(t, 0, cerr.Offset)

	_, err = Decode([]byte{0x05, 0x00, 0x00}, NullType())
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, 2, cerr.Offset)
}

func TestDecode_constraints(t *testing.T) {
	s := SequenceType("Bounded",
		Required("digest", OctetStringType(FixedSize(4))),
		Required("flags", SetOfType("Flags", BooleanType(), Size(1, MAX))),
	)

	good := seqDER(tlv(0x04, []byte{1, 2, 3, 4}), tlv(0x31, []byte{0x01, 0x01, 0xff}))
	if _, err := Decode(good, s); err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	for _, bad := range [][]byte{
		seqDER(tlv(0x04, []byte{1, 2, 3}), tlv(0x31, []byte{0x01, 0x01, 0xff})),
		seqDER(tlv(0x04, []byte{1, 2, 3, 4}), tlv(0x31)),
	} {
		_, err := Decode(bad, s)
		if !errors.Is(err, ErrConstraintViolation) {
			t.Fatalf("%s failed: want constraint violation, got %v", t.Name(), err)
		}
	}
}

func nestedList(n int) (*Schema, []byte) {
	s, der := NullType(), []byte{0x05, 0x00}
	for i := 0; i < n; i++ {
		s = SequenceOfType("List", s)
		der = tlv(0x30, der)
	}
	return s, der
}

func TestDecode_maxDepth(t *testing.T) {
	s, der := nestedList(10)

	if _, err := Decode(der, s, WithMaxDepth(11)); err != nil {
		t.Fatalf("%s failed [at limit]: %v", t.Name(), err)
	}

	_, err := Decode(der, s, WithMaxDepth(10))
	if !errors.Is(err, ErrMaxDepth) || !errors.Is(err, ErrMalformedEncoding) {
		t.Fatalf("%s failed [over limit]: %v", t.Name(), err)
	}

	s, der = nestedList(DefaultMaxDepth)
	if _, err = Decode(der, s); !errors.Is(err, ErrMaxDepth) {
		t.Fatalf("%s failed [default limit]: %v", t.Name(), err)
	} else if _, err = Decode(der, s, WithMaxDepth(0), With(DefaultMaxDepth+1)); err != nil {
		t.Fatalf("%s failed [raised limit]: %v", t.Name(), err)
	}
}

func TestDecode_tagging(t *testing.T) {
	s := SequenceType("Tagged",
		Defaulted("version", IntegerType().Explicit(0), NewInteger(0)),
		Optional("id", OctetStringType().Implicit(1)),
		Required("time", ChoiceType("Time",
			Alt("utcTime", UTCTimeType()),
			Alt("generalTime", GeneralizedTimeType()),
		)),
		Optional("names", SequenceOfType("Names", StringType(KindIA5String)).Implicit(2)),
		Optional("other", AnyType().Implicit(3)),
	)

	der := seqDER(
		[]byte{0xa0, 0x03, 0x02, 0x01, 0x02},
		[]byte{0x81, 0x02, 0xab, 0xcd},
		[]byte("\x18\x0f20500101000000Z"),
		[]byte("\xa2\x05\x16\x03a.b"),
		[]byte{0xa3, 0x02, 0x05, 0x00},
	)

	v, err := Decode(der, s)
	require.NoError(t, err)

	want := NewSequence(
		FieldValue{Name: "version", Value: NewInteger(2)},
		FieldValue{Name: "id", Value: OctetString{0xab, 0xcd}},
		FieldValue{Name: "time", Value: Chosen{Name: "generalTime",
			Value: NewGeneralizedTime(time.Date(2050, 1, 1, 0, 0, 0, 0, time.UTC))}},
		FieldValue{Name: "names", Value: NewSequenceOf(mustString(t, KindIA5String, "a.b"))},
		FieldValue{Name: "other", Value: Raw{0xa3, 0x02, 0x05, 0x00}},
	)
	require.True(t, Equal(want, v), "got %s", v)

	enc, err := Encode(v, s)
	require.NoError(t, err)
	require.Equal(t, der, enc)

	// absent DEFAULT is implied
	short := seqDER([]byte("\x17\x0d210413195435Z"))
	v, err = Decode(short, s)
	require.NoError(t, err)

	fields := v.(*Sequence).Fields()
	require.Equal(t, "version", fields[0].Name)
	require.True(t, fields[0].Defaulted)
	require.True(t, Equal(NewInteger(0), fields[0].Value))
	_, present := v.(*Sequence).Get("id")
	require.False(t, present)

	enc, err = Encode(v, s)
	require.NoError(t, err)
	require.Equal(t, short, enc)
}

func TestDecode_openTypesRaw(t *testing.T) {
	params := seqDER(tlv(0x02, []byte{0x14}))
	der := seqDER(oidDER(testOIDA), params)

	v, err := Decode(der, testAlgorithm)
	require.NoError(t, err)

	p, ok := Select(v, "parameters")
	require.True(t, ok)
	u, ok := p.(*Unresolved)
	require.True(t, ok, "raw mode must leave open types unresolved")
	require.Equal(t, testOIDA, u.ID)
	require.Equal(t, params, u.Bytes)
	require.Equal(t, 7, u.off)

	ext := seqDER(oidDER(testOIDB), []byte{0x01, 0x01, 0xff}, tlv(0x04, []byte{0x05, 0x00}))
	v, err = Decode(ext, testExtension)
	require.NoError(t, err)

	p, _ = Select(v, "extnValue")
	u = p.(*Unresolved)
	require.Equal(t, []byte{0x05, 0x00}, u.Bytes, "octet carrier keeps the OCTET STRING content")
	require.Equal(t, 12, u.off)

	// the octet carrier requires an OCTET STRING
	bad := seqDER(oidDER(testOIDB), tlv(0x03, []byte{0x00}))
	_, err = Decode(bad, testExtension)
	require.ErrorIs(t, err, ErrMalformedEncoding)
}

func TestDecodePrefix(t *testing.T) {
	v, rest, err := DecodePrefix([]byte{0x05, 0x00, 0x02, 0x01, 0x07}, NullType())
	require.NoError(t, err)
	require.Equal(t, Null{}, v)
	require.Equal(t, []byte{0x02, 0x01, 0x07}, rest)

	_, _, err = DecodePrefix([]byte{0x05, 0x00}, nil)
	require.ErrorIs(t, err, ErrSchema)
}

/*
This example demonstrates decoding an AlgorithmIdentifier in raw mode,
in which the parameters are kept as opaque bytes.
*/
func ExampleDecode() {
	alg := SequenceType("AlgorithmIdentifier",
		Required("algorithm", OIDType()),
		Optional("parameters", OpenType(DomainAlgorithmParameters, "algorithm")),
	)

	// SEQUENCE { sha256WithRSAEncryption, NULL }
	der := []byte{0x30, 0x0d, 0x06, 0x09, 0x2a, 0x86, 0x48, 0x86,
		0xf7, 0x0d, 0x01, 0x01, 0x0b, 0x05, 0x00}

	v, err := Decode(der, alg)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v)
	// Output: {algorithm: 1.2.840.113549.1.1.11, parameters: <opaque 1.2.840.113549.1.1.11: 0500>}
}
