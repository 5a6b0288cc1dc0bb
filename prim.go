package asn1pkix

/*
prim.go contains the content codec for primitive types. Element
framing and most DER content checks are delegated to cryptobyte; the
content of an implicitly tagged primitive is reframed under its
UNIVERSAL tag before being handed over.
*/

import (
	encoding_asn1 "encoding/asn1"
	"math/big"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

const (
	utcTimeLayout         = "060102150405Z0700"
	generalizedTimeLayout = "20060102150405Z0700"
)

/*
reframe returns content wrapped in a fresh element bearing tag.
*/
func reframe(tag asn1.Tag, content []byte) cryptobyte.String {
	b := cryptobyte.NewBuilder(make([]byte, 0, len(content)+6))
	b.AddASN1(tag, func(c *cryptobyte.Builder) { c.AddBytes(content) })
	out, _ := b.Bytes()
	return cryptobyte.String(out)
}

/*
contentOf returns the content octets of the single element produced
by f.
*/
func contentOf(f cryptobyte.BuilderContinuation) ([]byte, error) {
	b := cryptobyte.NewBuilder(nil)
	f(b)
	full, err := b.Bytes()
	if err != nil {
		return nil, err
	}

	var content cryptobyte.String
	var tag asn1.Tag
	s := cryptobyte.String(full)
	if !s.ReadAnyASN1(&content, &tag) {
		return nil, mkerr("internal framing error")
	}
	return []byte(content), nil
}

/*
decodePrimitive returns the [Value] of kind k held by content. The
error, if any, describes a non-DER or otherwise invalid content.
*/
func decodePrimitive(k Kind, content []byte) (v Value, err error) {
	s := reframe(asn1.Tag(universalTags[k]), content)

	switch k {
	case KindBoolean:
		var b bool
		if !s.ReadASN1Boolean(&b) {
			err = mkerr("BOOLEAN must be one octet, 0x00 or 0xFF")
		}
		v = Boolean(b)
	case KindInteger:
		n := new(big.Int)
		if !s.ReadASN1Integer(n) {
			err = mkerr("INTEGER is empty or not minimally encoded")
		}
		v = Integer{n}
	case KindEnumerated:
		var n int
		if !s.ReadASN1Enum(&n) {
			err = mkerr("ENUMERATED is empty, not minimally encoded or too large")
		}
		v = Enumerated(n)
	case KindBitString:
		var bs encoding_asn1.BitString
		if !s.ReadASN1BitString(&bs) {
			err = mkerr("BIT STRING has invalid or non-zero padding")
		}
		v = BitString{Bytes: append([]byte(nil), bs.Bytes...), BitLength: bs.BitLength}
	case KindOctetString:
		v = OctetString(append([]byte(nil), content...))
	case KindNull:
		if len(content) != 0 {
			err = mkerr("NULL must be empty")
		}
		v = Null{}
	case KindOID:
		v, err = parseObjectIdentifier(content)
	case KindUTCTime, KindGeneralizedTime:
		v, err = decodeTime(k, s, content)
	default:
		if k.IsString() {
			v, err = decodeString(k, content)
		} else {
			err = mkerr("not a primitive kind: " + k.String())
		}
	}

	return
}

func decodeTime(k Kind, s cryptobyte.String, content []byte) (v Value, err error) {
	var t time.Time
	want, ok := 15, false
	if k == KindUTCTime {
		want = 13
		ok = s.ReadASN1UTCTime(&t)
	} else {
		ok = s.ReadASN1GeneralizedTime(&t)
	}

	// DER: seconds present, no fraction, UTC only
	if !ok || len(content) != want || content[len(content)-1] != 'Z' {
		err = mkerr(k.String() + " is not of the form " + generalizedOrUTC(k))
		return
	}

	v = Time{kind: k, t: t.UTC()}
	return
}

func generalizedOrUTC(k Kind) string {
	if k == KindUTCTime {
		return "YYMMDDHHMMSSZ"
	}
	return "YYYYMMDDHHMMSSZ"
}

func decodeString(k Kind, content []byte) (v Value, err error) {
	var text string
	switch k {
	case KindUniversalString:
		if len(content)%4 != 0 {
			return nil, mkerr("UniversalString length is not a multiple of four")
		}
		runes := make([]rune, 0, len(content)/4)
		for i := 0; i < len(content); i += 4 {
			r := rune(content[i])<<24 | rune(content[i+1])<<16 | rune(content[i+2])<<8 | rune(content[i+3])
			runes = append(runes, r)
		}
		text = string(runes)
		for _, r := range runes {
			if !utf8.ValidRune(r) {
				return nil, mkerr("UniversalString holds an invalid character")
			}
		}
	case KindBMPString:
		if len(content)%2 != 0 {
			return nil, mkerr("BMPString length is not a multiple of two")
		}
		runes := make([]rune, 0, len(content)/2)
		for i := 0; i < len(content); i += 2 {
			runes = append(runes, rune(content[i])<<8|rune(content[i+1]))
		}
		for _, r := range runes {
			if !utf8.ValidRune(r) {
				return nil, mkerr("BMPString holds a surrogate code unit")
			}
		}
		text = string(runes)
	default:
		text = string(content)
		if err = checkCharset(k, text); err != nil {
			return
		}
	}

	v = String{kind: k, text: text}
	return
}

/*
checkCharset returns an error if text holds a character outside the
set permitted by string kind k.
*/
func checkCharset(k Kind, text string) error {
	var ok func(rune) bool
	switch k {
	case KindUTF8String, KindUniversalString:
		if !utf8.ValidString(text) {
			return mkerr(k.String() + " is not valid UTF-8")
		}
		return nil
	case KindBMPString:
		ok = func(r rune) bool { return r <= 0xFFFF && utf8.ValidRune(r) }
	case KindNumericString:
		ok = func(r rune) bool { return r == ' ' || ('0' <= r && r <= '9') }
	case KindPrintableString:
		ok = isPrintable
	case KindIA5String:
		ok = func(r rune) bool { return r < 0x80 }
	case KindVisibleString:
		ok = func(r rune) bool { return 0x20 <= r && r <= 0x7e }
	case KindTeletexString:
		return nil
	default:
		return mkerr("not a string kind: " + k.String())
	}

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size <= 1 || !ok(r) {
			return mkerr(k.String() + " holds an invalid character at position " + itoa(i))
		}
		i += size
	}
	return nil
}

func isPrintable(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		return true
	}
	switch r {
	case ' ', '\'', '(', ')', '+', ',', '-', '.', '/', ':', '=', '?':
		return true
	}
	return false
}

/*
encodePrimitive returns the DER content octets of v, which must be of
kind k.
*/
func encodePrimitive(k Kind, v Value) (content []byte, err error) {
	if v.Kind() != k {
		return nil, mkerr("cannot encode " + v.Kind().String() + " as " + k.String())
	}

	switch tv := v.(type) {
	case Boolean:
		content, err = contentOf(func(b *cryptobyte.Builder) { b.AddASN1Boolean(bool(tv)) })
	case Integer:
		content, err = contentOf(func(b *cryptobyte.Builder) { b.AddASN1BigInt(tv.Big()) })
	case Enumerated:
		content, err = contentOf(func(b *cryptobyte.Builder) { b.AddASN1Enum(int64(tv)) })
	case BitString:
		content, err = encodeBitString(tv)
	case OctetString:
		content = append([]byte(nil), tv...)
	case Null:
		content = []byte{}
	case ObjectIdentifier:
		if tv.IsZero() {
			err = mkerr("empty OBJECT IDENTIFIER")
		}
		content = tv.Bytes()
	case String:
		content, err = encodeString(tv)
	case Time:
		content, err = encodeTime(tv)
	default:
		err = mkerr("cannot encode " + v.Kind().String() + " as a primitive")
	}

	return
}

func encodeBitString(bs BitString) ([]byte, error) {
	if bs.BitLength < 0 || len(bs.Bytes) != (bs.BitLength+7)/8 {
		return nil, mkerr("BIT STRING length " + itoa(bs.BitLength) +
			" does not match " + itoa(len(bs.Bytes)) + " octets")
	}

	pad := (8 - bs.BitLength%8) % 8
	content := make([]byte, 1, len(bs.Bytes)+1)
	content[0] = byte(pad)
	content = append(content, bs.Bytes...)
	if pad > 0 {
		content[len(content)-1] &^= byte(1<<pad - 1)
	}
	return content, nil
}

func encodeString(s String) ([]byte, error) {
	if err := checkCharset(s.kind, s.text); err != nil {
		return nil, err
	}

	switch s.kind {
	case KindUniversalString:
		out := make([]byte, 0, len(s.text)*4)
		for _, r := range s.text {
			out = append(out, byte(r>>24), byte(r>>16), byte(r>>8), byte(r))
		}
		return out, nil
	case KindBMPString:
		out := make([]byte, 0, len(s.text)*2)
		for _, r := range s.text {
			out = append(out, byte(r>>8), byte(r))
		}
		return out, nil
	}

	return []byte(s.text), nil
}

func encodeTime(t Time) ([]byte, error) {
	u := t.t.UTC()
	if t.kind == KindUTCTime {
		if u.Year() < 1950 || u.Year() >= 2050 {
			return nil, mkerr("year " + itoa(u.Year()) + " cannot be expressed as UTCTime")
		}
		return []byte(u.Format(utcTimeLayout)), nil
	} else if u.Year() < 0 || u.Year() > 9999 {
		return nil, mkerr("year " + itoa(u.Year()) + " cannot be expressed as GeneralizedTime")
	}
	return []byte(u.Format(generalizedTimeLayout)), nil
}
