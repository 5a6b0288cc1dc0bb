package asn1pkix

import (
	"testing"
	"time"
)

func TestCheckCharset(t *testing.T) {
	for idx, tc := range []struct {
		k    Kind
		text string
		ok   bool
	}{
		{KindNumericString, "0123 456", true},
		{KindNumericString, "12a", false},
		{KindPrintableString, "Example Org. (Test) +1-555/0?", true},
		{KindPrintableString, "under_score", false},
		{KindPrintableString, "a*b", false},
		{KindIA5String, "user@example.com", true},
		{KindIA5String, "naïve", false},
		{KindVisibleString, "visible ~", true},
		{KindVisibleString, "tab\there", false},
		{KindBMPString, "日本", true},
		{KindBMPString, "\U0001F600", false},
		{KindUTF8String, "\U0001F600", true},
		{KindUTF8String, "\xff", false},
		{KindTeletexString, "\xff\x00", true},
		{KindInteger, "1", false},
	} {
		if err := checkCharset(tc.k, tc.text); (err == nil) != tc.ok {
			t.Fatalf("%s failed [case %d, %s %q]: %v", t.Name(), idx, tc.k, tc.text, err)
		}
	}
}

func TestEncodeTime(t *testing.T) {
	for idx, tc := range []struct {
		v    Time
		want string
		ok   bool
	}{
		{NewUTCTime(time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC)), "991231235959Z", true},
		{NewUTCTime(time.Date(2049, 1, 2, 3, 4, 5, 0, time.UTC)), "490102030405Z", true},
		{NewUTCTime(time.Date(1949, 1, 1, 0, 0, 0, 0, time.UTC)), "", false},
		{NewGeneralizedTime(time.Date(2050, 6, 1, 12, 0, 0, 999, time.UTC)), "20500601120000Z", true},
		{NewGeneralizedTime(time.Date(2021, 4, 13, 21, 54, 35, 0, time.FixedZone("CEST", 7200))), "20210413195435Z", true},
	} {
		got, err := encodeTime(tc.v)
		if (err == nil) != tc.ok {
			t.Fatalf("%s failed [case %d]: %v", t.Name(), idx, err)
		} else if string(got) != tc.want {
			t.Fatalf("%s failed [case %d]:\n\twant: %s\n\tgot:  %s", t.Name(), idx, tc.want, got)
		}
	}
}

func TestEncodePrimitive_zeroOID(t *testing.T) {
	if _, err := encodePrimitive(KindOID, ObjectIdentifier{}); err == nil {
		t.Fatalf("%s failed: expected error for empty OID", t.Name())
	}
}
