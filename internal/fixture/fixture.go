/*
Package fixture reads the base64 test vectors used throughout this
module. Vectors are kept as text, either as a bare base64 string or as
the body of a PEM block, with or without its BEGIN and END lines.
*/
package fixture

import (
	"encoding/base64"
	"encoding/pem"
	"strings"
)

/*
Decode returns the octets encoded within text.
*/
func Decode(text string) ([]byte, error) {
	if block, _ := pem.Decode([]byte(text)); block != nil {
		return block.Bytes, nil
	}
	return base64.StdEncoding.DecodeString(strings.Join(strings.Fields(text), ""))
}

/*
MustDecode is like [Decode] but panics on error.
*/
func MustDecode(text string) []byte {
	b, err := Decode(text)
	if err != nil {
		panic("fixture: " + err.Error())
	}
	return b
}
