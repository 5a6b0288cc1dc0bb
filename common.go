package asn1pkix

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"encoding/hex"
	"strconv"
	"strings"
)

/*
official import aliases.
*/
var (
	itoa   func(int) string              = strconv.Itoa
	atoi   func(string) (int, error)     = strconv.Atoi
	uc     func(string) string           = strings.ToUpper
	join   func([]string, string) string = strings.Join
	spl    func(string, string) []string = strings.Split
	hexstr func([]byte) string           = hex.EncodeToString
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

/*
tagString returns a short human readable form of a class and tag pair,
e.g.: "[3]" or "[UNIVERSAL 16]", for use in error messages.
*/
func tagString(class, tag int) string {
	if class == ClassContextSpecific {
		return "[" + itoa(tag) + "]"
	} else if class == ClassUniversal {
		if name, ok := TagNames[tag]; ok {
			return name
		}
	}
	return "[" + ClassNames[class] + " " + itoa(tag) + "]"
}
