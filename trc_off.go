//go:build !asn1_debug

package asn1pkix

func initDebug() {}
