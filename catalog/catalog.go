/*
Package catalog composes the schema modules of this repository into a
single, immutable [asn1pkix.Catalog].

Most callers need only [Default]:

	v, err := asn1pkix.Decode(der, rfc5280.Certificate,
		asn1pkix.WithOpenTypes(catalog.Default()))
*/
package catalog

import (
	"sync"

	"github.com/JesseCoretta/go-asn1pkix"
	"github.com/JesseCoretta/go-asn1pkix/rfc3874"
	"github.com/JesseCoretta/go-asn1pkix/rfc4055"
	"github.com/JesseCoretta/go-asn1pkix/rfc5280"
	"github.com/JesseCoretta/go-asn1pkix/rfc5652"
	"github.com/JesseCoretta/go-asn1pkix/rfc6484"
	"github.com/JesseCoretta/go-asn1pkix/rfc6494"
	"github.com/JesseCoretta/go-asn1pkix/rfc8520"
	"github.com/JesseCoretta/go-asn1pkix/rfc8737"
	"github.com/JesseCoretta/go-asn1pkix/rfc8995"
)

/*
Modules returns every module of this repository in load order. Each
module follows all of the modules it requires.
*/
func Modules() []asn1pkix.Module {
	return []asn1pkix.Module{
		rfc5280.Module,
		rfc4055.Module,
		rfc3874.Module,
		rfc5652.Module,
		rfc6484.Module,
		rfc6494.Module,
		rfc8520.Module,
		rfc8737.Module,
		rfc8995.Module,
	}
}

/*
Compose returns a new [asn1pkix.Catalog] built from [Modules].
*/
func Compose(opts ...asn1pkix.ComposeOption) (*asn1pkix.Catalog, error) {
	return asn1pkix.Compose(Modules(), opts...)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *asn1pkix.Catalog
)

/*
Default returns the shared [asn1pkix.Catalog] built from [Modules] under
[asn1pkix.ConflictFail]. It is composed once, on first use, and is safe
for concurrent use thereafter.

Default panics if the modules of this repository conflict.
*/
func Default() *asn1pkix.Catalog {
	defaultOnce.Do(func() {
		c, err := Compose(asn1pkix.WithConflictPolicy(asn1pkix.ConflictFail))
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
