package asn1pkix

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

import (
	"errors"
	"fmt"
)

var mkerr func(string) error = errors.New

/*
Error categories. Every error returned by this package wraps exactly one
of these, so callers can classify failures with [errors.Is].
*/
var (
	// ErrMalformedEncoding reports a tag or length mismatch, truncated
	// input, trailing data or a non-canonical (non-DER) form.
	ErrMalformedEncoding error = mkerr("malformed encoding")

	// ErrConstraintViolation reports a size or value range constraint
	// that was not satisfied, whether on decode or on encode.
	ErrConstraintViolation error = mkerr("constraint violation")

	// ErrMaxDepth reports input nested deeper than the configured limit.
	// It also matches ErrMalformedEncoding.
	ErrMaxDepth error = fmt.Errorf("maximum nesting depth exceeded: %w", ErrMalformedEncoding)

	// ErrSchema reports a value whose shape does not match the schema
	// it is being encoded or resolved against.
	ErrSchema error = mkerr("schema mismatch")

	// ErrRegistryConflict reports two modules registering different
	// schemas for one OID under ConflictFail.
	ErrRegistryConflict error = mkerr("registry conflict")

	// ErrLoadOrder reports a module composed before a module it requires.
	ErrLoadOrder error = mkerr("module load order")

	// ErrUnknownDomain reports a delta targeting a domain that no
	// previously composed module owns.
	ErrUnknownDomain error = mkerr("unknown registry domain")

	// ErrDuplicateModule reports a module name composed twice.
	ErrDuplicateModule error = mkerr("duplicate module")
)

/*
CodecError describes a decode, encode or resolution failure. The Err
field always holds one of the error categories declared by this package.
*/
type CodecError struct {
	Op       string           // "decode", "encode" or "resolve"
	Path     string           // dotted field path, e.g. tbsCertificate.extensions[2].extnValue
	Offset   int              // byte offset into the top-level input, or -1
	Expected string           // what the schema called for, if applicable
	Found    string           // what the input held, if applicable
	OID      ObjectIdentifier // discriminating OID for open-type failures
	Detail   string
	Err      error
}

/*
Error returns the string representation of the receiver instance.
*/
func (r *CodecError) Error() string {
	b := newStrBuilder()
	b.WriteString(uc(r.Op))
	b.WriteString(" ERROR: ")
	b.WriteString(r.Err.Error())
	if r.Detail != "" {
		b.WriteString(": " + r.Detail)
	}
	if r.Expected != "" || r.Found != "" {
		b.WriteString(" (expected " + r.Expected + ", found " + r.Found + ")")
	}
	if r.Path != "" {
		b.WriteString(" at " + r.Path)
	}
	if r.Offset >= 0 {
		b.WriteString(" offset " + itoa(r.Offset))
	}
	if !r.OID.IsZero() {
		b.WriteString(" [" + r.OID.String() + "]")
	}
	return b.String()
}

/*
Unwrap returns the error category wrapped by the receiver instance.
*/
func (r *CodecError) Unwrap() error { return r.Err }

/*
types which implement the error interface.
*/
type (
	composeErr struct {
		kind error
		msg  string
	}
	schemaErr struct{ e error }
)

func composeErrorf(kind error, m ...any) error { return composeErr{kind, mkstr(m...)} }
func schemaErrorf(m ...any) error              { return schemaErr{mkerr(mkstr(m...))} }

func (r composeErr) Error() string { return `COMPOSE ERROR: ` + r.kind.Error() + `: ` + r.msg }
func (r composeErr) Unwrap() error { return r.kind }
func (r schemaErr) Error() string  { return `SCHEMA ERROR: ` + r.e.Error() }
func (r schemaErr) Unwrap() error  { return ErrSchema }

/*
mkstr concatenates parts into a single message. It replaces the
fmt-style formatting for the handful of types found in error messages.
*/
func mkstr(parts ...any) string {
	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(itoa(v))
		case error:
			b.WriteString(v.Error())
		case fmt.Stringer:
			b.WriteString(v.String())
		case nil:
			b.WriteString("<nil>")
		default:
			b.WriteString("<not supported>")
		}
	}
	return b.String()
}
