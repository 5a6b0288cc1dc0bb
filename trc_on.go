//go:build asn1_debug

package asn1pkix

/*
trc_on.go enables debug logging through the environment in builds
made with the asn1_debug tag.
*/

import (
	"log/slog"
	"os"
)

/*
EnvDebugVar names the environment variable read at startup by builds
made with the asn1_debug tag. Its value is a list of event names as
accepted by [ParseEventType], e.g.:

	ASN1PKIX_DEBUG=decode,resolve

Records of the named events are written to standard error.

Use sparingly in high-volume/performance-sensitive scenarios.
*/
const EnvDebugVar = "ASN1PKIX_DEBUG"

func initDebug() {
	mask := ParseEventType(os.Getenv(EnvDebugVar))
	if mask == EventNone {
		return
	}

	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	SetLogger(slog.New(NewEventFilter(h, mask)))
}
