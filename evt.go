package asn1pkix

/*
evt.go contains EventType constants which label the log records
emitted by this package.
*/

import (
	"log/slog"
	"strings"
)

/*
EventType describes a specific kind of logged event. Every record
written by this package carries its EventType as the "event"
attribute, which allows a [log/slog.Handler] to filter by kind.
*/
type EventType int

const (
	EventNone EventType = 0  // NO events
	EventAll  EventType = 31 // ALL events
)

const (
	EventRegistry EventType = 1 << iota //  1: Registry insertion and freezing
	EventCompose                        //  2: Module composition
	EventResolve                        //  4: Open type resolution
	EventDecode                         //  8: Decoding
	EventEncode                         // 16: Encoding
)

var eventNames = map[EventType]string{
	EventRegistry: "registry",
	EventCompose:  "compose",
	EventResolve:  "resolve",
	EventDecode:   "decode",
	EventEncode:   "encode",
}

/*
String returns the pipe-delimited names of the events set within the
receiver instance, e.g.: "decode|resolve".
*/
func (r EventType) String() string {
	if r == EventNone {
		return "none"
	}

	var names []string
	for ev := EventRegistry; ev <= EventEncode; ev <<= 1 {
		if r.Is(ev) {
			names = append(names, eventNames[ev])
		}
	}
	return join(names, "|")
}

/*
Is returns a Boolean value indicative of ev being set within the
receiver instance.
*/
func (r EventType) Is(ev EventType) bool { return r&ev != 0 }

/*
LogValue implements [log/slog.LogValuer].
*/
func (r EventType) LogValue() slog.Value { return slog.StringValue(r.String()) }

/*
ParseEventType returns the [EventType] named by s, a list of event
names delimited by commas or pipes, e.g.: "decode,resolve". The name
"all" selects every event. Unknown names are ignored.
*/
func ParseEventType(s string) (ev EventType) {
	for _, n := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '|' }) {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "all" {
			return EventAll
		}
		for k, v := range eventNames {
			if v == n {
				ev |= k
			}
		}
	}
	return
}
