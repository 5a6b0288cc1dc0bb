package asn1pkix

/*
log.go contains the package logger and the helpers used to emit
events through it.
*/

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
)

var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	SetLogger(nil)
	initDebug()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
SetLogger assigns the package-wide logger used by registries, the
composer and the codec when no per-call logger is supplied (see
[WithLogger]). A nil logger discards all records, which is also the
initial state.
*/
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger()
	}
	pkgLogger.Store(l)
}

/*
Logger returns the package-wide logger.
*/
func Logger() *slog.Logger { return pkgLogger.Load() }

type loggerKey struct{}

/*
ContextWithLogger returns a copy of ctx carrying l, for use with
[WithContext].
*/
func ContextWithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

/*
LoggerFromContext returns the logger carried by ctx, or the package
logger if ctx carries none.
*/
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return Logger()
}

func logEvent(l *slog.Logger, lvl slog.Level, ev EventType, msg string, args ...any) {
	if l == nil {
		l = Logger()
	}
	if !l.Enabled(context.Background(), lvl) {
		return
	}
	l.Log(context.Background(), lvl, msg, append([]any{slog.Any("event", ev)}, args...)...)
}

func debugEvent(l *slog.Logger, ev EventType, msg string, args ...any) {
	logEvent(l, slog.LevelDebug, ev, msg, args...)
}

func warnEvent(l *slog.Logger, ev EventType, msg string, args ...any) {
	logEvent(l, slog.LevelWarn, ev, msg, args...)
}

/*
NewEventFilter returns a [log/slog.Handler] which passes to h only the
records whose "event" attribute intersects mask. Records bearing no
event are dropped.
*/
func NewEventFilter(h slog.Handler, mask EventType) slog.Handler {
	return &eventFilter{Handler: h, mask: mask}
}

type eventFilter struct {
	slog.Handler
	mask EventType
}

func (r *eventFilter) Handle(ctx context.Context, rec slog.Record) error {
	var ev EventType
	rec.Attrs(func(a slog.Attr) bool {
		if a.Key != "event" {
			return true
		}
		ev, _ = a.Value.Any().(EventType)
		return false
	})

	if !r.mask.Is(ev) {
		return nil
	}
	return r.Handler.Handle(ctx, rec)
}

func (r *eventFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &eventFilter{Handler: r.Handler.WithAttrs(attrs), mask: r.mask}
}

func (r *eventFilter) WithGroup(name string) slog.Handler {
	return &eventFilter{Handler: r.Handler.WithGroup(name), mask: r.mask}
}
