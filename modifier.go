package tlog

import "github.com/petermattis/goid"

// Modifier is a single-action token applied to the logger inside one chained
// expression. The set is closed: Level, Tag (and the fixed severity tags),
// the base selectors and Endl. Tokens carry no state beyond what they set.
type Modifier interface {
	// applyTo runs with the logger's lock held.
	applyTo(l *Logger)
}

// Level sets the calling goroutine's record verbosity level.
type Level uint32

func (lv Level) applyTo(l *Logger) { l.record().Level = uint32(lv) }

// Tag sets the calling goroutine's record tag. Tag("debug") marks the record
// as a debug message.
type Tag string

func (t Tag) applyTo(l *Logger) {
	r := l.record()
	r.Tag = string(t)
	r.Debug = t == "debug"
}

// Fixed severity tags.
const (
	Error   = Tag("error")
	Warning = Tag("warning")
	Info    = Tag("info")
	Debug   = Tag("debug")
)

type endl struct{}

func (endl) applyTo(l *Logger) {
	l.record().Message += "\n"
	l.flushLocked(goid.Get())
}

// Endl appends a line terminator and flushes the calling goroutine's record.
var Endl Modifier = endl{}
