// Package tlog is a goroutine-aware buffered logging façade. Each goroutine
// accumulates one message through chained appends, tags it with a severity
// and a verbosity level, and flushes it to the output sink and optionally a
// file sink. One mutex serializes all logging activity.
package tlog

import (
	"slices"
	"sync"

	"github.com/petermattis/goid"
	"github.com/trickstertwo/xclock"
)

// LevelAll is the sentinel ceiling: no record is suppressed by level.
const LevelAll = ^uint32(0)

type Logger struct {
	mu sync.Mutex

	// Replaceable capabilities; each has an in-package default.
	output    OutputFunc
	formatter FormatFunc
	file      FileSink

	logToFile bool
	logDebug  bool
	base      Base
	maxLevel  uint32

	// One record per live goroutine, keyed by goroutine id.
	records map[int64]*Record
}

// Factory: internal constructor.
func newLogger(cfg Config) *Logger {
	l := &Logger{
		output:    cfg.Output,
		formatter: cfg.Formatter,
		file:      cfg.File,
		logDebug:  cfg.Debug,
		base:      cfg.Base,
		maxLevel:  cfg.MaxLevel,
		records:   make(map[int64]*Record),
	}
	if l.output == nil {
		l.output = consoleOutput
	}
	if l.formatter == nil {
		l.formatter = formatRecord
	}
	if l.file == nil {
		l.file = &fileOut{}
	}
	return l
}

// record returns the calling goroutine's record, creating it if absent.
// Callers must hold l.mu.
func (l *Logger) record() *Record {
	id := goid.Get()
	r, ok := l.records[id]
	if !ok {
		r = &Record{At: xclock.Now(), ShowTime: true}
		l.records[id] = r
	}
	return r
}

// Append converts v per the current number base and appends its text to the
// calling goroutine's record. A zero Value appends nothing.
func (l *Logger) Append(v Value) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.appendLocked(v)
	return l
}

// Appendv appends a pre-built value sequence in order.
func (l *Logger) Appendv(vs ...Value) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, v := range vs {
		l.appendLocked(v)
	}
	return l
}

func (l *Logger) appendLocked(v Value) {
	r := l.record()
	switch v.Kind {
	case KindText:
		r.Message += v.Str
	case KindInt:
		r.Message += formatIntegral(uint64(v.Int), true, l.base)
	case KindUint:
		r.Message += formatIntegral(v.Uint, false, l.base)
	case KindFloat:
		r.Message += formatFloat(v.Float)
	case KindBool:
		if v.Bool {
			r.Message += "true"
		} else {
			r.Message += "false"
		}
	case KindChar:
		r.Message += string(v.Char)
	}
}

// Typed appends returning fluent chains.

func (l *Logger) Str(s string) *Logger    { return l.Append(VText(s)) }
func (l *Logger) Int(v int64) *Logger     { return l.Append(VInt(v)) }
func (l *Logger) Uint(v uint64) *Logger   { return l.Append(VUint(v)) }
func (l *Logger) Float(v float64) *Logger { return l.Append(VFloat(v)) }
func (l *Logger) Bool(v bool) *Logger     { return l.Append(VBool(v)) }

// Char appends one raw character, bypassing number-base conversion.
func (l *Logger) Char(c rune) *Logger { return l.Append(VChar(c)) }

// Apply runs modifier tokens against the logger, left to right, and returns
// it for chaining. Later tokens override earlier ones for the same setting
// within the same unflushed record.
func (l *Logger) Apply(ms ...Modifier) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range ms {
		m.applyTo(l)
	}
	return l
}

// SetTag sets the calling goroutine's record tag. The tag "debug" marks the
// record as a debug message, visible only while EnableDebug(true) is set.
func (l *Logger) SetTag(tag string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	r := l.record()
	r.Tag = tag
	r.Debug = tag == "debug"
}

// SetLevel sets the calling goroutine's record verbosity level.
func (l *Logger) SetLevel(level uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.record().Level = level
}

// ShowTimestamp sets whether the calling goroutine's record renders its
// timestamp block.
func (l *Logger) ShowTimestamp(show bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.record().ShowTime = show
}

// SetMaxLevel sets the shared verbosity ceiling. Records with a level above
// it are suppressed at flush time. Pass LevelAll to show every level.
func (l *Logger) SetMaxLevel(level uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.maxLevel = level
}

// EnableDebug sets the shared debug switch gating records tagged "debug".
func (l *Logger) EnableDebug(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logDebug = on
}

// SetBase sets the shared number base for subsequent integral appends by any
// goroutine.
func (l *Logger) SetBase(b Base) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.base = b
}

// SetOutput replaces the output sink. The callback runs while the logger's
// lock is held and must not call back into the logger. A nil callback is
// ignored.
func (l *Logger) SetOutput(fn OutputFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if fn != nil {
		l.output = fn
	}
}

// SetFormatter replaces the formatter. It must be pure: the Record it
// receives is a snapshot. A nil formatter is ignored.
func (l *Logger) SetFormatter(fn FormatFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if fn != nil {
		l.formatter = fn
	}
}

// SetFileSink replaces the file sink. The previous sink is not closed; call
// CloseFile first when swapping an open sink. A nil sink is ignored.
func (l *Logger) SetFileSink(s FileSink) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if s != nil {
		l.file = s
	}
}

// OpenFile closes any currently open log file, opens name anew and enables
// file logging. On failure file logging stays disabled and the error is
// returned; in-memory records are untouched.
func (l *Logger) OpenFile(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logToFile = false
	l.file.Close()
	if err := l.file.Open(name); err != nil {
		return err
	}
	l.logToFile = true
	return nil
}

// CloseFile disables file logging and closes the sink. No-op if already
// closed.
func (l *Logger) CloseFile() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logToFile = false
	l.file.Close()
}

// Flush renders and dispatches the calling goroutine's record, then removes
// it whether or not it was visible. Without a record it does nothing.
func (l *Logger) Flush() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.flushLocked(goid.Get())
}

// FlushAll flushes every goroutine's record in ascending goroutine-id order,
// removing each as it is processed. The sweep is one atomic lock hold: no
// append or flush can interleave mid-sweep.
func (l *Logger) FlushAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.flushAllLocked()
}

func (l *Logger) flushAllLocked() {
	ids := make([]int64, 0, len(l.records))
	for id := range l.records {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		l.flushLocked(id)
	}
}

func (l *Logger) flushLocked(id int64) {
	r, ok := l.records[id]
	if !ok {
		return
	}
	l.emitLocked(*r)
	delete(l.records, id)
}

// emitLocked dispatches one record snapshot. Output and file dispatch are
// independent: the file write cannot prevent output delivery.
func (l *Logger) emitLocked(r Record) {
	if !l.visibleLocked(r) {
		return
	}
	text := l.formatter(r)
	l.output(text)
	if l.logToFile {
		l.file.Write(text)
	}
}

func (l *Logger) visibleLocked(r Record) bool {
	return (l.logDebug || !r.Debug) && r.Level <= l.maxLevel
}

// Close flushes all outstanding records and closes the file sink. Call it on
// every exit path; the logger must not be used afterwards.
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.flushAllLocked()
	l.logToFile = false
	l.file.Close()
}
