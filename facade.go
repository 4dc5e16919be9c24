package tlog

import "sync/atomic"

// Facade: global access (Singleton + Facade).
var global atomic.Pointer[Logger]

// SetGlobal sets the global Logger (Singleton setter).
func SetGlobal(l *Logger) { global.Store(l) }

// L returns the global Logger; panic if unset to surface misconfig early.
func L() *Logger {
	l := global.Load()
	if l == nil {
		panic("tlog: global logger not set. Build one and call tlog.SetGlobal(...)")
	}
	return l
}

// Facade helpers using the global logger.
// Usage: tlog.Apply(tlog.Info).Str("listening on ").Int(8080).Apply(tlog.Endl)

func Apply(ms ...Modifier) *Logger { return L().Apply(ms...) }
func Append(v Value) *Logger       { return L().Append(v) }
func Appendv(vs ...Value) *Logger  { return L().Appendv(vs...) }
func Str(s string) *Logger         { return L().Str(s) }
func Int(v int64) *Logger          { return L().Int(v) }
func Uint(v uint64) *Logger        { return L().Uint(v) }
func Float(v float64) *Logger      { return L().Float(v) }
func Bool(v bool) *Logger          { return L().Bool(v) }
func Char(c rune) *Logger          { return L().Char(c) }
func Flush()                       { L().Flush() }
func FlushAll()                    { L().FlushAll() }
