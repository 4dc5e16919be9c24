package tlog

import "time"

// Record is the per-goroutine accumulation buffer: the not-yet-emitted
// message and its metadata. Formatters receive a copy; the stored record
// lives only between the owning goroutine's first touch and its next flush.
type Record struct {
	At       time.Time // set when the record is created
	Tag      string    // "error", "warning", "info", "debug" or caller-defined; empty means untagged
	Message  string    // accumulated body
	Level    uint32    // verbosity level of this record
	Debug    bool      // true iff Tag == "debug"; gated by EnableDebug
	ShowTime bool      // render the timestamp block
}
