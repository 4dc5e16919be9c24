package tlog

import "strings"

// FormatFunc renders a record snapshot into its final text. Implementations
// must be pure: no shared state, no calls back into the logger.
type FormatFunc func(r Record) string

const timeLayout = "2006-01-02 15:04:05"

// Default format: the record level as that many leading spaces, the
// timestamp and tag blocks when present, then the body verbatim.
func formatRecord(r Record) string {
	var b strings.Builder
	b.Grow(int(r.Level) + len(r.Message) + 48)
	for i := uint32(0); i < r.Level; i++ {
		b.WriteByte(' ')
	}
	if r.ShowTime {
		b.WriteString("[ ")
		b.WriteString(r.At.Format(timeLayout))
		b.WriteString(" ] ")
	}
	if r.Tag != "" {
		b.WriteString("[ ")
		b.WriteString(r.Tag)
		b.WriteString(" ] ")
	}
	b.WriteString(r.Message)
	return b.String()
}
