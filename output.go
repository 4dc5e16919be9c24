package tlog

import (
	"io"
	"os"
)

// OutputFunc delivers fully formatted text to a live destination. It is
// called once per visible flushed record, while the logger's lock is held.
type OutputFunc func(text string)

// Default output: standard output, delivered immediately (os.Stdout is
// unbuffered).
func consoleOutput(text string) {
	io.WriteString(os.Stdout, text)
}
