package tlog

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// FileSink is the persistence capability behind file logging. Implementations
// are invoked while the logger's lock is held, so they need no synchronization
// of their own. Close must be safe to call when nothing is open.
type FileSink interface {
	Open(name string) error
	Write(text string)
	Close()
}

// fileOut is the default sink: a local text file opened in truncate/write
// mode, written unbuffered.
type fileOut struct {
	f *os.File
}

func (s *fileOut) Open(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrapf(err, "tlog: open log file %q", name)
	}
	s.f = f
	return nil
}

func (s *fileOut) Write(text string) {
	if s.f == nil {
		return
	}
	io.WriteString(s.f, text)
}

func (s *fileOut) Close() {
	if s.f != nil {
		s.f.Close()
		s.f = nil
	}
}
