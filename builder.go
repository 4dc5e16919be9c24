package tlog

import (
	"github.com/pkg/errors"
	"github.com/trickstertwo/xclock"
)

// ErrInvalidBase is returned by Build for a Base outside Dec/Hex/Oct/Bin.
var ErrInvalidBase = errors.New("tlog: invalid number base")

// Config for constructing a Logger (Factory data structure). Zero-value
// fields fall back to the defaults: stdout output, the standard formatter, a
// local-file sink, decimal base, debug off. Note the MaxLevel zero value
// shows only level-0 records; pass LevelAll for no ceiling.
type Config struct {
	Output    OutputFunc
	Formatter FormatFunc
	File      FileSink
	MaxLevel  uint32
	Debug     bool
	Base      Base
	Clock     xclock.Clock // optional; defaults to xclock.System()
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{cfg: Config{MaxLevel: LevelAll}}
}

func (b *Builder) WithOutput(fn OutputFunc) *Builder {
	b.cfg.Output = fn
	return b
}

func (b *Builder) WithFormatter(fn FormatFunc) *Builder {
	b.cfg.Formatter = fn
	return b
}

func (b *Builder) WithFileSink(s FileSink) *Builder {
	b.cfg.File = s
	return b
}

func (b *Builder) WithMaxLevel(level uint32) *Builder {
	b.cfg.MaxLevel = level
	return b
}

func (b *Builder) WithDebug(on bool) *Builder {
	b.cfg.Debug = on
	return b
}

func (b *Builder) WithBase(base Base) *Builder {
	b.cfg.Base = base
	return b
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.cfg.Clock = c
	return b
}

// Build constructs the Logger (Factory + Builder).
func (b *Builder) Build() (*Logger, error) {
	switch b.cfg.Base {
	case Dec, Hex, Oct, Bin:
	default:
		return nil, errors.Wrapf(ErrInvalidBase, "base %d", b.cfg.Base)
	}
	return newLogger(b.cfg), nil
}
