package tlog

import (
	"testing"
	"time"

	"github.com/trickstertwo/xclock"
)

func TestDefaultFormatterLayout(t *testing.T) {
	// Not parallel: the clock is global.
	old := xclock.Default()
	defer xclock.SetDefault(old)
	ft := time.Date(2025, 6, 7, 8, 9, 10, 0, time.UTC)
	xclock.SetDefault(xclock.NewFrozen(ft))

	out := &stubOutput{}
	l, err := NewBuilder().WithOutput(out.deliver).Build()
	if err != nil {
		t.Fatalf("build logger: %v", err)
	}

	l.Apply(Level(3), Tag("net")).Str("up")
	l.Flush()

	want := "   [ 2025-06-07 08:09:10 ] [ net ] up"
	got := out.snapshot()
	if len(got) != 1 || got[0] != want {
		t.Fatalf("formatted output:\ngot  %q\nwant %q", got, want)
	}
}

func TestFormatterTimestampHidden(t *testing.T) {
	t.Parallel()

	out := &stubOutput{}
	l, err := NewBuilder().WithOutput(out.deliver).Build()
	if err != nil {
		t.Fatalf("build logger: %v", err)
	}

	l.ShowTimestamp(false)
	l.Str("bare")
	l.Flush()

	got := out.snapshot()
	if len(got) != 1 || got[0] != "bare" {
		t.Fatalf("output = %q, want bare", got)
	}
}

func TestFormatterUntagged(t *testing.T) {
	// Not parallel: the clock is global.
	old := xclock.Default()
	defer xclock.SetDefault(old)
	ft := time.Date(2025, 6, 7, 8, 9, 10, 0, time.UTC)
	xclock.SetDefault(xclock.NewFrozen(ft))

	out := &stubOutput{}
	l, err := NewBuilder().WithOutput(out.deliver).Build()
	if err != nil {
		t.Fatalf("build logger: %v", err)
	}

	l.Str("no tag block")
	l.Flush()

	want := "[ 2025-06-07 08:09:10 ] no tag block"
	got := out.snapshot()
	if len(got) != 1 || got[0] != want {
		t.Fatalf("formatted output:\ngot  %q\nwant %q", got, want)
	}
}
