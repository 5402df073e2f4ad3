package ui

import (
	"strings"
	"testing"

	"cfront/internal/driver"
)

func TestProgressModelTracksEvents(t *testing.T) {
	m := NewProgressModel("tokenize", []string{"a.c", "b.c", "c.c"}, nil).(*progressModel)

	m.applyEvent(driver.Event{File: "a.c", Stage: driver.StageScan, Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "b.c", Stage: driver.StageScan, Status: driver.StatusError})
	m.applyEvent(driver.Event{File: "c.c", Stage: driver.StageScan, Status: driver.StatusWorking})
	m.applyEvent(driver.Event{File: "unknown.c", Status: driver.StatusDone})

	if got := m.finished(); got != 2 {
		t.Errorf("finished = %d, want 2", got)
	}
	view := m.View()
	for _, want := range []string{"[2/3]", "1 failed", "scanning", "a.c"} {
		if !strings.Contains(view, want) {
			t.Errorf("view misses %q:\n%s", want, view)
		}
	}
}

func TestProgressModelDone(t *testing.T) {
	m := NewProgressModel("check", []string{"x.c"}, nil).(*progressModel)
	_, cmd := m.Update(doneMsg{})
	if cmd == nil || !m.done {
		t.Fatal("doneMsg must finish the model")
	}
	if !strings.HasPrefix(stripANSI(m.View()), "done: check") {
		t.Errorf("view = %q", m.View())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("a/very/long/path.c", 10); !strings.HasSuffix(got, "...") || len(got) > 10 {
		t.Errorf("truncate long = %q", got)
	}
	if got := truncate("abcdef", 2); got != "ab" {
		t.Errorf("truncate tiny = %q", got)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && r == 'm':
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
