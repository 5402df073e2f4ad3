package prof

import (
	"testing"

	"github.com/spf13/afero"
)

func TestSessionWritesProfiles(t *testing.T) {
	fsys := afero.NewMemMapFs()
	s, err := Start(fsys, Config{CPU: "/cpu.out", Mem: "/mem.out", Trace: "/trace.out"})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Stop(); err != nil {
		t.Fatal(err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
	for _, p := range []string{"/cpu.out", "/mem.out", "/trace.out"} {
		info, err := fsys.Stat(p)
		if err != nil {
			t.Fatalf("%s: %v", p, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", p)
		}
	}
}

func TestEmptyConfigIsNoop(t *testing.T) {
	s, err := Start(afero.NewMemMapFs(), Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Stop(); err != nil {
		t.Fatal(err)
	}
}

func TestStartFailsOnBadPath(t *testing.T) {
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())
	if _, err := Start(fsys, Config{CPU: "/cpu.out"}); err == nil {
		t.Fatal("expected error on read-only fs")
	}
}
