package script

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/hostsim/internal/host"
)

func newTestState(t *testing.T, opts ...Option) (*State, *host.Simulator) {
	t.Helper()
	sim := host.New()
	s := NewState(sim, opts...)
	t.Cleanup(func() { s.Close() })
	return s, sim
}

func TestState_DoString(t *testing.T) {
	s, _ := newTestState(t)

	if err := s.DoString(`x = 1 + 2`); err != nil {
		t.Fatalf("DoString failed: %v", err)
	}
	if got := s.GetGlobal("x"); got != lua.LNumber(3) {
		t.Errorf("x = %v, want 3", got)
	}
}

func TestState_Sandbox(t *testing.T) {
	s, _ := newTestState(t)

	for _, name := range []string{"io", "os", "debug", "dofile", "loadfile", "load", "loadstring", "require"} {
		if s.GetGlobal(name) != lua.LNil {
			t.Errorf("%s should not be available", name)
		}
	}
	for _, name := range []string{"string", "table", "math", "pairs"} {
		if s.GetGlobal(name) == lua.LNil {
			t.Errorf("%s should be available", name)
		}
	}
}

func TestState_ScriptError(t *testing.T) {
	s, _ := newTestState(t)

	err := s.DoString(`error("boom")`)
	if !errors.Is(err, ErrScriptFailed) {
		t.Fatalf("expected ErrScriptFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error should carry the message: %v", err)
	}
}

func TestState_Timeout(t *testing.T) {
	s, _ := newTestState(t, WithExecutionTimeout(50*time.Millisecond))

	if err := s.DoString(`while true do end`); !errors.Is(err, ErrExecutionTimeout) {
		t.Fatalf("expected ErrExecutionTimeout, got %v", err)
	}
	if err := s.DoString(`y = 2`); err != nil {
		t.Errorf("state should be reusable after a timeout: %v", err)
	}
}

func TestState_Print(t *testing.T) {
	var out bytes.Buffer
	s, _ := newTestState(t, WithOutput(&out))

	if err := s.DoString(`print("a", 1, true)`); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "a\t1\ttrue\n" {
		t.Errorf("print output = %q", got)
	}
}

func TestState_DoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.lua")
	if err := os.WriteFile(path, []byte(`host.open(host.PRIMARY, "f.txt", "from file")`), 0o644); err != nil {
		t.Fatal(err)
	}

	s, sim := newTestState(t)
	if err := s.DoFile(path); err != nil {
		t.Fatalf("DoFile failed: %v", err)
	}
	if sim.ActiveDocumentText(host.Primary) != "from file" {
		t.Errorf("text = %q", sim.ActiveDocumentText(host.Primary))
	}
}

func TestState_Closed(t *testing.T) {
	s, _ := newTestState(t)
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.DoString(`x = 1`); !errors.Is(err, ErrStateClosed) {
		t.Errorf("expected ErrStateClosed, got %v", err)
	}
	if s.GetGlobal("x") != lua.LNil {
		t.Error("closed state should report nil globals")
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close should be a no-op: %v", err)
	}
}
