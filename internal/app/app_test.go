package app

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/agbru/lazyseq/internal/cli"
	"github.com/agbru/lazyseq/internal/fault"
)

func newTestApp(t *testing.T, args ...string) *Application {
	t.Helper()
	var errBuf bytes.Buffer
	a, err := New(append([]string{"lazyseq"}, args...), &errBuf)
	if err != nil {
		t.Fatalf("New(%v) error: %v\n%s", args, err, errBuf.String())
	}
	return a
}

func TestNewParsesArguments(t *testing.T) {
	a := newTestApp(t, "-e", "range 0 5", "-take", "3", "-q")
	if a.Config.Eval != "range 0 5" || a.Config.Take != 3 || !a.Config.Quiet {
		t.Errorf("config = %+v", a.Config)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	var errBuf bytes.Buffer
	if _, err := New([]string{"lazyseq", "-take", "0"}, &errBuf); err == nil {
		t.Error("New accepted take=0")
	}
}

func TestRunEvalSuccess(t *testing.T) {
	a := newTestApp(t, "-e", "range 1 4", "-q", "-no-color")
	var out bytes.Buffer
	code := a.Run(context.Background(), &out)
	if code != fault.ExitSuccess {
		t.Fatalf("exit code = %d, want success", code)
	}
	if got := out.String(); got != "1\n2\n3\n" {
		t.Errorf("quiet output = %q", got)
	}
}

func TestRunEvalJSON(t *testing.T) {
	a := newTestApp(t, "-e", "perms a b", "-json")
	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != fault.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(out.String(), `"expression": "perms a b"`) {
		t.Errorf("JSON output:\n%s", out.String())
	}
}

func TestRunEvalParseErrorExitsConfig(t *testing.T) {
	a := newTestApp(t, "-e", "frobnicate", "-q")
	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != fault.ExitErrorConfig {
		t.Errorf("exit code = %d, want %d", code, fault.ExitErrorConfig)
	}
}

func TestRunEvalFaultExitsEval(t *testing.T) {
	a := newTestApp(t, "-e", "map square cycle a b", "-q")
	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != fault.ExitErrorEval {
		t.Errorf("exit code = %d, want %d", code, fault.ExitErrorEval)
	}
}

func TestRunEvalTimeoutExitsCancel(t *testing.T) {
	a := newTestApp(t, "-e", "repeat x", "-take", "1000000", "-q", "-timeout", "1ns")
	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != fault.ExitErrorCancel {
		t.Errorf("exit code = %d, want %d", code, fault.ExitErrorCancel)
	}
}

func TestRunShowcaseDefault(t *testing.T) {
	a := newTestApp(t, "-q", "-take", "5", "-timeout", "30s")
	var out bytes.Buffer
	start := time.Now()
	code := a.Run(context.Background(), &out)
	if code != fault.ExitSuccess {
		t.Fatalf("exit code = %d, want success", code)
	}
	if time.Since(start) > 10*time.Second {
		t.Error("showcase took unreasonably long")
	}
	if out.Len() == 0 {
		t.Error("showcase produced no output")
	}
}

func TestRenderResultSavesFile(t *testing.T) {
	a := newTestApp(t, "-q")
	a.Config.OutputFile = t.TempDir() + "/result.txt"

	res, err := cli.Evaluate(context.Background(), "range 0 3", 10)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if code := a.renderResult(res, &out); code != fault.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
}

func TestHasVersionFlag(t *testing.T) {
	t.Parallel()
	if !HasVersionFlag([]string{"-e", "x", "--version"}) {
		t.Error("--version not detected in later position")
	}
	if HasVersionFlag([]string{"-e", "version"}) {
		t.Error("bare word treated as version flag")
	}
}

func TestPrintVersion(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	PrintVersion(&buf)
	if !strings.Contains(buf.String(), "lazyseq") || !strings.Contains(buf.String(), "Go version") {
		t.Errorf("version output:\n%s", buf.String())
	}
}
