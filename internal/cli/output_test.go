package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agbru/lazyseq/internal/testutil"
	"github.com/agbru/lazyseq/pkg/models"
)

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	cases := []struct {
		d    time.Duration
		want string
	}{
		{d: 500 * time.Microsecond, want: "500µs"},
		{d: 42 * time.Millisecond, want: "42ms"},
		{d: 3 * time.Second, want: "3s"},
	}
	for _, tc := range cases {
		if got := FormatExecutionDuration(tc.d); got != tc.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestPrintResultText(t *testing.T) {
	res, err := Evaluate(context.Background(), "range 1 4", 10)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	PrintResult(&buf, res, false)
	out := testutil.StripAnsiCodes(buf.String())

	for _, want := range []string{"range 1 4", "(range)", "Reported length: 3", "Drained 3 item(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintResultQuiet(t *testing.T) {
	res, err := Evaluate(context.Background(), "range 1 4", 10)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	PrintResult(&buf, res, true)
	if got := buf.String(); got != "1\n2\n3\n" {
		t.Errorf("quiet output = %q, want one item per line", got)
	}
}

func TestPrintJSONRoundTrips(t *testing.T) {
	res, err := Evaluate(context.Background(), "perms a b", 10)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := PrintJSON(&buf, res); err != nil {
		t.Fatal(err)
	}
	var m models.RenderedStream
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if m.Expression != "perms a b" || len(m.Items) != 2 {
		t.Errorf("decoded model = %+v", m)
	}
	if m.Length == nil || *m.Length != 2 {
		t.Errorf("Length = %v, want 2", m.Length)
	}
}

func TestWriteResultToFile(t *testing.T) {
	res, err := Evaluate(context.Background(), "range 1 3", 10)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "nested", "out.txt")
	if err := WriteResultToFile(path, res); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	for _, want := range []string{"# Expression: range 1 3", "# Items: 2", "1\n2\n"} {
		if !strings.Contains(content, want) {
			t.Errorf("file missing %q:\n%s", want, content)
		}
	}

	// Empty path is a no-op.
	if err := WriteResultToFile("", res); err != nil {
		t.Errorf("empty path: %v", err)
	}
}
