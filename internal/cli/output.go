// This file renders evaluation results: colored text, JSON, and file export.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/lazyseq/internal/ui"
	"github.com/agbru/lazyseq/pkg/models"
)

// FormatExecutionDuration formats a time.Duration for display. It shows
// microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default representation otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// ToModel converts an evaluation result into its JSON-facing form.
func ToModel(res EvalResult) models.RenderedStream {
	m := models.RenderedStream{
		Expression: res.Expression,
		Display:    res.Display,
		Items:      make([]string, len(res.Items)),
		Length:     res.Length,
		Truncated:  res.Truncated,
		Duration:   FormatExecutionDuration(res.Duration),
	}
	for i, v := range res.Items {
		m.Items[i] = v.String()
	}
	if res.Err != nil {
		m.Error = res.Err.Error()
	}
	return m
}

// PrintJSON writes the evaluation result as indented JSON.
func PrintJSON(out io.Writer, res EvalResult) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(ToModel(res))
}

// PrintResult writes the evaluation result as colored text. In quiet mode it
// prints one item per line and nothing else, for scripting.
func PrintResult(out io.Writer, res EvalResult, quiet bool) {
	if quiet {
		for _, v := range res.Items {
			fmt.Fprintln(out, v)
		}
		return
	}

	fmt.Fprintf(out, "%s%s%s  %s(%s)%s\n",
		ui.ColorBold(), res.Expression, ui.ColorReset(),
		ui.ColorCyan(), res.Kind, ui.ColorReset())
	if res.Length != nil {
		fmt.Fprintf(out, "Reported length: %s%d%s\n", ui.ColorCyan(), *res.Length, ui.ColorReset())
	}
	for i, v := range res.Items {
		fmt.Fprintf(out, "  %s%3d%s  %s%s%s\n",
			ui.ColorMagenta(), i, ui.ColorReset(),
			ui.ColorGreen(), v, ui.ColorReset())
	}
	switch {
	case res.Err != nil:
		fmt.Fprintf(out, "%sFault after %d item(s): %v%s\n", ui.ColorRed(), len(res.Items), res.Err, ui.ColorReset())
	case res.Truncated:
		fmt.Fprintf(out, "  %s...%s\n", ui.ColorYellow(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Drained %s%d%s item(s) in %s%s%s; stream now: %s\n",
		ui.ColorCyan(), len(res.Items), ui.ColorReset(),
		ui.ColorGreen(), FormatExecutionDuration(res.Duration), ui.ColorReset(),
		res.Display)
}

// WriteResultToFile writes the evaluation result to a file with a structured
// header, creating the parent directory when needed.
func WriteResultToFile(path string, res EvalResult) error {
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# lazyseq evaluation result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Expression: %s\n", res.Expression)
	fmt.Fprintf(file, "# Kind: %s\n", res.Kind)
	fmt.Fprintf(file, "# Duration: %s\n", FormatExecutionDuration(res.Duration))
	fmt.Fprintf(file, "# Items: %d\n", len(res.Items))
	fmt.Fprintf(file, "\n")
	for _, v := range res.Items {
		fmt.Fprintln(file, v)
	}
	return nil
}
