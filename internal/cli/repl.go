// This file implements the interactive REPL: line editing and history via
// liner, colon-prefixed session commands, expression evaluation per line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/agbru/lazyseq/internal/ui"
)

const (
	replPrompt  = "lazyseq> "
	historyFile = ".lazyseq_history"
)

// REPLConfig holds the session settings the REPL starts with. Take and JSON
// can be changed from within the session.
type REPLConfig struct {
	// Take bounds the number of items drained per evaluation.
	Take int
	// JSONOutput renders results as JSON instead of text.
	JSONOutput bool
	// Out is the writer for results and messages.
	Out io.Writer
}

// REPL is an interactive read-eval-print loop over stream expressions.
type REPL struct {
	cfg  REPLConfig
	line *liner.State
}

// NewREPL creates an interactive session with the given settings.
func NewREPL(cfg REPLConfig) *REPL {
	return &REPL{cfg: cfg}
}

// Start runs the session until EOF or :quit. History is loaded from and saved
// to a dotfile in the user's home directory, best-effort.
func (r *REPL) Start(ctx context.Context) {
	r.line = liner.NewLiner()
	defer r.line.Close()
	r.line.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = r.line.ReadHistory(f)
		_ = f.Close()
	}

	fmt.Fprintf(r.cfg.Out, "lazyseq playground - type an expression, :help for help, :quit to exit\n")

	for {
		input, err := r.line.Prompt(replPrompt)
		if err != nil { // Ctrl+D or Ctrl+C
			fmt.Fprintln(r.cfg.Out)
			break
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if strings.HasPrefix(input, ":") {
			if exit := r.handleCommand(input); exit {
				break
			}
			continue
		}

		r.eval(ctx, input)
		r.line.AppendHistory(input)
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = r.line.WriteHistory(f)
		_ = f.Close()
	}
}

// eval evaluates one expression and renders the result with the session
// settings.
func (r *REPL) eval(ctx context.Context, expr string) {
	res, err := Evaluate(ctx, expr, r.cfg.Take)
	if err != nil {
		fmt.Fprintf(r.cfg.Out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	if r.cfg.JSONOutput {
		if err := PrintJSON(r.cfg.Out, res); err != nil {
			fmt.Fprintf(r.cfg.Out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		}
		return
	}
	PrintResult(r.cfg.Out, res, false)
}

// handleCommand handles :help, :take, :json, :funcs and :quit. It reports
// whether the session should end.
func (r *REPL) handleCommand(input string) (exit bool) {
	fields := strings.Fields(input)
	switch fields[0] {
	case ":quit", ":q", ":exit":
		return true
	case ":help", ":h":
		r.printHelp()
	case ":funcs":
		fmt.Fprintf(r.cfg.Out, "Functions: %s\n", FuncNames())
	case ":take":
		if len(fields) != 2 {
			fmt.Fprintf(r.cfg.Out, "Usage: :take <n>\n")
			return false
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n <= 0 {
			fmt.Fprintf(r.cfg.Out, "take must be a positive integer\n")
			return false
		}
		r.cfg.Take = n
		fmt.Fprintf(r.cfg.Out, "Draining up to %d item(s) per evaluation\n", n)
	case ":json":
		if len(fields) == 2 && (fields[1] == "on" || fields[1] == "off") {
			r.cfg.JSONOutput = fields[1] == "on"
			fmt.Fprintf(r.cfg.Out, "JSON output %s\n", fields[1])
		} else {
			fmt.Fprintf(r.cfg.Out, "Usage: :json on|off\n")
		}
	default:
		fmt.Fprintf(r.cfg.Out, "Unknown command %s (:help for help)\n", fields[0])
	}
	return false
}

func (r *REPL) printHelp() {
	fmt.Fprint(r.cfg.Out, `Expressions:
  repeat <v>                 infinite repetition of one value
  cycle <v>...               endless cycle over a buffer
  range <a> [<b>|..] [<s>]   arithmetic range, '..' for open-ended
  perms <v>...               permutations of a buffer
  combos <k> <v>...          k-combinations of a buffer
  subs <v>...                subsequences of a buffer
  power <n> <v>...           n-th cartesian power of a buffer
  iterate <fn> <seed>        orbit of a seed under a function
  map <fn> <expr>            element-wise application
  stride <n> <expr>          every n-th element
  scan <fn> <init> <expr>    running fold
  heap <fn> <seed>           best-first frontier expansion

Commands:
  :take <n>     set the per-evaluation item bound
  :json on|off  toggle JSON output
  :funcs        list available functions
  :quit         exit
`)
}
