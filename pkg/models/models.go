/*
Package models defines the shared data structures for rendered evaluation
results.

These models are used for:
- **JSON output**: the --json rendering of a drained stream prefix.
- **File export**: the structured header written alongside saved results.
*/

package models

// RenderedStream is the JSON-facing record of one evaluated stream
// expression: the expression, the stream's display form, the drained prefix
// and what is known about the remainder.
type RenderedStream struct {
	// Expression is the source expression that was evaluated.
	Expression string `json:"expression"`
	// Display is the stream's own rendering after the drain.
	Display string `json:"display"`
	// Items holds the display form of each drained item, in pull order.
	Items []string `json:"items"`
	// Length is the number of items the stream reported as remaining
	// before the drain, when known.
	Length *int `json:"length,omitempty"`
	// Truncated is true when the drain stopped at the item bound rather
	// than at stream exhaustion.
	Truncated bool `json:"truncated"`
	// Duration is the wall-clock time of the drain, formatted.
	Duration string `json:"duration"`
	// Error carries the fault that ended the drain, if any.
	Error string `json:"error,omitempty"`
}
