// This file manages the asynchronous spinner display for long drains, fed by
// a channel observer on the evaluated stream.
package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/lazyseq/internal/stream"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the spinner.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressChannelBuffer sizes the update channel; the channel observer
	// drops updates when the UI falls behind.
	ProgressChannelBuffer = 64
)

// Spinner abstracts the behavior of a terminal spinner, decoupling
// DisplayProgress from a specific implementation for easier testing.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts the spinner library to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress renders a spinner with a running item count while a stream
// is being drained. It runs in a dedicated goroutine and returns when the
// update channel is closed.
func DisplayProgress(wg *sync.WaitGroup, updates <-chan stream.PullUpdate, out io.Writer) {
	defer wg.Done()

	s := newSpinner(spinner.WithWriter(out))
	s.Start()
	defer s.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	var last stream.PullUpdate
	for {
		select {
		case update, ok := <-updates:
			if !ok {
				return
			}
			last = update
		case <-ticker.C:
			if last.Produced > 0 {
				s.UpdateSuffix(fmt.Sprintf(" %s: %d item(s) produced", last.Kind, last.Produced))
			}
		}
	}
}
