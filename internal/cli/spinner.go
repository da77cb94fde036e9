package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/matzehuels/chartpress/pkg/observability"
)

// Spinner animates a status line while a chart request runs. Registered as
// the pipeline hooks, it follows the request through its stages:
//
//	⠹ Validating bar chart... 0.0s
//	⠼ Rendering bar chart (600x400)... 0.1s
//	⠦ Assembling A4 document... 0.2s
//
// Frames go to stderr so binary output on stdout stays clean.
type Spinner struct {
	w       io.Writer
	start   time.Time
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	stopped chan struct{}
	frames  []string

	mu     sync.Mutex
	stage  string
	widest int // longest line written, cleared on stop
}

var _ observability.PipelineHooks = (*Spinner)(nil)

// newSpinner creates a spinner for a request of the given chart type.
func newSpinner(chartType string) *Spinner {
	return newSpinnerWithContext(context.Background(), chartType)
}

// newSpinnerWithContext creates a spinner that will stop when the context is cancelled.
func newSpinnerWithContext(ctx context.Context, chartType string) *Spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		w:       os.Stderr,
		start:   time.Now(),
		ctx:     spinnerCtx,
		cancel:  cancel,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		stage:   fmt.Sprintf("Validating %s chart", chartType),
	}
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		i := 0
		for {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-s.done:
				return
			case <-ticker.C:
				s.draw(s.frames[i%len(s.frames)])
				i++
			}
		}
	}()
}

func (s *Spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	elapsed := time.Since(s.start).Seconds()
	line := fmt.Sprintf("%s... %.1fs", s.stage, elapsed)
	s.widest = max(s.widest, len(line)+2)
	fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(line))
}

// status returns the current stage text.
func (s *Spinner) status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

func (s *Spinner) setStage(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stage = fmt.Sprintf(format, args...)
}

// Stop stops the spinner and clears the line.
func (s *Spinner) Stop() {
	s.cancel()
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	<-s.stopped
	s.clearLine()
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.widest == 0 {
		return
	}
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.widest+2))
}

// StopWithSuccess stops the spinner and shows a success message.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and shows an error message.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled returns true if the spinner was stopped due to context cancellation.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}

// =============================================================================
// Pipeline stages
// =============================================================================

func (s *Spinner) OnValidateComplete(context.Context, string, time.Duration, error) {}

func (s *Spinner) OnRenderStart(_ context.Context, kind string, width, height int) {
	s.setStage("Rendering %s chart (%dx%d)", kind, width, height)
}

func (s *Spinner) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

func (s *Spinner) OnDocumentStart(_ context.Context, _ string, pageSize string) {
	s.setStage("Assembling %s document", pageSize)
}

func (s *Spinner) OnDocumentComplete(context.Context, string, int, time.Duration, error) {}
