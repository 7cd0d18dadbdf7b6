// internal/cli/spinner.go
package cli

import (
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// withSpinner shows an indeterminate spinner on stderr while fn runs. It
// stays hidden when stderr is not a terminal, or when an elevated command
// may prompt for a sudo password on the same terminal.
func withSpinner[T any](desc string, elevated bool, fn func() T) T {
	if !term.IsTerminal(int(os.Stderr.Fd())) || (elevated && runner.Helper() == "sudo") {
		return fn()
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionThrottle(100*time.Millisecond),
	)

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}()

	out := fn()
	close(done)
	_ = bar.Finish()
	return out
}
