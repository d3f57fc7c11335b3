package logging

import (
	"io"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"

	"github.com/imamik/acsctl/internal/util/ptr"
)

// NewConsole returns a funcr logger writing one line per entry to w and
// emitting V-levels up to verbosity. Logger names become a "[name] " prefix.
func NewConsole(w io.Writer, verbosity int) logr.Logger {
	var mu sync.Mutex

	write := func(prefix, args string) {
		line := args + "\n"
		if prefix != "" {
			line = "[" + prefix + "] " + line
		}

		mu.Lock()
		defer mu.Unlock()
		_, _ = io.WriteString(w, line)
	}

	return funcr.New(write, funcr.Options{
		Verbosity:    verbosity,
		LogInfoLevel: ptr.To(""),
	})
}
