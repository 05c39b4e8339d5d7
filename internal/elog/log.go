// Package elog provides the structured logging sink shared by the curve
// and registry packages. It defaults to a no-op logger so importing this
// module produces no output unless a host binary opts in.
package elog

import (
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.Nop()
)

// SetLogger installs the logger used by the rest of the toolkit. Passing
// the zero value restores silence.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// L returns the currently installed logger.
func L() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}
