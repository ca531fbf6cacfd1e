// Package vnlog is a thin wrapper around the standard library's log
// package, matching the teacher's logging style (plain log.Printf, no
// structured logging dependency — see SPEC_FULL.md's AMBIENT STACK
// section for why no third-party logger was wired in).
package vnlog

import (
	"log"

	"github.com/chazu/vecnet/pkg/vnstore"
)

// Warnf logs a formatted warning, prefixed for grep-ability.
func Warnf(format string, args ...any) {
	log.Printf("[vnnet] "+format, args...)
}

// Errorf logs a formatted error.
func Errorf(format string, args ...any) {
	log.Printf("[vnnet] error: "+format, args...)
}

// Hook returns a vnstore.Warning callback that logs every Warning passed
// to it.
func Hook() func(vnstore.Warning) {
	return func(w vnstore.Warning) {
		log.Printf("[vnnet] session=%s code=%s: %s", w.SessionID, w.Code, w.Message)
	}
}
