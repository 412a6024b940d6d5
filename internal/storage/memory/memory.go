// Package memory implements the process-lifetime data store backing the API.
// All state is lost on restart; that is the intended deployment model.
//
// A single RWMutex serializes access to the three collections. Ownership and
// existence checks happen inside the critical section so every store
// operation is atomic (no check-then-act races between concurrent requests).
package memory

import (
	"strings"
	"sync"

	"github.com/pintag-dev/pintag/internal/domain"
)

type Storage struct {
	mu sync.RWMutex

	users     map[string]domain.User // keyed by folded name
	userOrder []string

	images     map[string]domain.Image
	imageOrder []string

	threads     map[string]domain.Thread
	threadOrder []string
}

func New() *Storage {
	return &Storage{
		users:   make(map[string]domain.User),
		images:  make(map[string]domain.Image),
		threads: make(map[string]domain.Thread),
	}
}

// foldName normalizes a username for case-insensitive comparison.
func foldName(name string) string {
	return strings.ToLower(name)
}
