package store

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/format"
)

// DefaultListLimit applies when ListRuns is called with a non-positive limit.
const DefaultListLimit = 20

// Store persists simplification runs
type Store interface {
	Close() error

	SaveRun(ctx context.Context, r Run) error
	// GetRun returns internalerr.ErrNotFound for unknown IDs.
	GetRun(ctx context.Context, id string) (Run, error)
	// ListRuns returns the newest runs first.
	ListRuns(ctx context.Context, limit int) ([]Run, error)
}

// Run is one recorded invocation of a producer
type Run struct {
	ID         string         `json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	Producer   string         `json:"producer"`
	Seed       uint64         `json:"seed,omitempty"`
	Input      string         `json:"input"`
	Outputs    format.Outputs `json:"outputs"`
	FellBack   bool           `json:"fell_back"`
	Violations []string       `json:"violations,omitempty"`
	Grade      float64        `json:"grade"`
}

// IDGenerator issues lexically sortable run IDs, so ordering by ID is
// ordering by creation time.
type IDGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewIDGenerator creates a generator backed by crypto/rand
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// New returns the next ID. Monotonic entropy is not safe for concurrent
// use, hence the lock.
func (g *IDGenerator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Now(), g.entropy).String()
}
