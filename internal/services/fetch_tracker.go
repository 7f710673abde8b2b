package services

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/meghannnnnnn/Resumex/internal/models"
)

// FetchState is where a job card's live-postings fetch currently stands.
type FetchState int

const (
	FetchIdle FetchState = iota
	FetchInFlight
	FetchReady
	FetchFailed
)

func (s FetchState) String() string {
	switch s {
	case FetchInFlight:
		return "fetching"
	case FetchReady:
		return "ready"
	case FetchFailed:
		return "failed"
	default:
		return "idle"
	}
}

// FetchTracker enforces at most one in-flight live-postings fetch per job
// card. Cards are independent: expanding several cards runs their fetches
// concurrently, but duplicate requests for the same card share the one
// fetch already running instead of hitting the upstream again.
type FetchTracker struct {
	mu     sync.Mutex
	group  singleflight.Group
	states map[int]FetchState
}

func NewFetchTracker() *FetchTracker {
	return &FetchTracker{states: make(map[int]FetchState)}
}

// Fetch runs fn for the card, coalescing with any fetch already in flight
// for the same index. Results are not cached: once the in-flight call
// completes and its waiters are served, the next Fetch hits upstream again.
func (t *FetchTracker) Fetch(index int, fn func() ([]models.LivePosting, error)) ([]models.LivePosting, error) {
	t.setState(index, FetchInFlight)

	v, err, _ := t.group.Do(strconv.Itoa(index), func() (any, error) {
		return fn()
	})
	if err != nil {
		t.setState(index, FetchFailed)
		return nil, err
	}

	t.setState(index, FetchReady)
	return v.([]models.LivePosting), nil
}

// State reports the card's last observed fetch state.
func (t *FetchTracker) State(index int) FetchState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.states[index]
}

func (t *FetchTracker) setState(index int, s FetchState) {
	t.mu.Lock()
	t.states[index] = s
	t.mu.Unlock()
}
