package services

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meghannnnnnn/Resumex/internal/models"
)

func TestFetchTrackerCoalescesSameCard(t *testing.T) {
	tracker := NewFetchTracker()

	var calls atomic.Int32
	var startedOnce sync.Once
	started := make(chan struct{})
	release := make(chan struct{})
	fetch := func() ([]models.LivePosting, error) {
		calls.Add(1)
		startedOnce.Do(func() { close(started) })
		<-release
		return []models.LivePosting{{ID: "job-1", Title: "Software Engineer"}}, nil
	}

	var wg sync.WaitGroup
	results := make([][]models.LivePosting, 5)

	// First request starts the fetch and parks inside fn.
	wg.Add(1)
	go func() {
		defer wg.Done()
		jobs, err := tracker.Fetch(7, fetch)
		assert.NoError(t, err)
		results[0] = jobs
	}()
	<-started

	// The rest arrive while that fetch is in flight and must join it.
	for i := 1; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			jobs, err := tracker.Fetch(7, fetch)
			assert.NoError(t, err)
			results[i] = jobs
		}(i)
	}
	time.Sleep(20 * time.Millisecond) // let the joiners reach the tracker
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "duplicate requests for one card must share a single fetch")
	for _, jobs := range results {
		require.Len(t, jobs, 1)
		assert.Equal(t, "job-1", jobs[0].ID)
	}
	assert.Equal(t, FetchReady, tracker.State(7))
}

func TestFetchTrackerCardsAreIndependent(t *testing.T) {
	tracker := NewFetchTracker()

	var calls atomic.Int32
	fetch := func() ([]models.LivePosting, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return nil, nil
	}

	var wg sync.WaitGroup
	for idx := 0; idx < 4; idx++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			_, err := tracker.Fetch(idx, fetch)
			assert.NoError(t, err)
		}(idx)
	}
	wg.Wait()

	assert.Equal(t, int32(4), calls.Load(), "distinct cards fetch independently")
}

func TestFetchTrackerDoesNotCacheResults(t *testing.T) {
	tracker := NewFetchTracker()

	var calls atomic.Int32
	fetch := func() ([]models.LivePosting, error) {
		calls.Add(1)
		return nil, nil
	}

	_, err := tracker.Fetch(1, fetch)
	require.NoError(t, err)
	_, err = tracker.Fetch(1, fetch)
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load(), "sequential fetches hit upstream again")
}

func TestFetchTrackerStates(t *testing.T) {
	tracker := NewFetchTracker()

	assert.Equal(t, FetchIdle, tracker.State(3))

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		tracker.Fetch(3, func() ([]models.LivePosting, error) {
			close(started)
			<-release
			return nil, nil
		})
	}()

	<-started
	assert.Equal(t, FetchInFlight, tracker.State(3))
	close(release)
	<-done
	assert.Equal(t, FetchReady, tracker.State(3))

	_, err := tracker.Fetch(3, func() ([]models.LivePosting, error) {
		return nil, errors.New("boom")
	})
	require.Error(t, err)
	assert.Equal(t, FetchFailed, tracker.State(3))
}
