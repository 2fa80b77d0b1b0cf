package batch

import (
	"sync"
	"time"
)

const percentMultiplier = 100

// Progress tracks finished items and batches. Safe for concurrent use.
type Progress struct {
	mu sync.Mutex

	totalItems       int
	totalBatches     int
	processedItems   int
	processedBatches int
	start            time.Time
}

// Snapshot is an immutable view of a Progress.
type Snapshot struct {
	TotalItems       int
	ProcessedItems   int
	TotalBatches     int
	ProcessedBatches int
	Elapsed          time.Duration
}

// PercentComplete returns the finished share of items, 0 to 100.
func (s Snapshot) PercentComplete() float64 {
	if s.TotalItems == 0 {
		return 0
	}
	return float64(s.ProcessedItems) / float64(s.TotalItems) * percentMultiplier
}

// IsComplete reports whether every item is processed.
func (s Snapshot) IsComplete() bool {
	return s.ProcessedItems >= s.TotalItems
}

// NewProgress starts tracking totalItems items in totalBatches batches.
func NewProgress(totalItems, totalBatches int) *Progress {
	return &Progress{totalItems: totalItems, totalBatches: totalBatches, start: time.Now()}
}

// Add records one finished batch of items and returns the new state.
func (p *Progress) Add(items int) Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.processedItems += items
	p.processedBatches++
	return p.snapshotLocked()
}

// Snapshot returns the current state.
func (p *Progress) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *Progress) snapshotLocked() Snapshot {
	return Snapshot{
		TotalItems:       p.totalItems,
		ProcessedItems:   p.processedItems,
		TotalBatches:     p.totalBatches,
		ProcessedBatches: p.processedBatches,
		Elapsed:          time.Since(p.start),
	}
}
