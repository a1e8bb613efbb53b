package sortbench

import (
	"math/rand"
	"sync"
	"time"
)

const (
	DEBUG = false

	MergeSortName     = "Merge Sort"
	InsertionSortName = "Insertion Sort"
	ReferenceSortName = "Reference Sort"

	DefaultMin            = 1
	DefaultMax            = 1_000_000
	DefaultTrialThreshold = 10_000
	DefaultSmallTrials    = 10
	DefaultLargeTrials    = 1
)

// RandomSource is the entropy a Generator draws from. Int63n must return a
// value in [0, n) and may panic if n <= 0, like math/rand.
type RandomSource interface {
	Int63n(n int64) int64
}

// lockedRand guards a *rand.Rand with a mutex so the package-level source can
// be shared between goroutines.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func newLockedRand(seed int64) *lockedRand {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (lr *lockedRand) Int63n(n int64) int64 {
	lr.mu.Lock()
	v := lr.r.Int63n(n)
	lr.mu.Unlock()
	return v
}

// NewRandomSource returns a source seeded with seed. If seed is 0, the current
// time is used (non-deterministic).
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// rng is the package-level random source used by Generate.
var rng RandomSource = newLockedRand(time.Now().UnixNano())

// InitRNG reseeds the package-level rng. If seed is 0, the current time is
// used (non-deterministic). A non-zero seed gives reproducible samples.
func InitRNG(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng = newLockedRand(seed)
}
