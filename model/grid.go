package model

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// GridState owns the two ping-pong cell buffers of a square grid and the tick counter.
//
// Cells are stored row-major, (x, y) lives at x*size+y. The buffer at index tick%2 is
// the current one; the other is written during a step and becomes current on swap.
type GridState struct {
	mu      sync.RWMutex
	size    int
	buffers [2][]uint8
	tick    uint64

	// lines of the next buffer written by the in-progress step
	linesWritten atomic.Int64
}

// Initialize allocates an n x n grid and fills the tick 0 buffer by sampling seed once per cell
func Initialize(n int, seed SeedSource) (*GridState, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrConfiguration, "[Initialize] grid size must be positive, got %d", n)
	}
	if seed == nil {
		return nil, errors.Wrap(ErrConfiguration, "[Initialize] seed source is nil")
	}

	s := &GridState{size: n}
	for i := range s.buffers {
		s.buffers[i] = make([]uint8, n*n)
	}
	for i := range s.buffers[0] {
		if seed() != rules.Dead {
			s.buffers[0][i] = rules.Alive
		}
	}
	return s, nil
}

// Size returns the side length of the grid
func (s *GridState) Size() int {
	return s.size
}

// Tick returns the number of committed steps
func (s *GridState) Tick() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tick
}

// CurrentIndex returns the buffer holding the committed state
func (s *GridState) CurrentIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentIndex()
}

// NextIndex returns the buffer the next step writes into
func (s *GridState) NextIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextIndex()
}

func (s *GridState) currentIndex() int { return int(s.tick % 2) }
func (s *GridState) nextIndex() int    { return int((s.tick + 1) % 2) }

func (s *GridState) inBounds(x, y int) bool {
	return x >= 0 && x < s.size && y >= 0 && y < s.size
}

func (s *GridState) index(x, y int) int {
	return x*s.size + y
}

// Get returns the value of cell (x, y) in the given buffer
func (s *GridState) Get(buffer, x, y int) (uint8, error) {
	if buffer != 0 && buffer != 1 {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "[Get] buffer %d", buffer)
	}
	if !s.inBounds(x, y) {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "[Get] cell (%d,%d) outside %dx%d grid", x, y, s.size, s.size)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buffers[buffer][s.index(x, y)], nil
}

// Set overwrites cell (x, y) of the current buffer, used to place patterns between steps
func (s *GridState) Set(x, y int, v uint8) error {
	if v != rules.Dead && v != rules.Alive {
		return errors.Wrapf(ErrConfiguration, "[Set] cell value must be 0 or 1, got %d", v)
	}
	if !s.inBounds(x, y) {
		return errors.Wrapf(ErrIndexOutOfRange, "[Set] cell (%d,%d) outside %dx%d grid", x, y, s.size, s.size)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffers[s.currentIndex()][s.index(x, y)] = v
	return nil
}

// Clear kills every cell of the current buffer
func (s *GridState) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.buffers[s.currentIndex()])
}

// beginStep resets the write tracking for a new step; s.mu must be held
func (s *GridState) beginStep() {
	s.linesWritten.Store(0)
}

// markWritten records that count full lines of the next buffer were written
func (s *GridState) markWritten(count int) {
	s.linesWritten.Add(int64(count))
}

// commitSwap makes the next buffer current; s.mu must be held
func (s *GridState) commitSwap() error {
	if written := s.linesWritten.Load(); written != int64(s.size) {
		return errors.Wrapf(ErrPrematureSwap, "[commitSwap] %d of %d lines written", written, s.size)
	}
	s.tick++
	s.linesWritten.Store(0)
	return nil
}
