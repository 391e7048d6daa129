package model

import (
	"crypto/md5"
	"fmt"

	"github.com/sheikhrachel/go-life/rules"
)

// Point is a cell position
type Point struct {
	X, Y int
}

// View is a read-only copy of a committed current buffer, safe to hold while later steps run
type View struct {
	size  int
	tick  uint64
	cells []uint8
	pool  *ViewPool
}

// ReadCurrent returns a view of the buffer selected by CurrentIndex after the latest swap
func (s *GridState) ReadCurrent() *View {
	v := &View{}
	s.readInto(v)
	return v
}

func (s *GridState) readInto(v *View) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if cap(v.cells) < s.size*s.size {
		v.cells = make([]uint8, s.size*s.size)
	}
	v.cells = v.cells[:s.size*s.size]
	copy(v.cells, s.buffers[s.currentIndex()])
	v.size = s.size
	v.tick = s.tick
}

// Size returns the side length of the grid
func (v *View) Size() int {
	return v.size
}

// Tick returns the tick the view was taken at
func (v *View) Tick() uint64 {
	return v.tick
}

// At returns the value of cell (x, y), 0 outside the grid
func (v *View) At(x, y int) uint8 {
	if x < 0 || x >= v.size || y < 0 || y >= v.size {
		return rules.Dead
	}
	return v.cells[x*v.size+y]
}

// Alive reports whether cell (x, y) is alive
func (v *View) Alive(x, y int) bool {
	return v.At(x, y) == rules.Alive
}

// LiveCells returns the total number of living cells
func (v *View) LiveCells() (count int) {
	for _, c := range v.cells {
		count += int(c)
	}
	return
}

// LivePositions lists living cells in index order
func (v *View) LivePositions() []Point {
	var live []Point
	for i, c := range v.cells {
		if c == rules.Alive {
			live = append(live, Point{X: i / v.size, Y: i % v.size})
		}
	}
	return live
}

// Snapshot returns a copy of the cells in row-major order
func (v *View) Snapshot() []uint8 {
	out := make([]uint8, len(v.cells))
	copy(out, v.cells)
	return out
}

// Hash returns an MD5 hash of the cell values
func (v *View) Hash() string {
	h := md5.New()
	h.Write(v.cells)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Release hands the view back to the pool it came from, if any. The view must not be used afterwards.
func (v *View) Release() {
	if v == nil || v.pool == nil {
		return
	}
	v.pool.Put(v)
}
