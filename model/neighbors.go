package model

// neighborOffsets is the Moore neighborhood without the cell itself
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// CountNeighbors counts living neighbors of (x, y) in a frozen n x n buffer.
//
// The boundary is clamped, not toroidal: positions outside the grid contribute nothing,
// so corner cells see 3 positions, edge cells 5 and interior cells 8.
func CountNeighbors(buf []uint8, x, y, n int) int {
	count := 0
	for _, off := range neighborOffsets {
		nx, ny := x+off[0], y+off[1]
		if nx < 0 || nx >= n || ny < 0 || ny >= n {
			continue
		}
		count += int(buf[nx*n+ny])
	}
	return count
}
