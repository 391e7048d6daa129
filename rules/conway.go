package rules

const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

/*
NextValue maps a cell value and its live neighbor count to the cell value of the next tick (B3/S23).

A live cell survives with 2 or 3 neighbors, a dead cell is born with exactly 3.
Any non-zero current value is treated as alive.
*/
func NextValue(current uint8, neighbors int) uint8 {
	if ApplyConwayRules(neighbors, current != Dead) {
		return Alive
	}
	return Dead
}
