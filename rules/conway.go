package rules

const (
	birthNeighbors       = 3
	minSurvivalNeighbors = 2
	maxSurvivalNeighbors = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A dead cell with exactly three live neighbors is born. A live cell with fewer
than two or more than three live neighbors dies. Every other cell keeps its state.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if !alive {
		return neighbors == birthNeighbors
	}
	if neighbors < minSurvivalNeighbors || neighbors > maxSurvivalNeighbors {
		return false
	}
	return alive
}
