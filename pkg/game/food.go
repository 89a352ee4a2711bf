package game

// PlaceFood moves the food to a random empty cell.
//
// Candidates are drawn uniformly from the whole board and resampled while
// they land on the snake. The loop has no bound: with the default board the
// snake can never cover every cell in normal play, and a full board leaves
// the result undefined.
func (g *Game) PlaceFood() {
	for {
		pos := Point{
			X: g.rng.Intn(g.Width),
			Y: g.rng.Intn(g.Height),
		}
		if !g.onSnake(pos) {
			g.food = pos
			return
		}
	}
}

// onSnake reports whether p is covered by any snake segment
func (g *Game) onSnake(p Point) bool {
	for _, s := range g.snake {
		if s == p {
			return true
		}
	}
	return false
}
