package solver

import rubiks "github.com/riteshydv05/rubics-cube-sub000"

// faceBonus rewards a fully uniform face well beyond its nine facelet
// matches, so the heuristic strategies prefer finishing faces over spreading
// partial matches around.
const faceBonus = 25

// MaxScore is the score of a solved cube.
const MaxScore = 54 + 6*faceBonus

// Score rates how close a state is to solved: one point per facelet matching
// its face's center, plus faceBonus per fully uniform face.
func Score(c *rubiks.Cube) int {
	total := 0
	for f := 0; f < 6; f++ {
		center := c.Facelets[f][4]
		matches := 0
		for i := 0; i < 9; i++ {
			if c.Facelets[f][i] == center {
				matches++
			}
		}
		total += matches
		if matches == 9 {
			total += faceBonus
		}
	}
	return total
}
