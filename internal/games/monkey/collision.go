package monkey

import "github.com/vovakirdan/monkey-arcade/internal/core"

// Hits reports whether the actor box overlaps the obstacle box after both
// are inset by padding on every side.
func Hits(actor, obstacle core.Rect, padding float64) bool {
	return actor.Inset(padding).Intersects(obstacle.Inset(padding))
}

// Collides tests the actor against the top and bottom cloud of every pair.
func Collides(actor core.Rect, obstacles []Obstacle, padding float64) bool {
	for _, o := range obstacles {
		if Hits(actor, o.TopRect(), padding) || Hits(actor, o.BottomRect(), padding) {
			return true
		}
	}
	return false
}
