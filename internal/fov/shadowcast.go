// Package fov computes field of view with recursive shadow casting.
package fov

import (
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeonsight/internal/logging"
	"github.com/samdwyer/dungeonsight/internal/world"
)

// Occluder reports which cells stop line of sight.
type Occluder interface {
	IsOpaque(p world.Point) bool
}

// Octant transforms: column i maps (dx, dy) in the canonical octant to map space.
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// VisiblePoints returns every point with an unobstructed line of sight from
// origin within radius (Euclidean, inclusive). Opaque cells that are reached
// are included. The result is not clipped to any map bounds.
func VisiblePoints(origin world.Point, radius int, occ Occluder) mapset.Set[world.Point] {
	visible := mapset.New[world.Point]()
	visible.Put(origin)

	if radius <= 0 {
		return visible
	}

	for i := 0; i < 8; i++ {
		castLight(occ, origin, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], visible)
	}

	logging.For("fov").WithFields(logrus.Fields{
		"origin":  origin,
		"radius":  radius,
		"visible": visible.Size(),
	}).Trace("field of view computed")

	return visible
}

func castLight(occ Occluder, origin world.Point, row int, start, end float64, radius, xx, xy, yx, yy int, visible mapset.Set[world.Point]) {
	if start < end {
		return
	}

	radiusSq := radius * radius

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			p := world.Point{
				X: origin.X + dx*xx + dy*xy,
				Y: origin.Y + dx*yx + dy*yy,
			}
			if dx*dx+dy*dy <= radiusSq {
				visible.Put(p)
			}

			if blocked {
				if occ.IsOpaque(p) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if occ.IsOpaque(p) && j < radius {
				blocked = true
				castLight(occ, origin, j+1, start, lSlope, radius, xx, xy, yx, yy, visible)
				newStart = rSlope
			}
		}

		if blocked {
			break
		}
	}
}
