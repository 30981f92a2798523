// Package parser implements the worksheet layout inference engine: grid
// snapshotting, row geometry, package segmentation, detail-column detection,
// merge repair, picture anchoring and record flattening.
package parser

import "math"

// EMUPerPoint is the number of EMUs (English Metric Units) per typographic
// point. Excel positions absolute-anchored drawings in EMU while row heights
// are stored in points, so vertical reconciliation happens in EMU.
const EMUPerPoint = 12700

// DefaultRowHeightPoints is the row height assumed when a sheet defines none.
const DefaultRowHeightPoints = 15.0

// PointsToEMU converts a height in points to EMU.
func PointsToEMU(pt float64) int64 {
	return int64(math.Round(pt * EMUPerPoint))
}
