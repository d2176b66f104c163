// Package timegrid contains the pure time and geometry helpers used to lay
// out appointment blocks on the day grid. Stateless; no error conditions
// beyond defensive clamping.
package timegrid

import "time"

// MinHeightPercent is the floor for a block's height so that zero-duration
// or heavily clamped appointments remain visible and clickable
const MinHeightPercent = 2.0

// Block is the computed placement of a time range within the grid window,
// expressed as percentages of the total grid height
type Block struct {
	TopPercent    float64
	HeightPercent float64
}

// MinutesSinceMidnight returns hours*60 + minutes of t in its location
func MinutesSinceMidnight(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// StartOfDay returns t truncated to local midnight
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ISODate formats t as YYYY-MM-DD using zero-padded local components
func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

// Clamp limits x to the range [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// LayoutBlock computes the placement of [start, end] within the grid window
// [gridStartMinute, gridEndMinute]. Both edges are clamped to the window
// first, so ranges partially outside the visible grid are truncated at the
// grid edge instead of producing negative or overflowing values. Height is
// floored to MinHeightPercent.
func LayoutBlock(start, end time.Time, gridStartMinute, gridEndMinute int) Block {
	totalMinutes := float64(gridEndMinute - gridStartMinute)
	if totalMinutes <= 0 {
		return Block{TopPercent: 0, HeightPercent: MinHeightPercent}
	}

	startOffset := Clamp(
		float64(MinutesSinceMidnight(start)-gridStartMinute), 0, totalMinutes)
	endOffset := Clamp(
		float64(MinutesSinceMidnight(end)-gridStartMinute), 0, totalMinutes)

	top := startOffset / totalMinutes * 100
	height := (endOffset - startOffset) / totalMinutes * 100
	if height < MinHeightPercent {
		height = MinHeightPercent
	}
	// Flooring the height can push a bottom-pinned block past 100%
	if top+height > 100 {
		top = 100 - height
	}

	return Block{TopPercent: top, HeightPercent: height}
}
