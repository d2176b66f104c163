package timegrid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const (
	gridStart = 8 * 60  // 08:00
	gridEnd   = 20 * 60 // 20:00
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.Local)
}

func TestMinutesSinceMidnight(t *testing.T) {
	assert.Equal(t, 0, MinutesSinceMidnight(at(0, 0)))
	assert.Equal(t, 9*60+30, MinutesSinceMidnight(at(9, 30)))
	assert.Equal(t, 23*60+59, MinutesSinceMidnight(at(23, 59)))
}

func TestStartOfDay(t *testing.T) {
	got := StartOfDay(at(17, 42))
	assert.Equal(t, at(0, 0), got)
	assert.Equal(t, time.Local, got.Location())
}

func TestISODate(t *testing.T) {
	assert.Equal(t, "2026-03-10", ISODate(at(9, 0)))
	assert.Equal(t, "2026-01-05", ISODate(time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local)))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(3, 5, 10))
	assert.Equal(t, 10.0, Clamp(12, 5, 10))
	assert.Equal(t, 7.0, Clamp(7, 5, 10))
}

func TestLayoutBlock_FullyInsideGrid(t *testing.T) {
	// 10:00-11:00 on an 08:00-20:00 grid: top 2/12, height 1/12
	b := LayoutBlock(at(10, 0), at(11, 0), gridStart, gridEnd)
	assert.InDelta(t, 100.0*2/12, b.TopPercent, 1e-9)
	assert.InDelta(t, 100.0/12, b.HeightPercent, 1e-9)
}

func TestLayoutBlock_ClampedAtGridEdges(t *testing.T) {
	// Starts before the grid opens: truncated at the top edge
	b := LayoutBlock(at(7, 0), at(9, 0), gridStart, gridEnd)
	assert.Equal(t, 0.0, b.TopPercent)
	assert.InDelta(t, 100.0/12, b.HeightPercent, 1e-9)

	// Ends after the grid closes: truncated at the bottom edge
	b = LayoutBlock(at(19, 0), at(21, 0), gridStart, gridEnd)
	assert.InDelta(t, 100.0*11/12, b.TopPercent, 1e-9)
	assert.InDelta(t, 100.0/12, b.HeightPercent, 1e-9)
}

func TestLayoutBlock_FullyOutsideGrid(t *testing.T) {
	// Entirely before the window: pinned to the top with the floor height
	b := LayoutBlock(at(6, 0), at(7, 0), gridStart, gridEnd)
	assert.Equal(t, 0.0, b.TopPercent)
	assert.Equal(t, MinHeightPercent, b.HeightPercent)

	// Entirely after the window: pinned to the bottom with the floor height,
	// top pulled back so the block never overflows the grid
	b = LayoutBlock(at(21, 0), at(22, 0), gridStart, gridEnd)
	assert.Equal(t, 100.0-MinHeightPercent, b.TopPercent)
	assert.Equal(t, MinHeightPercent, b.HeightPercent)
}

func TestLayoutBlock_ZeroDurationGetsFloor(t *testing.T) {
	b := LayoutBlock(at(12, 0), at(12, 0), gridStart, gridEnd)
	assert.Equal(t, MinHeightPercent, b.HeightPercent)
	assert.GreaterOrEqual(t, b.TopPercent, 0.0)
	assert.LessOrEqual(t, b.TopPercent, 100.0)
}

func TestLayoutBlock_DegenerateGrid(t *testing.T) {
	b := LayoutBlock(at(10, 0), at(11, 0), 600, 600)
	assert.Equal(t, 0.0, b.TopPercent)
	assert.Equal(t, MinHeightPercent, b.HeightPercent)
}
