package schedule

import (
	"time"

	"github.com/trezcool/ratiba/core"
)

type (
	// Point is a pointer position in the same coordinate space as the grid's Rect.
	Point struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}

	// Rect is the pixel rectangle of the rendered grid.
	Rect struct {
		Left   float64 `json:"left"`
		Top    float64 `json:"top"`
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	}

	// Cell is a (weekday column, hour row) grid position.
	Cell struct {
		Day  int `json:"day"`
		Hour int `json:"hour"`
	}

	// Grid is the weekly calendar's coordinate system: weekday columns of
	// equal width by hour rows of equal height over Rect. It is derived at
	// render time and never persisted.
	Grid struct {
		Days  []time.Weekday
		Hours []int
		Rect  Rect
	}
)

// DefaultDays is the fixed Monday..Friday column set.
func DefaultDays() []time.Weekday {
	return []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
}

// DefaultHours is the fixed contiguous 8h..19h row set.
func DefaultHours() []int {
	hours := make([]int, 0, 12)
	for h := 8; h <= 19; h++ {
		hours = append(hours, h)
	}
	return hours
}

func NewGrid(conf core.ScheduleConfig, rect Rect) Grid {
	days := make([]time.Weekday, 0, conf.NumDays)
	for i := 0; i < conf.NumDays; i++ {
		days = append(days, time.Monday+time.Weekday(i))
	}
	hours := make([]int, 0, conf.LastHour-conf.FirstHour+1)
	for h := conf.FirstHour; h <= conf.LastHour; h++ {
		hours = append(hours, h)
	}
	return Grid{Days: days, Hours: hours, Rect: rect}
}

// CellFromPoint maps a pointer position to its grid cell. A point outside the
// rectangle, or past the last row/column, reports ok == false rather than an
// out-of-range index. Pure function: re-querying with identical arguments
// always yields the same result.
func (g Grid) CellFromPoint(p Point) (Cell, bool) {
	if len(g.Days) == 0 || len(g.Hours) == 0 || g.Rect.Width <= 0 || g.Rect.Height <= 0 {
		return Cell{}, false
	}

	x := p.X - g.Rect.Left
	y := p.Y - g.Rect.Top
	if x < 0 || y < 0 || x >= g.Rect.Width || y >= g.Rect.Height {
		return Cell{}, false
	}

	colWidth := g.Rect.Width / float64(len(g.Days))
	rowHeight := g.Rect.Height / float64(len(g.Hours))
	cell := Cell{
		Day:  int(x / colWidth),
		Hour: int(y / rowHeight),
	}
	if cell.Day >= len(g.Days) || cell.Hour >= len(g.Hours) {
		return Cell{}, false
	}
	return cell, true
}

// InstantFromCell resolves a cell to the top of its hour on its weekday in the
// week containing ref: the date is shifted by (target weekday - ref's weekday)
// days. That can land in the past when the target day has already gone by this
// week; the behavior is deliberate and pinned by tests. ref is the only time
// source.
func (g Grid) InstantFromCell(cell Cell, ref time.Time) time.Time {
	target := int(g.Days[cell.Day])
	shift := target - int(ref.Weekday())
	return time.Date(ref.Year(), ref.Month(), ref.Day()+shift, g.Hours[cell.Hour], 0, 0, 0, ref.Location())
}
