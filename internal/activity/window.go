package activity

import (
	"fmt"
	"time"
)

const (
	hoursPerDayConstant                = 24
	windowDescriptionTodayConstant     = "today"
	windowDescriptionDaysTemplate      = "the last %d days"
	windowDescriptionMonthConstant     = "this month"
	windowDescriptionLastMonthConstant = "since the start of last month"
)

// WindowSelection captures the raw window flags before precedence resolution.
type WindowSelection struct {
	Days      int
	Today     bool
	Month     bool
	LastMonth bool
}

// ScanWindow is the inclusive lower time bound commits must reach to qualify.
// It also carries a human-readable description for summaries and messages.
type ScanWindow struct {
	Start       time.Time
	Description string
}

// Contains reports whether a commit timestamp falls inside the window.
func (window ScanWindow) Contains(timestamp time.Time) bool {
	return !timestamp.Before(window.Start)
}

// ResolveScanWindow derives the active window from the selection, using the
// local timezone of now. When several window flags are combined the most
// specific wins: today, then last-month, then month, then the rolling day
// count.
func ResolveScanWindow(selection WindowSelection, now time.Time) ScanWindow {
	currentYear, currentMonth, currentDay := now.Date()

	switch {
	case selection.Today:
		return ScanWindow{
			Start:       time.Date(currentYear, currentMonth, currentDay, 0, 0, 0, 0, now.Location()),
			Description: windowDescriptionTodayConstant,
		}
	case selection.LastMonth:
		return ScanWindow{
			Start:       time.Date(currentYear, currentMonth-1, 1, 0, 0, 0, 0, now.Location()),
			Description: windowDescriptionLastMonthConstant,
		}
	case selection.Month:
		return ScanWindow{
			Start:       time.Date(currentYear, currentMonth, 1, 0, 0, 0, 0, now.Location()),
			Description: windowDescriptionMonthConstant,
		}
	default:
		dayCount := selection.Days
		if dayCount < 0 {
			dayCount = 0
		}
		return ScanWindow{
			Start:       now.Add(-time.Duration(dayCount) * hoursPerDayConstant * time.Hour),
			Description: fmt.Sprintf(windowDescriptionDaysTemplate, dayCount),
		}
	}
}
