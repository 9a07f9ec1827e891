package finance

import "time"

// DefaultDaysInMonth is used whenever a caller cannot supply a valid month length.
const DefaultDaysInMonth = 30

// DaysInMonth returns the length of t's month, leap years included.
func DaysInMonth(t time.Time) int {
	// day 0 of the next month is the last day of this one
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// MonthProgress describes how far into the month a day is.
type MonthProgress struct {
	CurrentDay         int    `json:"current_day"`
	DaysInMonth        int    `json:"days_in_month"`
	RemainingDays      int    `json:"remaining_days"`
	ProgressPercentage string `json:"progress_percentage"`
	MonthName          string `json:"month_name"`
	Year               int    `json:"year"`
}

func Progress(today time.Time) MonthProgress {
	days := DaysInMonth(today)
	day := today.Day()
	return MonthProgress{
		CurrentDay:         day,
		DaysInMonth:        days,
		RemainingDays:      days - day,
		ProgressPercentage: percentOf(day, days).StringFixed(1),
		MonthName:          today.Month().String(),
		Year:               today.Year(),
	}
}
