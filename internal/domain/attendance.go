package domain

import (
	"fmt"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	// AbsenceTime is the sentinel arrival time for sick and leave entries.
	AbsenceTime = "00:00"
)

// AttendanceEntry is a single day's record for one user, sent once to the
// logging endpoint and never persisted locally.
type AttendanceEntry struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	Name   string `json:"name"`
	Status Status `json:"status"`
}

// Validate checks the entry locally so malformed input never reaches the
// wire.
func (e AttendanceEntry) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("%w: entry name is empty", ErrValidation)
	}
	if _, err := ParseStatus(string(e.Status)); err != nil {
		return err
	}
	if err := ValidateDate(e.Date); err != nil {
		return err
	}
	if _, err := time.Parse(timeLayout, e.Time); err != nil {
		return fmt.Errorf("%w: time %q is not HH:MM", ErrValidation, e.Time)
	}
	if e.Status.IsAbsence() && e.Time != AbsenceTime {
		return fmt.Errorf("%w: %s entries must use time %s", ErrValidation, e.Status, AbsenceTime)
	}
	return nil
}

// ValidateDate checks a YYYY-MM-DD date string.
func ValidateDate(raw string) error {
	if _, err := time.Parse(dateLayout, raw); err != nil {
		return fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrValidation, raw)
	}
	return nil
}

// FormatDate renders t in the wire date format.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatClock renders t in the wire arrival-time format.
func FormatClock(t time.Time) string {
	return t.Format(timeLayout)
}

// Ranking is one server-computed leaderboard row. Rows arrive already
// rank-ordered; clients must not re-sort them.
type Ranking struct {
	Name               string       `json:"name"`
	Score              float64      `json:"score"`
	Streak             *int         `json:"streak"`
	AverageArrivalTime string       `json:"average_arrival_time"`
	Stats              RankingStats `json:"stats"`
}

type RankingStats struct {
	InOffice int `json:"in_office"`
	Remote   int `json:"remote"`
	Sick     int `json:"sick"`
	Leave    int `json:"leave"`
	Days     int `json:"days"`
}

// Streak is one user's current and best attendance run.
type Streak struct {
	Username      string  `json:"username"`
	CurrentStreak int     `json:"current_streak"`
	MaxStreak     int     `json:"max_streak"`
	StreakStart   *string `json:"streak_start"`
}

// QueryResult is one attendance record matched by a data query.
type QueryResult struct {
	Date   string  `json:"date"`
	Name   string  `json:"name"`
	Status string  `json:"status"`
	Time   string  `json:"time"`
	Score  float64 `json:"score"`
	Streak *int    `json:"streak"`
}

// StatsResponse is the aggregate summary for a single user.
type StatsResponse struct {
	AverageArrivalTime string       `json:"average_arrival_time"`
	Score              float64      `json:"score"`
	Stats              RankingStats `json:"stats"`
}

// QueryFilter selects attendance records. Zero-valued optional fields are
// omitted from the request entirely.
type QueryFilter struct {
	Period Period
	From   string
	To     string
	User   string
	Mode   string
	Status Status
	Limit  int
}

// Validate checks the filter locally before it is encoded onto the wire.
func (f QueryFilter) Validate() error {
	if _, err := ParsePeriod(string(f.Period)); err != nil {
		return err
	}
	if f.From != "" {
		if err := ValidateDate(f.From); err != nil {
			return err
		}
	}
	if f.To != "" {
		if err := ValidateDate(f.To); err != nil {
			return err
		}
	}
	if f.Status != "" {
		if _, err := ParseStatus(string(f.Status)); err != nil {
			return err
		}
	}
	if f.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative", ErrValidation)
	}
	return nil
}
