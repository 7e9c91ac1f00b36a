package domain

import "fmt"

type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

func ParsePeriod(raw string) (Period, error) {
	switch Period(raw) {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return Period(raw), nil
	}
	return "", fmt.Errorf("%w: unknown period %q (expected day, week or month)", ErrValidation, raw)
}

type Status string

const (
	StatusInOffice Status = "in-office"
	StatusRemote   Status = "remote"
	StatusSick     Status = "sick"
	StatusLeave    Status = "leave"
)

// StatusValues lists the accepted statuses in display order.
func StatusValues() []string {
	return []string{
		string(StatusInOffice),
		string(StatusRemote),
		string(StatusSick),
		string(StatusLeave),
	}
}

func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusInOffice, StatusRemote, StatusSick, StatusLeave:
		return Status(raw), nil
	}
	return "", fmt.Errorf("%w: unknown status %q (expected in-office, remote, sick or leave)", ErrValidation, raw)
}

// IsAbsence reports whether the status carries no arrival time. Absence
// entries are logged with the "00:00" sentinel.
func (s Status) IsAbsence() bool {
	return s == StatusSick || s == StatusLeave
}

// DefaultMode is the scoring mode applied when none is requested. The server
// also understands "early-bird"; modes are not a closed set.
const DefaultMode = "last-in"
