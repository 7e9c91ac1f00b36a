package ports

import (
	"context"

	"github.com/mattdh/lic-cli/internal/domain"
)

// AttendanceClient is the remote attendance service, one method per
// operation. Every call performs exactly one round trip; none retry.
type AttendanceClient interface {
	Login(ctx context.Context, username, password string) (string, error)
	LogAttendance(ctx context.Context, entry domain.AttendanceEntry) error
	Rankings(ctx context.Context, period domain.Period, date string) ([]domain.Ranking, error)
	Streaks(ctx context.Context) ([]domain.Streak, error)
	UserStats(ctx context.Context, username string) (domain.StatsResponse, error)
	Query(ctx context.Context, filter domain.QueryFilter) ([]domain.QueryResult, error)
}
