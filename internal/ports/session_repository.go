package ports

import (
	"context"
	"time"

	"github.com/mattdh/lic-cli/internal/domain"
)

type SessionRepository interface {
	// Load returns the persisted session, creating one with defaults on
	// first run.
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
}

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
