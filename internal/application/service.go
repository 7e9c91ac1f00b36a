package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/mattdh/lic-cli/internal/domain"
	"github.com/mattdh/lic-cli/internal/ports"
)

// Service orchestrates one command invocation: guard locally, call exactly
// one client operation, persist the session when it changed.
type Service struct {
	session domain.Session
	repo    ports.SessionRepository
	api     ports.AttendanceClient
}

func NewService(session domain.Session, repo ports.SessionRepository, api ports.AttendanceClient) *Service {
	return &Service{
		session: session,
		repo:    repo,
		api:     api,
	}
}

func (s *Service) Session() domain.Session {
	return s.session
}

// Login authenticates against the server and persists the resulting
// identity. Cookie-session deployments return no token; that is only
// accepted when anonymous reads are configured, since every other setup
// needs the token for subsequent calls.
func (s *Service) Login(ctx context.Context, username, password string) (domain.Session, error) {
	if username == "" {
		return domain.Session{}, fmt.Errorf("%w: username is empty", domain.ErrValidation)
	}
	if password == "" {
		return domain.Session{}, fmt.Errorf("%w: password is empty", domain.ErrValidation)
	}

	token, err := s.api.Login(ctx, username, password)
	if err != nil {
		return domain.Session{}, err
	}
	if token == "" && !s.session.AnonymousReads {
		return domain.Session{}, errors.New("login response carried no token")
	}

	updated := s.session.WithLogin(username, token)
	if err := s.repo.Save(ctx, updated); err != nil {
		return domain.Session{}, fmt.Errorf("save session: %w", err)
	}

	s.session = updated
	return updated, nil
}

func (s *Service) LogAttendance(ctx context.Context, entry domain.AttendanceEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	return s.api.LogAttendance(ctx, entry)
}

func (s *Service) Rankings(ctx context.Context, period domain.Period, date string) ([]domain.Ranking, error) {
	if err := s.requireAuth(); err != nil {
		return nil, err
	}
	if _, err := domain.ParsePeriod(string(period)); err != nil {
		return nil, err
	}
	if date != "" {
		if err := domain.ValidateDate(date); err != nil {
			return nil, err
		}
	}

	return s.api.Rankings(ctx, period, date)
}

func (s *Service) Streaks(ctx context.Context) ([]domain.Streak, error) {
	if err := s.requireAuth(); err != nil {
		return nil, err
	}

	return s.api.Streaks(ctx)
}

// UserStats fetches the aggregate summary for username, defaulting to the
// configured user.
func (s *Service) UserStats(ctx context.Context, username string) (domain.StatsResponse, error) {
	if err := s.requireAuth(); err != nil {
		return domain.StatsResponse{}, err
	}

	if username == "" {
		username = s.session.Username
	}
	if username == "" {
		return domain.StatsResponse{}, fmt.Errorf("%w: no username given and none configured", domain.ErrValidation)
	}

	return s.api.UserStats(ctx, username)
}

func (s *Service) Query(ctx context.Context, filter domain.QueryFilter) ([]domain.QueryResult, error) {
	if err := s.requireAuth(); err != nil {
		return nil, err
	}
	if filter.Mode == "" {
		filter.Mode = domain.DefaultMode
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	return s.api.Query(ctx, filter)
}

// ConfigUpdate carries explicit session overrides; nil fields are left
// untouched.
type ConfigUpdate struct {
	APIURL         *string
	Username       *string
	AnonymousReads *bool
}

func (u ConfigUpdate) Empty() bool {
	return u.APIURL == nil && u.Username == nil && u.AnonymousReads == nil
}

func (s *Service) UpdateConfig(ctx context.Context, update ConfigUpdate) (domain.Session, error) {
	updated := s.session
	if update.APIURL != nil {
		if err := domain.ValidateBaseURL(*update.APIURL); err != nil {
			return domain.Session{}, err
		}
		updated.APIURL = *update.APIURL
	}
	if update.Username != nil {
		updated.Username = *update.Username
	}
	if update.AnonymousReads != nil {
		updated.AnonymousReads = *update.AnonymousReads
	}

	if err := s.repo.Save(ctx, updated); err != nil {
		return domain.Session{}, fmt.Errorf("save session: %w", err)
	}

	s.session = updated
	return updated, nil
}

// requireAuth fails fast before any network call so a missing token is
// reported locally, never as a server 401.
func (s *Service) requireAuth() error {
	if s.session.AnonymousReads || s.session.Authenticated() {
		return nil
	}

	return domain.ErrNotAuthenticated
}
