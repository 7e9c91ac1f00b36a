package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mattdh/lic-cli/internal/adapters/api"
	tomlrepo "github.com/mattdh/lic-cli/internal/adapters/repo/toml"
	"github.com/mattdh/lic-cli/internal/application"
	"github.com/mattdh/lic-cli/internal/domain"
	"github.com/mattdh/lic-cli/internal/ports"
	"go.uber.org/zap"
)

type app struct {
	session domain.Session
	service *application.Service
	clock   ports.Clock
	log     *zap.Logger
}

func (a *app) wire(ctx context.Context, configPath string, verbose bool) error {
	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("wire logger: %w", err)
	}

	repo, err := tomlrepo.NewRepository(configPath)
	if err != nil {
		return fmt.Errorf("wire session repository: %w", err)
	}

	session, err := repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	client, err := api.New(api.Config{
		BaseURL:     session.APIURL,
		Credentials: credentialsFor(session),
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("wire api client: %w", err)
	}

	a.session = session
	a.service = application.NewService(session, repo, client)
	a.clock = ports.SystemClock{}
	a.log = logger
	return nil
}

// credentialsFor picks the auth scheme from the persisted session: a stored
// token means bearer auth, otherwise the client falls back to a cookie jar
// filled by the login call.
func credentialsFor(session domain.Session) api.Credentials {
	if session.Token != "" {
		return api.BearerToken(session.Token)
	}
	return api.CookieSession()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose || os.Getenv("LIC_DEBUG") != "" {
		return zap.NewDevelopment()
	}
	return zap.NewNop(), nil
}
