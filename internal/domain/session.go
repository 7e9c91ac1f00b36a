package domain

import (
	"fmt"
	"net/url"
)

// DefaultAPIURL is used when no base URL has been configured yet.
const DefaultAPIURL = "https://lic.mattdh.me"

// ValidateBaseURL checks a service base URL before it is persisted or used
// to build a client. A bad URL written to the config would fail every
// subsequent command at wiring, so it must be rejected up front.
func ValidateBaseURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: api url is empty", ErrValidation)
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: api url %q: %v", ErrValidation, raw, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: api url %q must use http or https", ErrValidation, raw)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%w: api url %q has no host", ErrValidation, raw)
	}
	return nil
}

// Session is the locally persisted client state: where the service lives,
// who the user is, and (after login) the bearer token proving it.
type Session struct {
	APIURL   string
	Username string
	Token    string
	// AnonymousReads allows read commands without a token, for deployments
	// that serve rankings and streaks publicly behind a cookie session.
	AnonymousReads bool
}

func DefaultSession() Session {
	return Session{APIURL: DefaultAPIURL}
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

// WithLogin returns a copy of the session carrying the identity established
// by a successful login.
func (s Session) WithLogin(username, token string) Session {
	s.Username = username
	s.Token = token
	return s
}
