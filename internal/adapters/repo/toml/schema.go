package toml

import "github.com/mattdh/lic-cli/internal/domain"

const (
	keyAPIURL         = "api_url"
	keyUsername       = "username"
	keyAPIToken       = "api_token"
	keyAnonymousReads = "anonymous_reads"
)

type fileSchema struct {
	APIURL         string `toml:"api_url" mapstructure:"api_url"`
	Username       string `toml:"username" mapstructure:"username"`
	APIToken       string `toml:"api_token" mapstructure:"api_token"`
	AnonymousReads bool   `toml:"anonymous_reads" mapstructure:"anonymous_reads"`
}

func (f *fileSchema) applyDefaults() {
	if f.APIURL == "" {
		f.APIURL = domain.DefaultAPIURL
	}
}

func toSchema(session domain.Session) fileSchema {
	return fileSchema{
		APIURL:         session.APIURL,
		Username:       session.Username,
		APIToken:       session.Token,
		AnonymousReads: session.AnonymousReads,
	}
}

func fromSchema(file fileSchema) domain.Session {
	return domain.Session{
		APIURL:         file.APIURL,
		Username:       file.Username,
		Token:          file.APIToken,
		AnonymousReads: file.AnonymousReads,
	}
}
