package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mattdh/lic-cli/internal/domain"
	"github.com/mattdh/lic-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configDirName  = "lic"
	configFileName = "config.toml"

	configFileMode  = 0o600
	configDirMode   = 0o700
	tempFilePattern = ".config-*.toml.tmp"

	envPrefix = "lic"
)

// Repository persists the session as a TOML config file. Writes go through
// a temp file and rename so a crash never leaves a torn config behind.
type Repository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SessionRepository = (*Repository)(nil)

// NewRepository opens the session store at path. An empty path resolves to
// the platform config directory, e.g. ~/.config/lic/config.toml.
func NewRepository(path string) (*Repository, error) {
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config directory: %w", err)
		}
		path = filepath.Join(configDir, configDirName, configFileName)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	return &Repository{path: absPath, mu: lockForPath(absPath)}, nil
}

// Load reads the persisted session. On first run the file is created with
// defaults. LIC_API_URL, LIC_USERNAME and LIC_API_TOKEN override the file.
func (r *Repository) Load(ctx context.Context) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}

	r.mu.RLock()
	file, exists, err := r.readSchema()
	r.mu.RUnlock()
	if err != nil {
		return domain.Session{}, err
	}

	if !exists {
		session := domain.DefaultSession()
		if err := r.Save(ctx, session); err != nil {
			return domain.Session{}, err
		}
		return session, nil
	}

	return fromSchema(file), nil
}

func (r *Repository) Save(ctx context.Context, session domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.writeSchema(toSchema(session))
}

func (r *Repository) readSchema() (fileSchema, bool, error) {
	v := viper.New()
	v.SetConfigFile(r.path)
	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault(keyAPIURL, domain.DefaultAPIURL)
	v.SetDefault(keyUsername, "")
	v.SetDefault(keyAPIToken, "")
	v.SetDefault(keyAnonymousReads, false)

	exists := true
	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, false, fmt.Errorf("read config file: %w", err)
		}
		exists = false
	}

	var file fileSchema
	if err := v.Unmarshal(&file); err != nil {
		return fileSchema{}, false, fmt.Errorf("decode config file: %w", err)
	}
	file.applyDefaults()

	return file, exists, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.path, configFileMode); err != nil {
		return fmt.Errorf("chmod config file: %w", err)
	}

	return nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
