package application

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/iwat/webfile/internal/config"
	"github.com/iwat/webfile/internal/domain"
)

// urlSchemes are the prefixes accepted for a URL mode location
var urlSchemes = []string{"http://", "https://", "ftp://", "file://"}

// HTTPClient abstracts the transport used for remote access
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type App struct {
	fs     billy.Filesystem
	client HTTPClient
	config *config.Config
	logger *slog.Logger
}

func NewApp(fs billy.Filesystem, client HTTPClient, cfg *config.Config, logger *slog.Logger) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		fs:     fs,
		client: client,
		config: cfg,
		logger: logger,
	}
}

// Config returns the settings the app was built with
func (app *App) Config() *config.Config {
	return app.config
}

// Open creates an accessor for location in the given mode
func (app *App) Open(location string, mode domain.Mode) (*Accessor, error) {
	if !mode.Valid() {
		return nil, domain.ConfigError("invalid mode '%s', valid modes: %s", mode, domain.KnownModes())
	}
	if mode.Remote() && !IsURL(location) {
		return nil, domain.ConfigError("'%s' is not a valid URL for mode 'url'", location)
	}
	return &Accessor{
		location: location,
		mode:     mode,
		app:      app,
		logger:   app.logger.With("location", location, "mode", mode.String()),
	}, nil
}

// IsURL reports whether location starts with a supported scheme
func IsURL(location string) bool {
	for _, scheme := range urlSchemes {
		if strings.HasPrefix(location, scheme) {
			return true
		}
	}
	return false
}
