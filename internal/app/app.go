package app

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/vk/gridsow/internal/codec"
	"github.com/vk/gridsow/internal/ctxlog"
	"github.com/vk/gridsow/internal/plant"
	"github.com/vk/gridsow/internal/tree"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	corpus plant.Corpus
	color  bool
}

// Option customizes an App.
type Option func(*App)

// WithCorpus plants into c instead of the runs directory.
func WithCorpus(c plant.Corpus) Option {
	return func(a *App) { a.corpus = c }
}

// NewApp is the constructor for the main application. Mock output goes to
// outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config, opts ...Option) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	a := &App{
		outW:   outW,
		logger: logger,
		config: cfg,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// importer resolves import_base paths relative to the launch file.
func (a *App) importer() codecImporter {
	return codecImporter{dir: filepath.Dir(a.config.File)}
}

type codecImporter struct {
	dir string
}

func (i codecImporter) Import(ctx context.Context, path string) (tree.Value, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(i.dir, path)
	}
	ctxlog.FromContext(ctx).Debug("Importing base config.", "path", path)
	return codec.ReadFile(path)
}
