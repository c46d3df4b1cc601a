package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/gridsow/internal/clause"
	"github.com/vk/gridsow/internal/codec"
	"github.com/vk/gridsow/internal/ctxlog"
	"github.com/vk/gridsow/internal/dircorpus"
	"github.com/vk/gridsow/internal/launch"
	"github.com/vk/gridsow/internal/plant"
	"github.com/vk/gridsow/internal/tree"
)

// Summary counts what a run planted.
type Summary struct {
	Experiments int
	Created     int
	Identical   int
	Conflicting int
	// Paths are the absolute directories written during the run.
	Paths []string
}

// Run loads the launch file, derives its experiments and either prints the
// requested ones (mock mode) or plants all of them.
func (a *App) Run(ctx context.Context) (*Summary, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "file", a.config.File, "key", a.config.Key)

	exps, err := a.derive(ctx)
	if err != nil {
		return nil, err
	}
	named := a.nameExperiments(exps)

	if a.config.Mock {
		return &Summary{Experiments: len(named)}, a.mock(named)
	}
	return a.sow(ctx, named)
}

func (a *App) derive(ctx context.Context) ([]launch.Experiment, error) {
	desc, err := codec.ReadFile(a.config.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load launch file: %w", err)
	}
	overrides, err := clause.FromArgs(a.config.Overrides)
	if err != nil {
		return nil, fmt.Errorf("invalid overrides: %w", err)
	}

	exps, err := launch.Derive(ctx, desc, launch.Options{
		Importer:  a.importer(),
		Overrides: overrides,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to derive experiments from %s: %w", a.config.File, err)
	}
	a.logger.Info("Experiments derived.", "count", len(exps))
	return exps, nil
}

type namedExperiment struct {
	name string
	tree tree.Value
}

// nameExperiments joins name segments into slot names. Distinct segment
// lists can collide once joined, e.g. [a_b c] and [a b_c]; the later tree
// wins, as it does for identical segment lists.
func (a *App) nameExperiments(exps []launch.Experiment) []namedExperiment {
	out := make([]namedExperiment, 0, len(exps))
	index := make(map[string]int, len(exps))
	for _, e := range exps {
		name := launch.JoinName(e.Name, a.config.NestAt)
		if i, dup := index[name]; dup {
			a.logger.Warn("Joined experiment names collide; the later definition wins.", "name", name)
			out[i].tree = e.Tree
			continue
		}
		index[name] = len(out)
		out = append(out, namedExperiment{name: name, tree: e.Tree})
	}
	return out
}

func (a *App) mock(exps []namedExperiment) error {
	format := codec.Format(a.config.MockFormat)
	byName := make(map[string]tree.Value, len(exps))
	names := make([]string, len(exps))
	for i, e := range exps {
		byName[e.name] = e.tree
		names[i] = e.name
	}

	display := a.config.MockNames
	if len(display) == 0 {
		display = names
	}
	for _, n := range display {
		if _, ok := byName[n]; !ok {
			return fmt.Errorf("no experiment named %q; available: %q", n, names)
		}
	}

	for i, n := range display {
		data, err := codec.Encode(format, byName[n])
		if err != nil {
			return fmt.Errorf("failed to render %q: %w", n, err)
		}
		fmt.Fprintf(a.outW, "%s\n%s\n", a.styled(headerStyle, fmt.Sprintf("%d: %s", i, n)), data)
	}
	return nil
}

func (a *App) sow(ctx context.Context, exps []namedExperiment) (*Summary, error) {
	logDir, err := filepath.Abs(a.config.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output directory: %w", err)
	}

	corpus := a.corpus
	pathOf := func(name string) (string, error) { return name, nil }
	if corpus == nil {
		dc, err := dircorpus.New(filepath.Join(logDir, RunDirName(a.config.Key)))
		if err != nil {
			return nil, err
		}
		corpus, pathOf = dc, dc.Dir
		a.logger.Info("Planting configs.", "run_dir", dc.Root())
	}

	policy := plant.Policy{Overwrite: a.config.Overwrite, Repeat: a.config.Repeat}
	summary := &Summary{Experiments: len(exps)}
	for i, e := range exps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a.logger.Info("Sowing experiment.", "index", i, "name", e.name)
		slots, err := policy.Plant(ctx, e.name, e.tree, corpus)
		if err != nil {
			return nil, fmt.Errorf("failed to plant %q: %w", e.name, err)
		}
		for _, s := range slots {
			switch s.Decision {
			case plant.Create:
				summary.Created++
			case plant.DuplicateIdentical:
				summary.Identical++
			case plant.DuplicateConflicting:
				summary.Conflicting++
				fmt.Fprintf(a.outW, "%s\n%s", a.styled(warnStyle, "dup differs (-stored +derived): "+s.Name), s.Diff)
			}
			if !s.Write {
				continue
			}
			p, err := pathOf(s.Name)
			if err != nil {
				return nil, err
			}
			summary.Paths = append(summary.Paths, p)
		}
	}

	if a.corpus == nil {
		if err := writePathLog(filepath.Join(logDir, LogFileName(a.config.Key)), summary.Paths); err != nil {
			return nil, err
		}
	}
	a.logger.Info("Sowing finished.",
		"experiments", summary.Experiments,
		"created", summary.Created,
		"identical", summary.Identical,
		"conflicting", summary.Conflicting,
		"written", len(summary.Paths),
	)
	return summary, nil
}

// writePathLog records the planted directories for downstream tools.
func writePathLog(path string, paths []string) error {
	items := make([]tree.Value, len(paths))
	for i, p := range paths {
		items[i] = tree.String(p)
	}
	data, err := codec.EncodeYAML(tree.NewSequence(items...))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
