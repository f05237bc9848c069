package site

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
	ferrors "git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
	"git.home.luguber.info/inful/blogbuilder/internal/markdown"
	"git.home.luguber.info/inful/blogbuilder/internal/metrics"
	"git.home.luguber.info/inful/blogbuilder/internal/observability"
	"git.home.luguber.info/inful/blogbuilder/internal/templates"
)

// Generator runs one site generation from a source tree into a destination tree.
type Generator struct {
	cfg      *config.Config
	source   string
	dest     string
	recorder metrics.Recorder
	logger   observability.Logger
}

// NewGenerator creates a Generator. A nil cfg uses config.Default().
func NewGenerator(cfg *config.Config, source, dest string) *Generator {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Generator{
		cfg:      cfg,
		source:   source,
		dest:     dest,
		recorder: metrics.NoopRecorder{},
		logger:   observability.NewContextLogger(nil),
	}
}

// WithRecorder sets the metrics recorder.
func (g *Generator) WithRecorder(r metrics.Recorder) *Generator {
	if r != nil {
		g.recorder = r
	}
	return g
}

// WithLogger sets the logger.
func (g *Generator) WithLogger(l *slog.Logger) *Generator {
	g.logger = observability.NewContextLogger(l)
	return g
}

// Generate loads the templates, mirrors the source tree and writes the posts
// index. The context only carries log attributes; a run is not cancelable.
// The returned report is never nil, even when err is not.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	buildID := observability.NewBuildID()
	ctx = observability.WithBuildID(ctx, buildID)
	report := newReport(buildID, g.source, g.dest)

	g.logger.Info(ctx, "Starting site generation", logfields.Source(g.source), logfields.Dest(g.dest))

	err := g.generate(ctx, report)
	report.finish(err)
	g.recorder.ObserveBuildDuration(report.Duration())
	g.recorder.IncBuildOutcome(report.Outcome)

	if err != nil {
		g.logger.Error(ctx, "Site generation failed", logfields.Error(err), logfields.Outcome(string(report.Outcome)))
		return report, err
	}
	g.logger.Info(ctx, "Site generation completed",
		slog.Int("directories", report.Directories),
		slog.Int("documents", report.Documents),
		slog.Int("posts", report.Posts),
		slog.Int("copied", report.Copied),
		logfields.Duration(report.Duration()))
	return report, nil
}

func (g *Generator) generate(ctx context.Context, report *Report) error {
	layout := LayoutFromConfig(g.cfg)

	var store *templates.Store
	err := g.stage(ctx, report, StageTemplates, func(ctx context.Context) error {
		var err error
		store, err = templates.Load(g.source, layout.Templates)
		if err != nil {
			return err
		}
		for _, t := range []*templates.Template{store.Page, store.Summary} {
			g.logger.Debug(ctx, "Loaded template", logfields.Template(t.Name()))
		}
		return nil
	})
	if err != nil {
		return err
	}

	converter, err := markdown.NewConverter(g.cfg.MarkdownOptions())
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryConfig, "configure markdown converter").Build()
	}

	posts := &Collector{}
	err = g.stage(ctx, report, StageTraverse, func(ctx context.Context) error {
		if err := ensureDir(g.dest); err != nil {
			return err
		}
		t := &traverser{
			layout: layout,
			documents: &documentRenderer{
				converter:   converter,
				page:        store.Page,
				frontMatter: layout.FrontMatter,
			},
			posts:    posts,
			report:   report,
			recorder: g.recorder,
			logger:   g.logger,
		}
		return t.run(ctx, traversalTask{src: g.source, dst: g.dest})
	})
	if err != nil {
		return err
	}

	return g.stage(ctx, report, StageIndex, func(ctx context.Context) error {
		path, err := BuildIndex(posts.Records(), g.dest, store, IndexOptions{
			File:    g.cfg.Site.IndexFile,
			Heading: g.cfg.Site.IndexHeading,
			Title:   g.cfg.Site.IndexTitle,
		})
		if err != nil {
			return err
		}
		report.IndexPath = path
		g.logger.Info(ctx, "Wrote posts index", logfields.Path(path), logfields.Count(posts.Len()))
		return nil
	})
}

// stage runs fn and records its duration under name.
func (g *Generator) stage(ctx context.Context, report *Report, name string, fn func(context.Context) error) error {
	ctx = observability.WithStage(ctx, name)
	start := time.Now()
	err := fn(ctx)
	d := time.Since(start)

	report.StageDurations[name] = d
	g.recorder.ObserveStageDuration(name, d)
	g.logger.Debug(ctx, "Stage finished", logfields.Duration(d), slog.Bool("ok", err == nil))
	return err
}

// Generate is a convenience wrapper running a default-configured Generator.
func Generate(source, dest string) error {
	_, err := NewGenerator(nil, filepath.Clean(source), filepath.Clean(dest)).Generate(context.Background())
	return err
}
