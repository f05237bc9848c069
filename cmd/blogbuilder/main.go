package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
	ferrors "git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/metrics"
	"git.home.luguber.info/inful/blogbuilder/internal/observability"
	"git.home.luguber.info/inful/blogbuilder/internal/site"
	"git.home.luguber.info/inful/blogbuilder/internal/version"
)

const usageLine = "USAGE: blogbuilder in_dir out_dir"

// logLevelEnv overrides the configured log level when set.
const logLevelEnv = "BLOGBUILDER_LOG_LEVEL"

// CLI is the command line of the generator.
type CLI struct {
	Source string `arg:"" name:"in_dir" help:"Source tree containing template.html and blog.html" type:"path"`
	Dest   string `arg:"" name:"out_dir" help:"Destination tree (created if missing)" type:"path"`

	Config      string           `short:"c" help:"Configuration file path" type:"path"`
	Verbose     bool             `short:"v" help:"Enable verbose logging"`
	MetricsFile string           `name:"metrics-file" help:"Write Prometheus metrics in text format to this file" type:"path"`
	Report      string           `name:"report" help:"Write the JSON build report to this file" type:"path"`
	Version     kong.VersionFlag `name:"version" help:"Show version and exit"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// exitRequest carries an exit code requested by kong (help, version) out of Parse.
type exitRequest int

// run parses args, performs one generation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) (code int) {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("blogbuilder"),
		kong.Description("Render a Markdown source tree into a static HTML site with a posts index."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(c int) { panic(exitRequest(c)) }),
		kong.Vars{"version": version.String()},
	)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ferrors.ExitFailure
	}

	defer func() {
		if r := recover(); r != nil {
			req, ok := r.(exitRequest)
			if !ok {
				panic(r)
			}
			code = int(req)
		}
	}()
	if _, err := parser.Parse(args); err != nil {
		_, _ = fmt.Fprintln(stdout, usageLine)
		return ferrors.ExitFailure
	}

	return cli.execute(stderr)
}

func (c *CLI) execute(stderr io.Writer) int {
	bootstrap := observability.NewLogger(stderr, c.level(config.LogLevelInfo), string(config.LogFormatText))
	slog.SetDefault(bootstrap)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return ferrors.NewCLIErrorAdapter(c.Verbose, bootstrap).Report(stderr, err)
	}

	logger := observability.NewLogger(stderr, c.level(cfg.Logging.Level), string(cfg.Logging.Format))
	slog.SetDefault(logger)
	adapter := ferrors.NewCLIErrorAdapter(c.Verbose, logger)

	reg := prom.NewRegistry()
	report, genErr := site.NewGenerator(cfg, filepath.Clean(c.Source), filepath.Clean(c.Dest)).
		WithRecorder(metrics.NewPrometheusRecorder(reg)).
		WithLogger(logger).
		Generate(context.Background())

	logger.Info("Build summary", "summary", report.Summary())

	if path := firstNonEmpty(c.Report, cfg.Report.File); path != "" {
		if err := report.Persist(path); err != nil {
			logger.Warn("Failed to persist build report", "path", path, "error", err)
		}
	}
	if path := firstNonEmpty(c.MetricsFile, cfg.Metrics.Textfile); path != "" {
		if err := metrics.WriteTextfile(path, reg); err != nil {
			logger.Warn("Failed to write metrics textfile", "path", path, "error", err)
		}
	}

	return adapter.Report(stderr, genErr)
}

// level resolves the log level. Precedence: --verbose > BLOGBUILDER_LOG_LEVEL > configured.
func (c *CLI) level(configured config.LogLevel) slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	if env := os.Getenv(logLevelEnv); env != "" {
		return config.NormalizeLogLevel(env).SlogLevel()
	}
	return configured.SlogLevel()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
