package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/cdframework/cdf-settings/internal/conf"
	"github.com/cdframework/cdf-settings/internal/containers"
	"github.com/cdframework/cdf-settings/internal/l10n"
	"github.com/cdframework/cdf-settings/internal/settings"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, l10n.T("error: %v", err))
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "cdf-settings",
		Usage:     l10n.T("reconcile ContainerDistributionFramework.ini and print the published settings"),
		Version:   Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: l10n.T("read configuration from `FILE`"),
				Value: conf.DefaultPath,
			},
			&cli.StringFlag{
				Name:  "ini",
				Usage: l10n.T("reconcile the plugin settings at `FILE`"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: l10n.T("set log level to `LEVEL` (DEBUG, INFO, WARN, ERROR)"),
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	cs := conf.NewConfigSource(c.String("config"))
	config, err := cs.Read()
	if err != nil {
		return err
	}

	if c.IsSet("ini") {
		config.IniPath = c.String("ini")
	}
	if c.IsSet("log-level") {
		level, ok := conf.ParseLevel(c.String("log-level"))
		if !ok {
			return errors.New(l10n.T("unknown log level %q", c.String("log-level")))
		}
		config.LogLevel = level
	}

	logger := newLogger(c.App.ErrWriter, config.LogLevel)
	slog.SetDefault(logger)

	manager := containers.NewManager()
	r := settings.NewReconciler(config.IniPath)
	r.Logger = logger
	r.Reconcile(manager)

	fmt.Fprintln(c.App.Writer, l10n.T("max lookup radius: %v", manager.MaxLookupRadius()))
	return nil
}

// newLogger writes human readable logs to a terminal and JSON otherwise.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
