package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/showcase/internal/config"
	"github.com/alexisbeaulieu97/showcase/internal/logger"
	"github.com/alexisbeaulieu97/showcase/internal/manifest"
)

// session bundles what every command needs: resolved settings, the page
// manifest and a logger.
type session struct {
	settings config.Settings
	manifest *manifest.Manifest
	log      *logger.Logger
	closer   io.Closer
}

func (s *session) Close() {
	if s.closer != nil {
		_ = s.closer.Close()
	}
}

func openSession(cmd *cobra.Command, flags *rootFlags) (*session, error) {
	settings, err := resolveSettings(cmd, flags)
	if err != nil {
		return nil, err
	}

	m, err := manifest.Load(settings.Manifest)
	if err != nil {
		return nil, fmt.Errorf("load manifest: %w", err)
	}

	log, closer, err := openLogger(settings.Log)
	if err != nil {
		return nil, err
	}
	log.Debugf("session opened", map[string]any{
		"manifest": manifestName(settings.Manifest),
		"sections": len(m.Sections),
	})

	return &session{settings: settings, manifest: m, log: log, closer: closer}, nil
}

// resolveSettings layers explicitly set flags over file and environment settings.
func resolveSettings(cmd *cobra.Command, flags *rootFlags) (config.Settings, error) {
	settings, err := config.Load(flags.configPath)
	if err != nil {
		return config.Settings{}, fmt.Errorf("load settings: %w", err)
	}

	changed := cmd.Flags().Changed
	if changed("manifest") {
		settings.Manifest = flags.manifestPath
	}
	if changed("log-file") {
		settings.Log.File = flags.logFile
	}
	if changed("log-level") {
		settings.Log.Level = flags.logLevel
	}
	if changed("human-readable") {
		settings.Log.HumanReadable = flags.humanReadable
	}

	if err := config.Validate(&settings); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

// openLogger writes to the configured file. Without one, logs are discarded
// because the interactive program owns the terminal.
func openLogger(opts config.LogSettings) (*logger.Logger, io.Closer, error) {
	var (
		writer io.Writer = io.Discard
		closer io.Closer
	)
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		writer, closer = f, f
	}

	log, err := logger.New(logger.Options{
		Level:         opts.Level,
		HumanReadable: opts.HumanReadable,
		Writer:        writer,
		Session:       logger.NewSessionID(),
	})
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	return log, closer, nil
}

func manifestName(path string) string {
	if path == "" {
		return manifest.DefaultPath
	}
	return path
}
