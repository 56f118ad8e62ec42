package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/showcase/internal/tui/site"
)

const (
	staticWidth  = 80
	staticHeight = 24
)

type rootFlags struct {
	configPath    string
	manifestPath  string
	logFile       string
	logLevel      string
	humanReadable bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "showcase",
		Short:         "Showcase renders the studio landing page in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowcase(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Settings file (.yaml, .yml or .toml)")
	cmd.PersistentFlags().StringVarP(&flags.manifestPath, "manifest", "m", "", "Page manifest (defaults to the built-in page)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error, disabled)")
	cmd.PersistentFlags().BoolVar(&flags.humanReadable, "human-readable", false, "Write console-formatted logs instead of JSON")

	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newProfilesCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runShowcase(cmd *cobra.Command, flags *rootFlags) error {
	sess, err := openSession(cmd, flags)
	if err != nil {
		return err
	}
	defer sess.Close()

	model, err := site.NewModel(site.Options{
		Manifest: sess.manifest,
		Settings: sess.settings,
		Logger:   sess.log,
	})
	if err != nil {
		return err
	}
	defer model.Page().Teardown()

	out := cmd.OutOrStdout()
	file, interactive := terminal(out)
	if !interactive {
		sess.log.Info("stdout is not a terminal, rendering a static frame")
		width, height := staticWidth, staticHeight
		if file != nil {
			if w, h, err := term.GetSize(int(file.Fd())); err == nil && w > 0 && h > 0 {
				width, height = w, h
			}
		}
		_, err := fmt.Fprintln(out, model.Static(width, height))
		return err
	}

	sess.log.Info("starting interactive session")
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithOutput(file),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil {
		sess.log.Error(err, "session failed")
		return fmt.Errorf("failed to run showcase: %w", err)
	}
	sess.log.Info("session closed")
	return nil
}

// terminal reports whether w is an interactive terminal. The file is returned
// whenever w is an *os.File so its size can still be queried.
func terminal(w io.Writer) (*os.File, bool) {
	file, ok := w.(*os.File)
	if !ok {
		return nil, false
	}
	return file, term.IsTerminal(int(file.Fd()))
}
