package main

import (
	"fmt"
	"os"

	"github.com/filetug/paneltug/pkg/paneltug"
	"github.com/filetug/paneltug/pkg/paneltug/ptlog"
	"github.com/filetug/paneltug/pkg/paneltug/ptsettings"
	"github.com/filetug/paneltug/pkg/profiling"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var osExit = os.Exit
var osGetwd = os.Getwd

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		osExit(1)
	}
}

type rootOptions struct {
	configPath string
	logLevel   string
	cpuProfile string
	memProfile string
}

func newRootCmd() *cobra.Command {
	var o rootOptions
	cmd := &cobra.Command{
		Use:   "paneltug",
		Short: "Browse directories in three panes: parent, current and child",
		Long: `paneltug starts in the current working directory.

Keys: ↑/↓ select, ← go to parent, → enter directory, q quit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowser(o)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&o.configPath, "config", "", "settings file (default is ~/.paneltug/settings.yaml)")
	flags.StringVar(&o.logLevel, "log-level", "", "overrides log_level from settings")
	flags.StringVar(&o.cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flags.StringVar(&o.memProfile, "memprofile", "", "write memory profile to `file`")
	return cmd
}

func runBrowser(o rootOptions) error {
	settings, err := ptsettings.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		settings.LogLevel = o.logLevel
	}
	closeLog, err := ptlog.Setup(logrus.StandardLogger(), settings.LogFile, settings.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	if o.cpuProfile != "" {
		stopCPUProfiling := profiling.DoCPUProfiling(o.cpuProfile)
		defer stopCPUProfiling()
	}
	if o.memProfile != "" {
		writeMemProfile := profiling.DoMemProfiling(o.memProfile)
		defer writeMemProfile()
	}

	startDir, err := osGetwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	return run(newApp(startDir, settings))
}

var setupApp = paneltug.SetupApp

var newApp = func(startDir string, settings ptsettings.Settings) *tview.Application {
	app := tview.NewApplication()
	setupApp(app, startDir, settings)
	return app
}

type application interface{ Run() error }

var run = func(app application) error {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("terminal failure")
		return fmt.Errorf("terminal failure: %w", err)
	}
	return nil
}
