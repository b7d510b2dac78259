package cmd

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/jshelley/ccsm/internal/app"
	"github.com/jshelley/ccsm/internal/history"
	"github.com/jshelley/ccsm/internal/launch"
	"github.com/jshelley/ccsm/internal/logger"
	"github.com/jshelley/ccsm/internal/paths"
)

var (
	debugMode             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "ccsm",
	Short: "Manage and resume Claude Code sessions",
	Long: `ccsm reads the Claude Code history log and presents every recorded
session in an interactive dashboard. Sessions can be resumed in their
project directory or deleted, along with their on-disk files.`,
	RunE:          runDashboard,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging (verbose output to /tmp/ccsm-debug.log)")
}

func initLogging() {
	if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("ccsm %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("ccsm %s\n", version)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	dataDir := paths.DataDir()

	sessions, err := loadSessions(dataDir)
	if err != nil {
		return err
	}

	defer logger.Close()

	m := app.New(dataDir, sessions)
	p := tea.NewProgram(m)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running app: %w", err)
	}

	// Resume was chosen in the dashboard; the program has restored the
	// terminal, so hand the process over to the assistant CLI.
	if target := final.(app.Model).LaunchTarget(); target != nil {
		return launch.Resume(target)
	}
	return nil
}

// loadSessions aggregates the history log, routing parse warnings to stderr.
func loadSessions(dataDir string) ([]*history.Session, error) {
	return history.LoadSessions(dataDir, stderrWarn)
}

// stderrWarn prints a warning line to stderr, for non-fatal per-line and
// per-file problems in the non-interactive commands.
func stderrWarn(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}
