package cmd

import (
	"github.com/spf13/cobra"

	apperrors "github.com/jshelley/ccsm/internal/errors"
	"github.com/jshelley/ccsm/internal/history"
	"github.com/jshelley/ccsm/internal/launch"
	"github.com/jshelley/ccsm/internal/logger"
	"github.com/jshelley/ccsm/internal/paths"
)

var launchCmd = &cobra.Command{
	Use:   "launch <session-id>",
	Short: "Resume a session in its project directory",
	Long: `Looks up a session by full or partial ID, changes to its project
directory, and replaces this process with 'claude --resume'.`,
	Args: cobra.ExactArgs(1),
	RunE: runLaunch,
}

func init() {
	rootCmd.AddCommand(launchCmd)
}

func runLaunch(cmd *cobra.Command, args []string) error {
	sessions, err := loadSessions(paths.DataDir())
	if err != nil {
		return err
	}

	s := history.Resolve(sessions, args[0])
	if s == nil {
		return apperrors.SessionNotFound(args[0])
	}

	defer logger.Close()
	return launch.Resume(s)
}
