package cmd

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"

	apperrors "github.com/jshelley/ccsm/internal/errors"
	"github.com/jshelley/ccsm/internal/format"
	"github.com/jshelley/ccsm/internal/history"
	"github.com/jshelley/ccsm/internal/paths"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session and all its data",
	Long: `Looks up a session by full or partial ID, asks for confirmation, then
removes its entries from the history log and deletes its files.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	dataDir := paths.DataDir()

	sessions, err := loadSessions(dataDir)
	if err != nil {
		return err
	}

	s := history.Resolve(sessions, args[0])
	if s == nil {
		return apperrors.SessionNotFound(args[0])
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  Session ID:  %s\n", s.SessionID)
	fmt.Fprintf(out, "  Project:     %s\n", s.ProjectPath)
	fmt.Fprintf(out, "  Created:     %s\n", format.Time(s.CreatedAt))
	fmt.Fprintf(out, "  Last active: %s\n", format.Time(s.LastActiveAt))
	fmt.Fprintf(out, "  Last command: %s\n", format.Truncate(strings.TrimSpace(s.LatestCommand), 60))
	fmt.Fprintln(out)

	ok, err := confirmDelete()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
		return err
	}
	if !ok {
		fmt.Fprintln(out, "Aborted.")
		return nil
	}

	if _, err := history.DeleteSessionsFromHistory(dataDir, map[string]struct{}{s.SessionID: {}}); err != nil {
		return err
	}
	history.DeleteSessionFiles(dataDir, s.ProjectPath, s.SessionID, stderrWarn)

	fmt.Fprintf(out, "Session '%s' deleted.\n", s.SessionID)
	return nil
}

func confirmDelete() (bool, error) {
	var ok bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Delete this session?").
			Affirmative("Yes").
			Negative("No").
			Value(&ok),
	))
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}
