package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jshelley/ccsm/internal/format"
	"github.com/jshelley/ccsm/internal/paths"
)

const lsCommandWidth = 50

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all recorded sessions",
	Long: `Prints every session from the history log as an aligned table,
sorted by last modification date (most recent first).`,
	RunE: runLs,
}

func init() {
	rootCmd.AddCommand(lsCmd)
}

func runLs(cmd *cobra.Command, args []string) error {
	sessions, err := loadSessions(paths.DataDir())
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Fprintln(os.Stderr, "No sessions found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Session ID\tProject Directory\tLast message\tCreated\tLast Modified")
	for _, s := range sessions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			s.ShortID(),
			s.ProjectPath,
			format.Truncate(strings.TrimSpace(s.LatestCommand), lsCommandWidth),
			format.Time(s.CreatedAt),
			format.Time(s.LastActiveAt),
		)
	}
	return w.Flush()
}
