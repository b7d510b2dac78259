// Package launch hands the current process over to the Claude CLI to
// resume a session. On success Resume never returns: the process image is
// replaced (or, on platforms without exec, the process exits with the
// child's status).
package launch

import (
	"os"
	"os/exec"

	apperrors "github.com/jshelley/ccsm/internal/errors"
	"github.com/jshelley/ccsm/internal/history"
	"github.com/jshelley/ccsm/internal/logger"
)

// ClaudeBinary is the external assistant CLI invoked to resume a session.
const ClaudeBinary = "claude"

// ProjectDirExists reports whether the session's project directory is
// still present. The dashboard checks this before attempting a resume so
// it can surface the failure without tearing down the terminal.
func ProjectDirExists(s *history.Session) bool {
	info, err := os.Stat(s.ProjectPath)
	return err == nil && info.IsDir()
}

// Resume changes into the session's project directory and replaces the
// current process with `claude --resume <id>`. It returns an error only
// on failure: project directory gone, claude not installed, or the exec
// itself failing.
func Resume(s *history.Session) error {
	if !ProjectDirExists(s) {
		return apperrors.ProjectDirMissing(s.ProjectPath)
	}

	bin, err := exec.LookPath(ClaudeBinary)
	if err != nil {
		return apperrors.E(apperrors.Op("launch.Resume"), apperrors.KindNotFound,
			"claude CLI not found in PATH", err)
	}

	if err := os.Chdir(s.ProjectPath); err != nil {
		return apperrors.E(apperrors.Op("launch.Resume"), apperrors.KindIO, err)
	}

	logger.Info("Resuming session %s in %s", s.SessionID, s.ProjectPath)
	logger.Close()

	return execReplace(bin, []string{ClaudeBinary, "--resume", s.SessionID})
}
