//go:build windows

package launch

import (
	"os"
	"os/exec"

	apperrors "github.com/jshelley/ccsm/internal/errors"
)

// execReplace approximates process replacement on Windows, which has no
// exec: run the child with inherited stdio and exit with its status.
func execReplace(bin string, argv []string) error {
	cmd := exec.Command(bin, argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			os.Exit(exitErr.ExitCode())
		}
		return apperrors.E(apperrors.Op("launch.Resume"), apperrors.KindIO, "exec failed", err)
	}
	os.Exit(0)
	return nil
}
