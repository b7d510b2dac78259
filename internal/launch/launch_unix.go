//go:build !windows

package launch

import (
	"os"
	"syscall"

	apperrors "github.com/jshelley/ccsm/internal/errors"
)

// execReplace replaces the current process image. It only returns on
// failure.
func execReplace(bin string, argv []string) error {
	if err := syscall.Exec(bin, argv, os.Environ()); err != nil {
		return apperrors.E(apperrors.Op("launch.Resume"), apperrors.KindIO, "exec failed", err)
	}
	return nil
}
