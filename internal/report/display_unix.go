//go:build linux || freebsd || openbsd || netbsd

package report

import (
	"os"

	"github.com/pkg/errors"
)

// backendAvailable reports whether an X11 or Wayland server is reachable.
func backendAvailable() error {
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return errors.New("neither DISPLAY nor WAYLAND_DISPLAY is set")
	}
	return nil
}
