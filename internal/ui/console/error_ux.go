package console

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/staybook/internal/domain"
)

// userMessage turns a fault into a one-line message fit for the console. The
// full error goes to the log.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindDataAccess:
			if strings.TrimSpace(oe.Path) != "" {
				return "Could not access data file " + filepath.Base(oe.Path) + " (see logs)"
			}
			return "Could not access data files (see logs)"
		case domain.KindNotFound:
			if strings.Contains(oe.Op, "workspacefinder") {
				return "Workspace not found"
			}
			return "Not found"
		case domain.KindInvalidConfig:
			if strings.TrimSpace(oe.Path) != "" {
				return "Invalid config at " + filepath.Base(oe.Path)
			}
			return "Invalid config"
		}
	}

	if errors.Is(err, domain.ErrDataAccess) {
		return "Could not access data files (see logs)"
	}
	return "Unexpected error (see logs)"
}
