package usecase

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/staybook/internal/domain"
	"github.com/aalvaropc/staybook/internal/ports"
)

type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

// Execute scaffolds a workspace in dir and returns the absolute root used.
func (uc *InitWorkspace) Execute(dir string, force bool) (string, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("invalid workspace path: %w", err)
	}
	if err := uc.initializer.Init(domain.WorkspaceSpec{Root: root}, force); err != nil {
		return "", err
	}
	return root, nil
}
