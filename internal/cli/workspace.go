package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/staybook/internal/domain"
	"github.com/aalvaropc/staybook/internal/infra/csvstore"
	"github.com/aalvaropc/staybook/internal/infra/logger"
	"github.com/aalvaropc/staybook/internal/infra/workspacefinder"
	"github.com/aalvaropc/staybook/internal/ports"
	"github.com/aalvaropc/staybook/internal/usecase"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	reservations *usecase.ReservationService
	hosts        *usecase.HostService
	guests       *usecase.GuestService
}

// openWorkspace resolves the workspace, starts the file logger under it and
// wires repositories and services. The returned cleanup closes the log file.
func openWorkspace(workspaceFlag string, debug bool) (*workspaceCtx, func(), error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, func() {}, err
	}

	closeLog, lerr := logger.Setup(logger.Config{Root: root, Debug: debug})
	cleanup := func() {
		if closeLog != nil {
			_ = closeLog()
		}
	}

	ws, err := loadWorkspace(root, logger.L())
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}
	if lerr != nil {
		logger.L().Warn("logger.unavailable", "err", lerr)
	}
	return ws, cleanup, nil
}

func loadWorkspace(root string, log *slog.Logger) (*workspaceCtx, error) {
	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	hostRepo := csvstore.NewHostRepository(cfg.Paths.HostsFile, csvstore.WithHostCacheTTL(cfg.Cache.TTL))
	guestRepo := csvstore.NewGuestRepository(cfg.Paths.GuestsFile, csvstore.WithGuestCacheTTL(cfg.Cache.TTL))
	resRepo := csvstore.NewReservationRepository(cfg.Paths.ReservationsDir, csvstore.WithReservationLogger(log))

	log.Debug("workspace.loaded",
		"root", root,
		"reservations_dir", cfg.Paths.ReservationsDir,
		"hosts_file", cfg.Paths.HostsFile,
		"guests_file", cfg.Paths.GuestsFile,
		"cache_ttl", cfg.Cache.TTL.String(),
	)

	return &workspaceCtx{
		root:         root,
		cfg:          cfg,
		reservations: usecase.NewReservationService(resRepo, hostRepo, guestRepo, usecase.WithLogger(log)),
		hosts:        usecase.NewHostService(hostRepo),
		guests:       usecase.NewGuestService(guestRepo),
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	var locator ports.WorkspaceLocator = workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `staybook init`): %w", wd, err)
	}
	return root, nil
}

// findHost resolves a host by email. A business failure is reported as an error
// carrying the result messages.
func findHost(ws *workspaceCtx, email string) (domain.Host, error) {
	res, err := ws.hosts.FindByEmail(email)
	if err != nil {
		return domain.Host{}, err
	}
	if !res.IsSuccess() {
		return domain.Host{}, failure(res.Messages())
	}
	return res.Payload(), nil
}

func findGuest(ws *workspaceCtx, email string) (domain.Guest, error) {
	res, err := ws.guests.FindByEmail(email)
	if err != nil {
		return domain.Guest{}, err
	}
	if !res.IsSuccess() {
		return domain.Guest{}, failure(res.Messages())
	}
	return res.Payload(), nil
}

// failure joins result messages into a single error; cobra prints it and the
// process exits non-zero.
func failure(messages []string) error {
	return fmt.Errorf("%s", strings.Join(messages, "\n"))
}
