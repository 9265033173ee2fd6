package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/staybook/internal/infra/logger"
	"github.com/aalvaropc/staybook/internal/ui/console"
	"github.com/aalvaropc/staybook/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootFlags struct {
	workspace string
	debug     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	var plain bool

	cmd := &cobra.Command{
		Use:          "staybook",
		Short:        "staybook: reservations for hosts and guests",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, cleanup, err := openWorkspace(flags.workspace, flags.debug)
			if err != nil {
				return err
			}
			defer cleanup()

			c := console.NewIO(cmd.InOrStdin(), cmd.OutOrStdout())

			var menu console.MenuSelector
			if !plain && isTerminal(os.Stdin) && isTerminal(os.Stdout) {
				menu = tui.NewListSelector(os.Stdin, os.Stdout,
					tui.WithLogger(logger.L()),
					tui.WithSubtitle("Workspace: "+ws.root),
				)
			}

			logger.L().Info("session.start", "root", ws.root, "plain", menu == nil)
			ctrl := console.NewController(console.NewView(c, menu), ws.reservations, ws.hosts, ws.guests, logger.L())
			return ctrl.Run()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable verbose logging to .staybook/logs/staybook.log")
	cmd.Flags().BoolVar(&plain, "plain", false, "use numbered prompts instead of the full-screen menu")

	cmd.AddCommand(
		initCmd(),
		reservationsCmd(flags),
		hostsCmd(flags),
		guestsCmd(flags),
		versionCmd(),
	)
	return cmd
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
