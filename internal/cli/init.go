package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/staybook/internal/infra/fsworkspace"
	"github.com/aalvaropc/staybook/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a staybook workspace (config, data files, .gitignore)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := usecase.NewInitWorkspace(fsworkspace.NewInitializer()).Execute(path, force)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Workspace ready at %s\n", root)
			return nil
		},
	}

	c.Flags().StringVarP(&path, "path", "p", ".", "Directory to initialize")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing template files")
	return c
}
