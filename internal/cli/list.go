package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/clipdir/internal/config"
)

func (a *App) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"l"},
		Short:   "List clipboard entries prefixed with their id",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.service().List(cmd.Context(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&a.previewLength, "preview-length", config.DefaultPreviewLength, "bytes of a text entry shown in the preview (env "+config.EnvPreviewLength+")")
	return cmd
}
