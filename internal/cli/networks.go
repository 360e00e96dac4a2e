package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lobintsev/evmcrispr/internal/cli/render"
	"github.com/lobintsev/evmcrispr/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List supported networks",
		Long: `List every network the Aragon registry can be queried on, with its
subgraph, Aragon ENS registry and whether an RPC endpoint is configured.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{})
			if err != nil {
				return err
			}

			renderer := render.NewNetworksRenderer(cmd.OutOrStdout(), !color.NoColor, app.Config.JSON)
			return renderer.Render(result)
		},
	}

	return cmd
}
