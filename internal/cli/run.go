package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lobintsev/evmcrispr/internal/cli/render"
	"github.com/lobintsev/evmcrispr/internal/usecase"
)

// NewRunCmd creates the run command
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Interpret a script and print the actions it produces",
		Long: `Interpret a script document (YAML or JSON AST) and print the ordered
list of actions it compiles to.

The script is validated statically first; any problem aborts before the
registry, IPFS or the chain are queried.`,
		Example: `  evmcrispr run install-vault.yaml --network gnosis
  evmcrispr run install-vault.yaml --json > actions.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if app.Config.JSON {
				out = cmd.ErrOrStderr()
			}

			result, err := app.RunScript.Run(cmd.Context(), usecase.RunScriptParams{
				Path:   args[0],
				Output: out,
			})
			if err != nil {
				return err
			}

			renderer := render.NewActionsRenderer(cmd.OutOrStdout(), !color.NoColor, app.Config.JSON)
			return renderer.Render(result)
		},
	}

	return cmd
}
