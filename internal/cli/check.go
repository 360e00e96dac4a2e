package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lobintsev/evmcrispr/internal/cli/render"
	"github.com/lobintsev/evmcrispr/internal/usecase"
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <script>",
		Short: "Validate a script without querying any external service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.CheckScript.Run(cmd.Context(), usecase.CheckScriptParams{Path: args[0]})
			if err != nil {
				return err
			}

			if err := render.NewCheckRenderer(cmd.OutOrStdout()).Render(result); err != nil {
				return err
			}
			if !result.Valid() {
				return fmt.Errorf("script %s is invalid", args[0])
			}
			return nil
		},
	}

	return cmd
}
