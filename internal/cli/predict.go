package cli

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/lobintsev/evmcrispr/internal/cli/render"
	"github.com/lobintsev/evmcrispr/internal/usecase"
)

// NewPredictCmd creates the predict command
func NewPredictCmd() *cobra.Command {
	var (
		nonce int64
		count int
	)

	cmd := &cobra.Command{
		Use:   "predict <deployer>",
		Short: "Predict the addresses of the next proxies a kernel deploys",
		Long: `Predict the CREATE addresses the given account (usually a DAO kernel)
will deploy next. The current nonce is read from the chain unless --nonce
is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if !common.IsHexAddress(args[0]) {
				return fmt.Errorf("invalid deployer address %q", args[0])
			}

			params := usecase.PredictAddressParams{
				Deployer: common.HexToAddress(args[0]),
				Count:    count,
			}
			if cmd.Flags().Changed("nonce") {
				if nonce < 0 {
					return fmt.Errorf("nonce must not be negative")
				}
				n := uint64(nonce)
				params.Nonce = &n
			}

			result, err := app.PredictAddress.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return render.NewPredictRenderer(cmd.OutOrStdout(), app.Config.JSON).Render(result)
		},
	}

	cmd.Flags().Int64Var(&nonce, "nonce", 0, "Start from this nonce instead of reading it from the chain")
	cmd.Flags().IntVar(&count, "count", 1, "Number of addresses to predict")

	return cmd
}
