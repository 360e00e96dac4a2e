package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lobintsev/evmcrispr/internal/app"
	"github.com/lobintsev/evmcrispr/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "evmcrispr",
		Short: "Compile governance scripts into Aragon DAO actions",
		Long: `evmcrispr interprets scripts written for Aragon DAOs (connect, install,
grant, forward, exec...) and compiles them into the ordered list of
transactions a wallet or a forwarder has to execute. Nothing is submitted.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)

			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.Bool("debug", false, "Enable debug output")
	flags.Bool("non-interactive", false, "Disable spinners and prompts")
	flags.Bool("json", false, "Output in JSON format")
	flags.StringP("network", "n", "", "Network name or chain id (mainnet, rinkeby, gnosis, polygon)")
	flags.String("rpc-url", "", "JSON-RPC endpoint of the network")
	flags.String("ipfs-gateway", "", "IPFS gateway used to fetch app artifacts")
	flags.String("ens", "", "Override the Aragon ENS registry address")
	flags.String("from", "", "Address actions are produced for")
	flags.String("private-key", "", "Derive the sending address from a private key")
	flags.Duration("timeout", 0, "Abort after this duration (default 2m)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	runCmd := NewRunCmd()
	runCmd.GroupID = "main"
	rootCmd.AddCommand(runCmd)

	checkCmd := NewCheckCmd()
	checkCmd.GroupID = "main"
	rootCmd.AddCommand(checkCmd)

	predictCmd := NewPredictCmd()
	predictCmd.GroupID = "management"
	rootCmd.AddCommand(predictCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
