package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lobintsev/evmcrispr/internal/domain/config"
)

// ProjectFileName is the optional project configuration file.
const ProjectFileName = "evmcrispr.toml"

// DefaultIPFSGateway serves artifacts when no gateway is configured.
const DefaultIPFSGateway = "https://ipfs.blossom.software/ipfs/"

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	loadDotEnv(projectRoot)

	file, err := loadProjectFile(projectRoot)
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
		PrivateKey:     strings.TrimPrefix(v.GetString("private_key"), "0x"),
		File:           file,
	}
	if file != nil {
		cfg.ConfigSource = ProjectFileName
	}

	cfg.IPFSGateway = firstNonEmpty(v.GetString("ipfs_gateway"), fileValue(file, func(f *config.ProjectFile) string { return f.IPFSGateway }), DefaultIPFSGateway)
	if !strings.HasSuffix(cfg.IPFSGateway, "/") {
		cfg.IPFSGateway += "/"
	}

	if from := firstNonEmpty(v.GetString("from"), fileValue(file, func(f *config.ProjectFile) string { return f.From })); from != "" {
		if !common.IsHexAddress(from) {
			return nil, fmt.Errorf("invalid from address %q", from)
		}
		addr := common.HexToAddress(from)
		cfg.From = &addr
	}

	network, err := resolveNetwork(v, file)
	if err != nil {
		return nil, err
	}
	cfg.Network = network

	ens := v.GetString("ens")
	if ens == "" && file != nil {
		ens = file.ENS[network.Name]
	}
	if ens != "" {
		if !common.IsHexAddress(ens) {
			return nil, fmt.Errorf("invalid ENS registry address %q", ens)
		}
		addr := common.HexToAddress(ens)
		cfg.ENSRegistry = &addr
	}

	return cfg, nil
}

// FindProjectRoot walks up from current directory to find evmcrispr.toml.
// Falls back to the working directory, the project file is optional.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, ProjectFileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix("EVMCRISPR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("timeout", "2m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	})

	return v
}

func fileValue(file *config.ProjectFile, get func(*config.ProjectFile) string) string {
	if file == nil {
		return ""
	}
	return get(file)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
