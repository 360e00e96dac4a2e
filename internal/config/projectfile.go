package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/lobintsev/evmcrispr/internal/domain/config"
)

// loadDotEnv loads .env and .env.local from the project root. Variables
// already present in the environment are not overridden.
func loadDotEnv(projectRoot string) {
	for _, name := range []string{".env", ".env.local"} {
		envFile := filepath.Join(projectRoot, name)
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
		}
	}
}

// loadProjectFile loads and parses evmcrispr.toml if it exists.
// Returns (nil, nil) when the file does not exist.
func loadProjectFile(projectRoot string) (*config.ProjectFile, error) {
	path := filepath.Join(projectRoot, ProjectFileName)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var file config.ProjectFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ProjectFileName, err)
	}

	file.Network = os.ExpandEnv(file.Network)
	file.IPFSGateway = os.ExpandEnv(file.IPFSGateway)
	file.From = os.ExpandEnv(file.From)
	for _, m := range []map[string]string{file.RPCEndpoints, file.Subgraphs, file.ENS} {
		for k, v := range m {
			m[k] = os.ExpandEnv(v)
		}
	}

	return &file, nil
}
