package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mtgban/go-mtgscript/cardscript"
)

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the policy file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "mtgscript", "config.toml")
}

// LoadConfig reads the policy at configPath, creating a default one if the
// file does not exist yet.
func LoadConfig(configPath string) (cardscript.Policy, error) {
	if configPath == "" {
		configPath = GetConfigFilePath()
	}

	file, err := os.Open(configPath)
	if os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	} else if err != nil {
		return cardscript.Policy{}, err
	}
	defer file.Close()

	policy, err := cardscript.LoadPolicy(file)
	if err != nil {
		return policy, fmt.Errorf("%s: %w", configPath, err)
	}
	return policy, nil
}

func createDefaultConfig(configPath string) (cardscript.Policy, error) {
	policy := cardscript.DefaultPolicy()

	err := os.MkdirAll(filepath.Dir(configPath), 0755)
	if err != nil {
		return policy, fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return policy, fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	err = cardscript.WritePolicy(file, policy)
	if err != nil {
		return policy, fmt.Errorf("error encoding config: %w", err)
	}

	return policy, nil
}
