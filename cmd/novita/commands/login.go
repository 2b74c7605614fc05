package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/novitalabs/novita-go/internal/constants"
	"github.com/novitalabs/novita-go/pkg/novita"
	"github.com/novitalabs/novita-go/pkg/novitaclient"
)

// cliConfig is the persisted shape of ~/.novita/config.yml.
type cliConfig struct {
	APIKey  string `yaml:"api-key"`
	BaseURL string `yaml:"base-url,omitempty"`
	Output  string `yaml:"output,omitempty"`
}

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var apiKey string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API key",
		Long:  "Verify an API key against the API and store it in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoginCommand(apiKey)
		},
	}

	cmd.Flags().StringVar(&apiKey, "key", "", "API key (prompted for when omitted)")

	return cmd
}

func runLoginCommand(apiKey string) error {
	if apiKey == "" {
		fmt.Print("API key: ")

		byteKey, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("reading API key: %w", err)
		}

		fmt.Println()

		apiKey = string(byteKey)
	}

	if apiKey == "" {
		return &novita.ConfigurationError{Message: "API key must not be empty"}
	}

	// Verify the key with a cheap read before persisting it.
	client, err := novitaclient.NewWithAPIKey(apiKey)
	if err != nil {
		return err
	}

	defer func() { _ = client.Close() }()

	_, err = client.GPU().Clusters().List(context.Background())
	if err != nil {
		if novita.IsAuthentication(err) {
			return fmt.Errorf("API key rejected: %w", err)
		}

		return fmt.Errorf("verifying API key: %w", err)
	}

	err = saveConfig(&cliConfig{APIKey: apiKey})
	if err != nil {
		return err
	}

	fmt.Println("Login successful.")

	return nil
}

func saveConfig(config *cliConfig) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".novita")

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yml")

	err = os.WriteFile(configPath, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
