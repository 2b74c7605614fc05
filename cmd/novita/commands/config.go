package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/novitalabs/novita-go/internal/constants"
	"github.com/novitalabs/novita-go/pkg/novita"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			baseURL := viper.GetString("base-url")
			if baseURL == "" {
				baseURL = constants.DefaultBaseURL
			}

			apiKey := "not set"
			if viper.GetString("api-key") != "" {
				apiKey = novita.SecretMask
			}

			fmt.Printf("base-url: %s\n", baseURL)
			fmt.Printf("api-key:  %s\n", apiKey)
			fmt.Printf("output:   %s\n", outputFormat())

			if used := viper.ConfigFileUsed(); used != "" {
				fmt.Printf("config:   %s\n", used)
			}

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set api-key, base-url, or output in the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			config := &cliConfig{
				APIKey:  viper.GetString("api-key"),
				BaseURL: viper.GetString("base-url"),
				Output:  viper.GetString("output"),
			}

			switch key {
			case "api-key":
				config.APIKey = value
			case "base-url":
				config.BaseURL = value
			case "output":
				if value != OutputFormatTable && value != OutputFormatJSON && value != OutputFormatYAML {
					return fmt.Errorf("unknown output format %q", value)
				}

				config.Output = value
			default:
				return fmt.Errorf("unknown configuration key %q", key)
			}

			err := saveConfig(config)
			if err != nil {
				return err
			}

			fmt.Printf("%s updated\n", key)

			return nil
		},
	}
}
