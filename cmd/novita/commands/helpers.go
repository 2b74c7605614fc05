package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/novitalabs/novita-go/pkg/novita"
	"github.com/novitalabs/novita-go/pkg/novitaclient"
)

// Output formats.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"

	defaultJSONIndent = "  "

	// NotAvailable fills table cells with no value.
	NotAvailable = "N/A"
)

// createClient builds an API client from flags, the config file and the
// environment, in that order of precedence.
func createClient() (novita.Client, error) {
	config := &novita.Config{
		APIKey:  viper.GetString("api-key"),
		BaseURL: viper.GetString("base-url"),
	}

	client, err := novitaclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// outputFormat returns the selected output format.
func outputFormat() string {
	format := viper.GetString("output")
	if format == "" {
		return OutputFormatTable
	}

	return format
}

// renderStructured prints data as JSON or YAML when one of those formats
// is selected. It reports whether it handled the output.
func renderStructured(data interface{}) (bool, error) {
	switch outputFormat() {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", defaultJSONIndent)

		if err := encoder.Encode(data); err != nil {
			return false, fmt.Errorf("encoding json: %w", err)
		}

		return true, nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)
		defer func() { _ = encoder.Close() }()

		if err := encoder.Encode(data); err != nil {
			return false, fmt.Errorf("encoding yaml: %w", err)
		}

		return true, nil
	default:
		return false, nil
	}
}

// orDash substitutes NotAvailable for empty table cells.
func orDash(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}
