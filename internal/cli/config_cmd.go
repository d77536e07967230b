package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evcraddock/portfolio/internal/lang"
)

// configKeys are the settings `config set` accepts.
var configKeys = []string{"server-url", "languages", "reports"}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the CLI configuration",
		Long:  "Show or change ~/.config/portfolio/config.yaml. PORTFOLIO_* environment variables take precedence over it.",
	}

	cmd.AddCommand(newConfigShowCmd(), newConfigSetCmd())

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), cfg)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "server-url: %s\n", cfg.ServerURL)
			fmt.Fprintf(w, "languages:  %s\n", strings.Join(cfg.Languages, ","))
			fmt.Fprintf(w, "reports:    %s\n", cfg.Reports)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Save a configuration value",
		Long:      "Save a configuration value. Keys: " + strings.Join(configKeys, ", ") + ". An empty value clears the key.",
		Args:      cobra.ExactArgs(2),
		ValidArgs: configKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := setConfigValue(&cfg, args[0], args[1]); err != nil {
				return err
			}
			if err := saveConfig(cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s.\n", args[0])
			return nil
		},
	}
}

// setConfigValue applies one key to cfg, validating the value.
func setConfigValue(cfg *CLIConfig, key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "server-url":
		cfg.ServerURL = strings.TrimRight(value, "/")
	case "languages":
		codes, err := lang.ParseList(value)
		if err != nil {
			return err
		}
		cfg.Languages = codes
	case "reports":
		cfg.Reports = value
	default:
		return fmt.Errorf("unknown config key %q (want one of %s)", key, strings.Join(configKeys, ", "))
	}
	return nil
}
