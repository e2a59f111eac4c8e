package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"rotviz/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the rotviz configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Writes a config file populated with the built-in defaults, to --config
if given or to the per-user config directory otherwise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Write(config.Default(), cfgFile)
		if err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cfgFile, nil)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		data, err := yaml.Marshal(c)
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}
