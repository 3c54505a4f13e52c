package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/deckcite/deckcite/internal/format"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Get and set deckcite configuration",
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigGet,
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	if humanOutput {
		fmt.Printf("template:     %s\n", cfg.Template)
		fmt.Printf("delimiter:    %q\n", cfg.Delimiter)
		fmt.Printf("start_index:  %d\n", cfg.StartIndex)
		fmt.Printf("search_limit: %d\n", cfg.SearchLimit)
		fmt.Printf("mailto:       %s\n", cfg.Mailto)
		fmt.Printf("abbreviate:   %t\n", cfg.Abbreviate)
	} else {
		outputJSON(cfg)
	}
	return nil
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and save the config file.

Keys: template, delimiter, start_index, search_limit, mailto, abbreviate

Example:
  deckcite config set template "[{#}] {creator}, <i>{journal}</i> ({year})"`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	key, value := args[0], args[1]

	switch key {
	case "template":
		spec := format.Spec{Template: value}
		if err := spec.Validate(); err != nil {
			exitWithError(ExitDataError, "%v", err)
		}
		cfg.Template = value
	case "delimiter":
		cfg.Delimiter = value
	case "start_index":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			exitWithError(ExitError, "start_index must be a non-negative integer")
		}
		cfg.StartIndex = n
	case "search_limit":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			exitWithError(ExitError, "search_limit must be a positive integer")
		}
		cfg.SearchLimit = n
	case "mailto":
		cfg.Mailto = value
	case "abbreviate":
		b, err := strconv.ParseBool(value)
		if err != nil {
			exitWithError(ExitError, "abbreviate must be true or false")
		}
		cfg.Abbreviate = b
	default:
		exitWithError(ExitError, "unknown config key: %s", key)
	}

	if err := cfg.Save(); err != nil {
		exitWithError(ExitConfigError, "saving config: %v", err)
	}

	if humanOutput {
		fmt.Printf("Set %s = %s\n", key, value)
	} else {
		outputJSON(StatusResponse{Status: "updated", Key: key})
	}
	return nil
}
