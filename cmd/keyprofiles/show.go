package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/keyprofiles/internal/config"
	"github.com/jonathan/keyprofiles/internal/observability"
	"github.com/jonathan/keyprofiles/internal/schemas"
	"github.com/jonathan/keyprofiles/internal/types"
	"github.com/spf13/cobra"
)

type showOptions struct {
	profile    string
	major      string
	minor      string
	format     string
	configPath string
	output     string
	strict     bool
}

func newShowCmd() *cobra.Command {
	var opts showOptions

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the active major and minor profiles",
		Long:  "Resolves the (major, minor) profile pair from flags, config file and environment, in that order, defaulting to temperley/sapp, and prints its weights as text or JSON.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShow(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.profile, "profile", "p", "", "Profile name for both modes")
	cmd.Flags().StringVar(&opts.major, "major", "", "Major profile name")
	cmd.Flags().StringVar(&opts.minor, "minor", "", "Minor profile name")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text or json")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to JSON config file")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "Write JSON output to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail on unknown profile names")
	return cmd
}

// resolveConfig merges flags over the config file over the environment over defaults.
func resolveConfig(flags config.Config, configPath string) (config.Config, error) {
	cfg := flags
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	envCfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}
	cfg = cfg.MergeWithDefaults(envCfg)
	return cfg.MergeWithDefaults(config.Defaults()), nil
}

func runShow(cmd *cobra.Command, opts *showOptions) error {
	if opts.format != "text" && opts.format != "json" {
		return fmt.Errorf("unknown format %q (want text or json)", opts.format)
	}

	flags := config.Config{Major: opts.major, Minor: opts.minor, Strict: opts.strict}
	if opts.profile != "" {
		if flags.Major == "" {
			flags.Major = opts.profile
		}
		if flags.Minor == "" {
			flags.Minor = opts.profile
		}
	}

	cfg, err := resolveConfig(flags, opts.configPath)
	if err != nil {
		return err
	}

	selector, err := cfg.Selector()
	if err != nil {
		return err
	}

	if opts.format == "text" {
		observability.NewPrinter(cmd.OutOrStdout()).PrintSelection(selector)
		return nil
	}

	doc, err := types.NewSelectionDocument(selector)
	if err != nil {
		return fmt.Errorf("cannot export selection %s/%s: %w", cfg.Major, cfg.Minor, err)
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/key_profile_selection.schema.json"); schemaPath != "" {
		if err := schemas.ValidateDocument(schemaPath, doc); err != nil {
			return fmt.Errorf("exported selection is invalid: %w", err)
		}
	}

	jsonOutput, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal selection to JSON: %w", err)
	}

	if opts.output == "" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(jsonOutput))
		return nil
	}
	return writeFile(opts.output, jsonOutput)
}

// writeFile creates the parent directory if needed and writes data.
func writeFile(path string, data []byte) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
