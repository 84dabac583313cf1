package main

import (
	"fmt"
	"os"

	"github.com/soypat/sdfparts/form3/obj3/extrusion"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "v0.1.0"

// Global flag values.
var (
	flagConfig  string
	flagVerbose bool
)

// Set by PersistentPreRunE for all subcommands.
var (
	cfg     *viper.Viper
	catalog *extrusion.Catalog
)

var rootCmd = &cobra.Command{
	Use:   "partgen",
	Short: "Generate T-slot extrusions and printed parts",
	Long: `partgen models T-slot aluminium extrusion profiles and the printed parts
used to assemble them, exporting binary STL files and PNG previews.

Profiles come from the built-in catalog and may be extended with a
configuration file declaring them under "profiles".`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger(os.Stderr, flagVerbose)
		v, err := loadConfig(flagConfig)
		if err != nil {
			return err
		}
		// Flags set on the command line take precedence over the config.
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return fmt.Errorf("bind flags: %w", err)
		}
		c, err := loadCatalog(v)
		if err != nil {
			return err
		}
		if file := v.ConfigFileUsed(); file != "" {
			logger.Infof("using config %s, %d profiles", file, len(c.Names()))
		}
		cfg, catalog = v, c
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "print progress")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(bracketCmd)
	rootCmd.AddCommand(pillarCmd)
	rootCmd.AddCommand(blockCmd)
	rootCmd.AddCommand(panelCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the partgen version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "partgen", version)
	},
}
