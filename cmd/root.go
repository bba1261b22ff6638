/*
	Copyright 2026 Markus Papenbrock
*/

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mpapenbr/f1-telemetry-producer/pkg/cmd/dump"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/cmd/importcmd"
	migrateCmd "github.com/mpapenbr/f1-telemetry-producer/pkg/cmd/migrate"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/cmd/mockingest"
	streamCmd "github.com/mpapenbr/f1-telemetry-producer/pkg/cmd/stream"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/cmd/util"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/config"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/model"
	"github.com/mpapenbr/f1-telemetry-producer/version"
)

const envPrefix = "F1T"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "f1t",
	Short:   "Streams recorded F1 telemetry to an ingestion service",
	Long:    ``,
	Version: version.FullVersion,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_, err := util.SetupLogger()
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.f1t.yml)")

	rootCmd.PersistentFlags().StringVar(&config.Selector, "selector",
		model.DefaultSelector.String(),
		"dataset to use: season/event/session/driver")
	rootCmd.PersistentFlags().StringVar(&config.Source, "source",
		util.SourceCSV,
		"data source (csv, json, postgres)")
	rootCmd.PersistentFlags().StringVarP(&config.File, "file", "f",
		"",
		"telemetry export for sources csv and json")
	rootCmd.PersistentFlags().StringVar(&config.DB, "db",
		"postgresql://DB_USERNAME:DB_USER_PASSWORD@DB_HOST:5432/f1telemetry",
		"Connection string for the database")
	rootCmd.PersistentFlags().StringVar(&config.CacheTTL, "cache-ttl",
		"0",
		"keep loaded datasets in memory for this duration (0: disabled)")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel,
		"log-level",
		"info",
		"controls the log level (debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVar(&config.SQLLogLevel,
		"sql-log-level",
		"debug",
		"controls the log level for sql methods")
	rootCmd.PersistentFlags().StringVar(&config.LogFormat,
		"log-format",
		"text",
		"controls the log output format (json, text)")
	rootCmd.PersistentFlags().StringVar(&config.LogFilter,
		"log-filter",
		"",
		"zapfilter rules, e.g. '*:session* debug+:*'")

	// add commands here
	rootCmd.AddCommand(streamCmd.NewStreamCmd())
	rootCmd.AddCommand(dump.NewDumpCmd())
	rootCmd.AddCommand(mockingest.NewMockIngestCmd())
	rootCmd.AddCommand(migrateCmd.NewMigrateCmd())
	rootCmd.AddCommand(importcmd.NewImportCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".f1t" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".f1t")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
	}
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their
		// equivalent keys with underscores, e.g. --log-level to F1T_LOG_LEVEL
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		// Apply the viper config value to the flag when the flag is not set and viper
		// has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could set flag value for %s: %v", f.Name, err)
			}
		}
	})
}
