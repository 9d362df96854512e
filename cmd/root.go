// Package cmd provides the command-line interface for woordwacht with
// configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration through multiple sources with clear precedence:
//	1. Command-line flags (--count, --min-words, etc.) - highest priority
//	2. WOORDWACHT_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (WOORDWACHT_GENERATOR_COUNT, etc.)
//	4. Configuration files (.woordwacht.yml) - lowest priority
//
// Passwords go to stdout, one per line; every diagnostic goes to stderr.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mbos/woordwacht/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "woordwacht",
	Short: "Generate memorable secure passwords from Dutch words",
	Long: `Woordwacht generates secure passwords composed of hyphen-joined Dutch
words from the OpenTaal wordlist, with an injected digit and special
character. The wordlist is cached locally; a corrupted cache is detected
and rebuilt automatically.

Quick Start:
  woordwacht generate             Generate one password
  woordwacht generate -n 5        Generate five passwords
  woordwacht cache status         Inspect the local word cache
  woordwacht config               Show the effective configuration`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .woordwacht.yml, can also use WOORDWACHT_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose diagnostics on stderr")
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig initializes the configuration system.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. WOORDWACHT_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .woordwacht.yml in current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("WOORDWACHT_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".woordwacht")
	}

	viper.SetEnvPrefix("WOORDWACHT")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing or malformed config file degrades to defaults.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the diagnostic logger for a command run. Output is
// always stderr so stdout stays machine-parseable.
func newLogger() logging.Logger {
	level := logging.ParseLevel(viper.GetString("log-level"))
	if viper.GetBool("verbose") {
		level = logging.LevelDebug
	}
	return logging.NewLogger(&logging.LoggerConfig{
		Level:  level,
		Format: "text",
		Output: os.Stderr,
	})
}
