// Package cmd implements the mbdisasm command-line tool: a root command
// plus list/disasm/docs/browse subcommands, following the same
// cobra+viper layout as the teacher's cmd/root.go.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/schaban/mbdisasm/internal/applog"
)

var cfgFile string
var logJSON bool
var logFile string

// RootCmd is the base command when mbdisasm is called without subcommands.
var RootCmd = &cobra.Command{
	Use:   "mbdisasm",
	Short: "A MicroBlaze ELF32 disassembler",
	Long: `mbdisasm loads a MicroBlaze ELF32 object, lists its global
functions, and disassembles them back into MicroBlaze assembly text.`,
}

// Logger is the program's root logger, built once flags have been parsed.
var Logger *slog.Logger

// Execute runs RootCmd; each subcommand adds itself to RootCmd in its own
// init function. Called once by main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mbdisasm.yaml)")
	RootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "also emit structured JSON logs")
	RootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write JSON logs to this file instead of stderr")

	cobra.OnInitialize(initConfig, initLogger)
}

// initConfig reads in config file and ENV variables if set, matching the
// teacher's cmd/root.go:initConfig.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".mbdisasm")
	}

	viper.SetEnvPrefix("MBDISASM")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// initLogger wires up applog per the --log-json/--log-file flags.
func initLogger() {
	opts := applog.Options{JSON: logJSON, Level: slog.LevelInfo}

	if logJSON && logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "could not open log file:", err)
			os.Exit(1)
		}
		opts.JSONWriter = f
	}

	Logger = applog.New(opts)
}
