// Package cmd implements the discourses CLI on top of the SDK.
package cmd

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/discourses/discourses-go/internal/config"
	"github.com/discourses/discourses-go/internal/observability"
)

var (
	cfgFile      string
	verbose      bool
	outputFormat string

	// Version info set by the main package.
	versionInfo struct {
		Version   string
		Commit    string
		BuildDate string
	}
)

// SetVersionInfo is called by the main package to set build information.
func SetVersionInfo(version, commit, buildDate string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.BuildDate = buildDate
}

var rootCmd = &cobra.Command{
	Use:   "discourses",
	Short: "CLI for the Discourses sentiment-analysis API",
	Long: `discourses - era-calibrated financial sentiment analysis.

All analysis happens server-side; this tool wraps the Go SDK. An API key is
required for the analysis commands (--api-key or DISCOURSES_API_KEY).

Use 'discourses serve' to run a local mock of the API for offline work.`,
}

// Execute runs the root command. Called once by main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.discourses.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (sets log level to debug)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output-format", "table", "output format: table, json, markdown")
	rootCmd.PersistentFlags().String("api-key", "", "Discourses API key")
	rootCmd.PersistentFlags().String("base-url", "", "API base URL override")
	rootCmd.PersistentFlags().Duration("timeout", 0, "request timeout (e.g. 10s)")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("api_key", rootCmd.PersistentFlags().Lookup("api-key"))
	_ = viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
}

// initConfig layers .env, the config file, and DISCOURSES_* environment
// variables under the flag bindings.
func initConfig() {
	// Best-effort; a missing .env is the normal case.
	_ = godotenv.Load()

	observability.InitCLILogger("discourses", verbose)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath("./config")
		viper.SetConfigName(".discourses")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("DISCOURSES")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			observability.CLILogger.Debug("Using config file", zap.String("path", viper.ConfigFileUsed()))
		}
	} else if verbose {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			observability.CLILogger.Debug("No config file found, using defaults and environment variables")
		} else {
			observability.CLILogger.Warn("Error reading config file", zap.Error(err))
		}
	}

	config.SetDefaults()
}
