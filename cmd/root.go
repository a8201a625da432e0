package cmd

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mjunit/mjunit/internal/logger"
	"github.com/mjunit/mjunit/pkg/reporter"
)

const defaultLogLevel = "info"

var cfgFile string

var rootCmd = &cobra.Command{
	Use: "mjunit",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	Short: "Convert test-run reports into JUnit XML",
	Long: `mjunit converts test-run reports produced by Mocha-style runners
into JUnit-compatible XML reports, suitable for consumption by CI dashboards.

Run mjunit --help for more information`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig, initLogLevel)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.config/.mjunit.yaml)")
	rootCmd.PersistentFlags().StringP("log-level", "l", defaultLogLevel,
		`Log level. Can be any standard log-level ("info", "debug", etc...)`)

	err := viper.BindPFlags(rootCmd.PersistentFlags())
	if err != nil {
		cobra.CheckErr(err)
	}
	bindPFlagsSnakeCase(rootCmd.PersistentFlags())

	rootCmd.AddCommand(versionCommand())
}

func initConfig() {
	viper.SetConfigType("yaml")

	if cfgFile != "" {
		// Use config file from the flag.
		setConfigFile(cfgFile)
	} else if val := os.Getenv("MJUNIT_CONFIG"); val != "" {
		// Use config file from the env variable.
		setConfigFile(val)
	} else {
		workingDir, err := os.Getwd()
		cobra.CheckErr(err)

		// Add $HOME/.config and current directory as paths for Viper to search for the config file in.
		homeDir, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(path.Join(homeDir, ".config"))
		viper.AddConfigPath(workingDir)

		// Search config file with name ".mjunit.yaml" or ".mjunit.yml".
		viper.SetConfigName(".mjunit")
	}

	// Defaults for config values that have no flag bound to them.
	viper.SetDefault("output_path", reporter.DefaultOutputPath)
	viper.SetDefault("suite_title_separator", reporter.DefaultSuiteTitleSeparator)
	viper.SetDefault("root_suite_title", reporter.DefaultRootSuiteTitle)
	viper.SetDefault("testsuites_title", reporter.DefaultTestsuitesTitle)
	viper.SetDefault("hash_style", reporter.HashStyleHex)

	// Env vars starting with the MJUNIT_ prefix can override any configuration.
	// e.g. MJUNIT_LOG_LEVEL, MJUNIT_OUTPUT_PATH, etc...
	viper.SetEnvPrefix("mjunit")
	// Allows to override any sub-level in file config.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Read in environment variables that match.
	viper.AutomaticEnv()

	// Legacy env vars honored by Mocha-style reporters.
	cobra.CheckErr(viper.BindEnv("output_path", "MJUNIT_OUTPUT_PATH", "MOCHA_FILE"))
	cobra.CheckErr(viper.BindEnv("properties", "MJUNIT_PROPERTIES", "PROPERTIES"))

	// If a config file is found, read it in.
	err := viper.ReadInConfig()
	if err == nil {
		logger.Infof("Using config file: %s", viper.ConfigFileUsed())
	}
}

func initLogLevel() {
	logger.SetLevel(viper.GetString("log_level"))
}

func setConfigFile(name string) {
	_, err := os.Stat(name)
	if err != nil {
		cobra.CheckErr(fmt.Errorf("config file %q not found", name))
	}

	viper.SetConfigFile(name)
}

// hydrateOptsFromViper copies all the viper values into our config struct.
// The mapping between viper identifiers and struct field names
// is ensured by `mapstructure` struct tags.
func hydrateOptsFromViper(opts any) {
	_ = viper.Unmarshal(opts)
}

// bindPFlagsSnakeCase binds the flags with viper values. The identifier of the viper value
// is the name of the flag with dashes replaced by underscores. This is required so we can
// retrieve values from viper with the same behaviour with config coming from files
// (my_config: "value") or from flags (--my-config=value).
func bindPFlagsSnakeCase(flags *pflag.FlagSet) {
	flags.VisitAll(func(flag *pflag.Flag) {
		_ = viper.BindPFlag(strings.ReplaceAll(flag.Name, "-", "_"), flag)
	})
}
