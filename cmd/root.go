package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/traPtitech/thumbparam/logging"
)

var (
	Version  = "UNKNOWN"
	Revision = "UNKNOWN"
)

var (
	// configFile 設定ファイルyamlのパス
	configFile string
	// c 設定
	c Config
)

// Execute コマンドを実行します
func Execute() error {
	return newRootCommand().Execute()
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "thumbparam",
		Short:         "Resolve thumbnail generation parameters",
		SilenceUsage:  true,
		// 全コマンド共通の前処理
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig()
		},
	}

	cmd.AddCommand(
		confCommand(),
		versionCommand(),
		paramCommand(),
		presetCommand(),
	)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "config file path")
	flags.StringVarP(&outputFormat, "output", "o", outputYAML, "output format (yaml, json)")

	flags.Bool("dev", false, "development mode")
	bindPFlag(flags, "dev")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	bindPFlagAs(flags, "logging.level", "log-level")

	return cmd
}

func loadConfig() error {
	if len(configFile) > 0 {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetEnvPrefix("THUMBPARAM")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	c = Config{}
	if err := viper.Unmarshal(&c, viper.DecodeHook(decodeHook())); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}

func getLogger() *zap.Logger {
	lc := c.Logging
	lc.Dev = lc.Dev || c.DevMode
	logger, err := logging.CreateNewLogger("thumbparam", fmt.Sprintf("%s.%s", Version, Revision), lc)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	return logger
}

func bindPFlag(flags *pflag.FlagSet, key string) {
	bindPFlagAs(flags, key, key)
}

func bindPFlagAs(flags *pflag.FlagSet, key, flag string) {
	if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
		panic(err)
	}
}
