package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-go-golems/loom/pkg/settings"
)

var rootCmd = &cobra.Command{
	Use:           "loom",
	Short:         "Weave and chat with JSON-backed chatbot personas",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("bots-file", "", "Path to the bots JSON file (defaults to $BOTS_FILE)")
	rootCmd.PersistentFlags().String("model", "", "Completion model to use")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newRemoveCommand())
	rootCmd.AddCommand(newChatCommand())
}

// loadSettings builds the one Settings value the rest of the program gets
// handed. Precedence: flags over config file over environment.
func loadSettings(cmd *cobra.Command) (*settings.Settings, error) {
	v := viper.New()
	if err := settings.BindEnv(v); err != nil {
		return nil, err
	}

	v.SetConfigName(".loom")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "could not read config file")
		}
	}

	for _, flag := range []string{"bots-file", "model", "log-level"} {
		if err := v.BindPFlag(flag, cmd.Flags().Lookup(flag)); err != nil {
			return nil, err
		}
	}

	s := settings.FromViper(v)

	level, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	return s, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
