package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"vision-speech/config"
)

var rootCmd = &cobra.Command{
	Use:   "vision-speech",
	Short: "Image caption, Arabic translation and speech",
	Long: `vision-speech describes an image in English, translates the caption
to Arabic and synthesizes the translation to an MP3 file.

Run "serve" for the web UI (and Telegram bot when TELEGRAM_TOKEN is set)
or "process" for a single image from the command line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(serveCmd, processCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newLogger создаёт логгер с уровнем из конфигурации
func newLogger(cfg *config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", cfg.LogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
