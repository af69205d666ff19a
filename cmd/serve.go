package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"vision-speech/config"
	"vision-speech/internal/api/telegram"
	"vision-speech/internal/api/web"
	"vision-speech/internal/container"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web UI and the optional Telegram bot",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides HTTP_ADDR)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.HTTPAddr = addr
	}

	logger := newLogger(cfg)

	c, err := container.Build(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go c.Janitor.Run(ctx)

	if cfg.TelegramToken != "" {
		bot, err := telegram.NewBot(cfg.TelegramToken, c.Frontend, cfg.RequestTimeout, logger)
		if err != nil {
			return err
		}
		go func() {
			if err := bot.Run(ctx); err != nil {
				logger.Error("telegram bot stopped", "err", err)
				stop()
			}
		}()
	} else {
		logger.Info("TELEGRAM_TOKEN is not set, bot disabled")
	}

	server := web.NewServer(c.Frontend, c.AudioStore, cfg.MaxUploadBytes, cfg.RequestTimeout, logger)
	if err := server.Run(ctx, cfg.HTTPAddr); err != nil {
		return err
	}

	logger.Info("shutting down")
	return nil
}
