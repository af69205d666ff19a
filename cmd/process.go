package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"vision-speech/config"
	"vision-speech/internal/container"
)

var processCmd = &cobra.Command{
	Use:   "process <image>",
	Short: "Caption, translate and voice a single image",
	Args:  cobra.ExactArgs(1),
	RunE:  runProcess,
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	c, err := container.Build(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer cancel()

	result, err := c.Frontend.ProcessFile(ctx, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Caption:         %s\n", result.Caption)
	fmt.Fprintf(out, "Translated Text: %s\n", result.Translation)
	fmt.Fprintf(out, "Speech:          %s\n", result.AudioPath)
	return nil
}
