package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sangpham2710/rekbot/internal/commands"
	"github.com/sangpham2710/rekbot/internal/config"
	"github.com/sangpham2710/rekbot/internal/handlers"
	"github.com/sangpham2710/rekbot/internal/telegram"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the bot against Telegram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath(cmd))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			logger, closeLog, err := setupLogger(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer closeLog()

			logger.Info("config loaded",
				"allowlist_count", len(cfg.Allowlist),
				"debug", cfg.Debug,
				"http_timeout", cfg.HTTPTimeout,
			)

			bot, err := telegram.New(cfg.Telegram.Token, cfg.IsAllowed, logger)
			if err != nil {
				return fmt.Errorf("creating telegram bot: %w", err)
			}

			h := &handlers.CommandHandler{
				Router: newRouter(cfg, logger),
				Sender: bot,
				Logger: logger,
			}
			bot.SetHandler(h.Handle)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger.Info("rekbot started, connecting to telegram")
			if err := bot.Start(ctx); err != nil && ctx.Err() != context.Canceled {
				return fmt.Errorf("telegram bot: %w", err)
			}
			logger.Info("rekbot stopped")
			return nil
		},
	}
}

func newRegisterCommandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register-commands",
		Short: "Publish the command menu to Telegram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath(cmd))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			logger, closeLog, err := setupLogger(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer closeLog()

			bot, err := telegram.New(cfg.Telegram.Token, nil, logger)
			if err != nil {
				return fmt.Errorf("creating telegram bot: %w", err)
			}
			return bot.RegisterCommands(commandMenu())
		},
	}
}

// commandMenu lists every schema command for the Telegram menu.
func commandMenu() []telegram.CommandInfo {
	menu := make([]telegram.CommandInfo, len(commands.Schema))
	for i, spec := range commands.Schema {
		menu[i] = telegram.CommandInfo{
			Name:        spec.Name,
			Description: spec.Description,
		}
	}
	return menu
}

