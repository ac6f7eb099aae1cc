package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sangpham2710/rekbot/internal/commands"
	"github.com/sangpham2710/rekbot/internal/config"
	"github.com/sangpham2710/rekbot/internal/domain"
)

func newExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "exec <command> [subcommand] [args...]",
		Short:   "Run one command without Telegram and print the reply",
		Example: "  rekbot exec dict get-word serendipity\n  rekbot exec cat says hello",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Read(configPath(cmd))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if err := cfg.ValidateServices(); err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			logger, closeLog, err := setupLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			inv, _, err := commands.Parse("/" + strings.Join(args, " "))
			if errors.Is(err, domain.ErrValidation) {
				return fmt.Errorf("%w\n%s", err, commands.Usage(inv.Command, inv.Subcommand))
			}
			if err != nil {
				return err
			}
			if commands.Resolve(inv.Command, inv.Subcommand) == commands.RouteNone {
				return fmt.Errorf("unknown command %q", strings.TrimSpace(inv.Command+" "+inv.Subcommand))
			}

			resp, err := newRouter(cfg, logger).Dispatch(cmd.Context(), inv)
			if err != nil {
				return err
			}
			if resp == nil {
				return nil
			}
			if resp.Envelope == nil {
				fmt.Fprintln(cmd.OutOrStdout(), resp.Text)
				return nil
			}

			out, err := yaml.Marshal(resp.Envelope)
			if err != nil {
				return fmt.Errorf("encoding envelope: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
