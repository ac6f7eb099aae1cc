package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/sangpham2710/rekbot/internal/catimg"
	"github.com/sangpham2710/rekbot/internal/commands"
	"github.com/sangpham2710/rekbot/internal/config"
	"github.com/sangpham2710/rekbot/internal/dictionary"
	"github.com/sangpham2710/rekbot/internal/embed"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func Execute() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "rekbot",
		Short:        "Dictionary and cat picture chat bot",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "Config file path (optional, environment variables override it).")

	serve := newServeCmd()
	cmd.RunE = serve.RunE

	cmd.AddCommand(serve)
	cmd.AddCommand(newRegisterCommandsCmd())
	cmd.AddCommand(newExecCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}

// newRouter wires both upstream clients into a command router. The clients
// share one HTTP client so http_timeout applies to every upstream call.
func newRouter(cfg *config.Config, logger *slog.Logger) *commands.Router {
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	dict := dictionary.NewClient(dictionary.Config{
		BaseURL:     cfg.Dictionary.BaseURL,
		Host:        cfg.Dictionary.Host,
		APIKey:      cfg.Dictionary.APIKey,
		SearchLimit: cfg.Dictionary.SearchLimit,
	}, httpClient, logger)

	images := catimg.NewClient(catimg.Config{
		BaseURL: cfg.Cat.BaseURL,
	}, httpClient, logger)

	return commands.NewRouter(dict, images, embed.NewBuilder(logger, nil), logger)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "rekbot "+version)
		},
	}
}
