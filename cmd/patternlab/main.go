package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"pattern_lab/internal/app"
	"pattern_lab/internal/web"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "patternlab",
		Short: "Design-pattern playground over a simulated FinTech domain",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config file")

	root.AddCommand(serveCmd(), demoCmd(), listCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap, err := app.Initialize(configPath)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := web.NewServer(bootstrap.Registry, bootstrap.Payments, bootstrap.Bus)
			grace := time.Duration(bootstrap.Config.Server.ShutdownGraceMS) * time.Millisecond

			if err := server.Run(ctx, bootstrap.Config.Server.Addr, grace); err != nil {
				slog.Error("server stopped", slog.Any("error", err))
				return err
			}
			slog.Info("goodbye")
			return nil
		},
	}
}

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo <pattern>",
		Short: "Run one pattern scenario and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap, err := app.Initialize(configPath)
			if err != nil {
				return err
			}

			scenario, ok := bootstrap.Registry.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown pattern %q, available: %v",
					args[0], bootstrap.Registry.Names())
			}

			result := scenario.Demo(cmd.Context())
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			bootstrap, err := app.Initialize(configPath)
			if err != nil {
				return err
			}
			for _, name := range bootstrap.Registry.Names() {
				fmt.Println(name)
			}
			return nil
		},
	}
}
