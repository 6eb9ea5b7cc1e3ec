package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/anmicius0/taskprogress/internal/client"
	"github.com/anmicius0/taskprogress/internal/config"
	"github.com/anmicius0/taskprogress/internal/report"
	"github.com/anmicius0/taskprogress/internal/server"
	"github.com/anmicius0/taskprogress/internal/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "taskprogress",
		Short:         "Team task progress reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.DefaultConfigPath, "path to the YAML settings file")

	cmd.AddCommand(newServeCmd(opts), newProgressCmd(opts))
	return cmd
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the progress report API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			appConfig, err := config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if err := utils.Init(appConfig.Logging.File); err != nil {
				return fmt.Errorf("initialize logging: %w", err)
			}
			utils.Logger.Info("Configuration loaded successfully")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if dir := filepath.Dir(appConfig.Database.Path); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create database directory: %w", err)
				}
			}
			store, err := report.Open(ctx, appConfig.Database.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			return startServer(ctx, server.NewRouter(appConfig, store), appConfig)
		},
	}
}

// startServer binds the HTTP server and shuts it down when ctx is cancelled.
func startServer(ctx context.Context, router http.Handler, appConfig *config.Config) error {
	httpServer := &http.Server{
		Addr:         appConfig.Server.Addr(),
		Handler:      router,
		ReadTimeout:  config.DefaultReadTimeout,
		WriteTimeout: config.DefaultWriteTimeout,
		IdleTimeout:  config.DefaultIdleTimeout,
	}

	go func() {
		<-ctx.Done()
		utils.Logger.Info("Shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.DefaultShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			utils.Logger.Error("Server shutdown error", zap.Error(err))
		}
	}()

	utils.Logger.Info("Server starting",
		zap.String(utils.FieldHost, appConfig.Server.Host),
		zap.String(utils.FieldPort, strconv.Itoa(appConfig.Server.Port)))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}

	utils.Logger.Info("Server stopped")
	return nil
}

func newProgressCmd(opts *rootOptions) *cobra.Command {
	var teamID, userID int64
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Print progress reports from a running server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			appConfig, err := config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			auth, err := appConfig.Auth.Get()
			if err != nil {
				return err
			}
			reportSettings, err := appConfig.Reports.Get()
			if err != nil {
				return err
			}

			var filter report.ProgressFilter
			if cmd.Flags().Changed("team") {
				filter.TeamID = &teamID
			}
			if cmd.Flags().Changed("user") {
				filter.UserID = &userID
			}

			c := client.NewReportClient(reportSettings.ServerURL, auth.APIToken, timeout)
			defer c.Close()

			page, err := c.Progress(filter)
			if err != nil {
				return err
			}
			return printProgress(cmd.OutOrStdout(), page)
		},
	}
	cmd.Flags().Int64Var(&teamID, "team", 0, "only this team")
	cmd.Flags().Int64Var(&userID, "user", 0, "only this user")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")
	return cmd
}

func printProgress(w io.Writer, page *client.ProgressPage) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TEAM\tUSER\tTOTAL\tTODO\tIN PROGRESS\tDONE")
	for _, r := range page.Reports {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\n", r.TeamID, r.UserID, r.TotalTasks, r.TodoCount, r.InProgressCount, r.DoneCount)
	}
	if page.Truncated {
		fmt.Fprintf(tw, "(showing first %d rows)\n", page.Count)
	}
	return tw.Flush()
}
