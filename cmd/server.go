/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/blnkfinance/gicbank/api"
	"github.com/blnkfinance/gicbank/config"
)

const shutdownTimeout = 5 * time.Second

func initializeRouter(b *bankInstance) (*gin.Engine, error) {
	a := api.NewAPI(b.bank)
	if a == nil {
		return nil, errors.New("config not loaded, cannot build router")
	}
	return a.Router(), nil
}

// startServer serves router until ctx is cancelled, then drains in-flight
// requests.
func startServer(ctx context.Context, router *gin.Engine, cfg config.ServerConfig) error {
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Starting server on http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "server stopped")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logrus.Info("shutting down server")
	return server.Shutdown(shutdownCtx)
}

// serverCommands returns the command that serves the bank over HTTP.
func serverCommands(b *bankInstance) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "start the gicbank HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			router, err := initializeRouter(b)
			if err != nil {
				return err
			}

			return startServer(ctx, router, b.cnf.Server)
		},
	}

	return cmd
}
