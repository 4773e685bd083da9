package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	drgin "github.com/fwojciec/docreview/gin"
	"github.com/gin-gonic/gin"
)

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 10 * time.Second

// Run serves HTTP until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	gin.SetMode(c.GinMode)

	opts := []drgin.Option{drgin.WithLogger(deps.Logger), drgin.WithReviser(deps.Reviser)}
	if c.RateLimit > 0 {
		opts = append(opts, drgin.WithRateLimit(drgin.NewClientLimiter(c.RateLimit, 5)))
	}
	server := drgin.NewServer(deps.Service, opts...)

	srv := &http.Server{
		Addr:              ":" + c.Port,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	fmt.Fprintf(deps.Stderr, "Server starting on http://localhost:%s\n", c.Port)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-deps.Ctx.Done():
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
