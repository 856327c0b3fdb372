package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// shutdownTimeout is how long in-flight requests get to finish.
const shutdownTimeout = 5 * time.Second

// GracefulShutdown waits for ctx to end, then shuts down every server and
// signals done.
func GracefulShutdown(ctx context.Context, logger *zap.Logger, done chan<- struct{}, servers ...*http.Server) {
	<-ctx.Done()
	logger.Info("Shutting down gracefully, press Ctrl+C again to force")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, srv := range servers {
		if srv == nil {
			continue
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server forced to shutdown", zap.String("addr", srv.Addr), zap.Error(err))
		}
	}

	logger.Info("Server exiting")
	close(done)
}
