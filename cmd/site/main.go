package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpAdapter "github.com/khoahotran/portfolio/adapters/http"
	"github.com/khoahotran/portfolio/adapters/web"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/internal/site/client"
	"github.com/khoahotran/portfolio/internal/site/shell"
	"github.com/khoahotran/portfolio/pkg/logger"
	"github.com/khoahotran/portfolio/pkg/tracing"
)

func main() {
	fmt.Println("Start Portfolio Site...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(cfg, appLogger, "portfolio-site")
	if err != nil {
		appLogger.Fatal("Cannot initialize tracing", err)
	}
	defer shutdownTracing(context.Background())

	api := client.New(cfg.Site.BackendURL, appLogger)
	siteShell := shell.New(api, cfg.Site.SplashDelay, appLogger)
	handler := web.NewSiteHandler(siteShell, api, appLogger)
	router := web.NewRouter(handler, httpAdapter.NewMetrics("portfolio-site"), appLogger)

	srv := &http.Server{
		Addr:              ":" + cfg.Site.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Site running",
			zap.String("port", cfg.Site.Port),
			zap.String("backend_url", api.BaseURL()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run site", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down site...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Site forced to shutdown", err)
	}
}
