package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopcore/shopcore/config"
	"github.com/shopcore/shopcore/internal/app"
	"github.com/shopcore/shopcore/internal/restapi"
	"github.com/shopcore/shopcore/internal/webserver"
	"go.uber.org/zap"
)

var (
	configFile = flag.String("c", "shopcore.yml", "config file path")
	initDb     = flag.Bool("initdb", false, "drop and recreate all tables, then exit")
	showVer    = flag.Bool("v", false, "print version and exit")
)

var version = "dev"

func main() {
	flag.Parse()

	if *showVer {
		fmt.Println("shopcored", version)
		return
	}

	_ = godotenv.Load()

	cfg := config.LoadConfig(*configFile)

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initDb {
		application.InitDb()
		zap.L().Info("database initialized")
		return
	}

	webserver.Init(application.DB(), cfg)
	restapi.RegisterRoutes(cfg)

	errCh := make(chan error, 1)
	go func() {
		errCh <- webserver.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		zap.L().Error("web server stopped", zap.Error(err))
	case sig := <-sigCh:
		zap.L().Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := webserver.Shutdown(ctx); err != nil {
			zap.L().Error("shutdown error", zap.Error(err))
		}
	}
}
