package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/wssapp/account-service/internal/account"
	accountrepo "github.com/wssapp/account-service/internal/account/repo"
	"github.com/wssapp/account-service/internal/avatar"
	"github.com/wssapp/account-service/internal/config"
	"github.com/wssapp/account-service/internal/router"
	"github.com/wssapp/account-service/pkg/database"
	"github.com/wssapp/account-service/pkg/utilities"
)

func main() {
	// load .env file if present so os.Getenv picks values from it
	// this is best-effort: if no .env exists, continue (use defaults or real env)
	_ = godotenv.Load()

	// init logger
	lg, err := utilities.InitLogger(utilities.LogConfigFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer lg.Sync()

	sugar := lg.Sugar()
	sugar.Info("starting account-service")

	cfg := config.FromEnv()

	// static configuration, loaded once and passed explicitly
	dict, err := config.LoadDictionary(filepath.Join(cfg.DataDir, "dict.yml"))
	if err != nil {
		sugar.Fatalf("load dictionary: %v", err)
	}
	vars, err := config.LoadVariables(filepath.Join(cfg.DataDir, "variables.yml"))
	if err != nil {
		sugar.Fatalf("load variables: %v", err)
	}

	// init db
	dbCfg := database.ConfigFromEnv()
	client, err := database.Connect(dbCfg)
	if err != nil {
		sugar.Fatalf("mongo connect: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			sugar.Warnf("mongo disconnect failed: %v", err)
		}
	}()

	repo := accountrepo.NewAccountRepo(client.Database(dbCfg.Database))
	idxCtx, idxCancel := context.WithTimeout(context.Background(), dbCfg.Timeout)
	if err := repo.EnsureIndexes(idxCtx); err != nil {
		idxCancel()
		sugar.Fatalf("ensure indexes: %v", err)
	}
	idxCancel()

	// wire the feature layers
	validator := account.NewUsernameValidator(vars.UsernameLenMin, vars.UsernameLenMax, dict.ReservedUsernames)
	svc := account.NewService(repo, nil, validator, sugar)
	accountHandler := account.NewHandler(svc, dict, cfg.ServerURL, sugar)

	store, err := avatar.NewStore(cfg.UploadDir, filepath.Join(cfg.DataDir, "images", "default-user.jpg"), sugar)
	if err != nil {
		sugar.Fatalf("avatar store: %v", err)
	}
	avatarHandler := avatar.NewHandler(store, sugar)

	// graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// mount http server
	handler := router.RegisterRoutes(sugar, accountHandler, avatarHandler)
	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.Port,
		Handler: handler,
	}

	// run server in background
	go func() {
		sugar.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalf("http server failed: %v", err)
		}
	}()

	<-ctx.Done()

	sugar.Info("shutting down")

	// give a short grace period for cleanup
	doneCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(doneCtx); err != nil {
		sugar.Warnf("http server shutdown failed: %v", err)
	}

	sugar.Info("goodbye")
}
