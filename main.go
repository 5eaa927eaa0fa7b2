package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/diegopacheco/jello/cliparse"
	"github.com/diegopacheco/jello/codec"
	"github.com/diegopacheco/jello/handlers"
	"github.com/diegopacheco/jello/middleware"
	"github.com/diegopacheco/jello/router"
	"github.com/diegopacheco/jello/store"
)

func main() {
	// .env is optional; deployments use real environment variables
	_ = godotenv.Load()

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	st, err := openStore(cfg)
	if err != nil {
		slog.Error("store initialization failed", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	model, err := codec.Load(context.Background(), st)
	if err != nil {
		slog.Error("board load failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Board ready", "columns", len(model.Columns()))

	state := handlers.NewState(model, st)
	mux := router.NewRouter(state)

	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		server.Close()
	}()

	slog.Info("Listening", "port", cfg.Port, "store", cfg.StoreType)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

func openStore(cfg cliparse.Config) (store.Store, error) {
	switch cfg.StoreType {
	case cliparse.StoreSQLite:
		return store.OpenSQL("sqlite", cfg.DatabaseURL)
	case cliparse.StorePostgres:
		return store.OpenSQL("postgres", cfg.DatabaseURL)
	case cliparse.StoreS3:
		s3cfg, err := store.LoadS3Config(cfg.S3ConfigPath)
		if err != nil {
			return nil, err
		}
		return store.NewS3Store(s3cfg)
	default:
		return nil, fmt.Errorf("unknown store type %q", cfg.StoreType)
	}
}
