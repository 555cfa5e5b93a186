package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitlog/internal/handlers"
	"fitlog/internal/logger"
	"fitlog/internal/lookup"
	"fitlog/internal/repository"
	"fitlog/internal/server"
	"fitlog/internal/service"
	"fitlog/internal/session"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const janitorTick = time.Minute

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	// load config.yml
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(viper.GetString("log.level"))

	// The session secret must come from the environment, never from the
	// config file or a source default.
	secret, err := sessionSecret()
	if err != nil {
		log.Fatalw("missing session secret", "err", err)
	}

	// open DB
	db, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	sessionTTL := viper.GetDuration("session.ttl")
	store := session.NewStore(sessionTTL)

	lookupClient := lookup.NewClient(lookup.Config{
		BaseURL:  viper.GetString("lookup.base_url"),
		Timeout:  viper.GetDuration("lookup.timeout"),
		PageSize: viper.GetInt("lookup.page_size"),
	}, log)

	repos := repository.NewRepository(db)
	services := service.NewService(repos, store, lookupClient, service.AuthConfig{
		SigningKey: secret,
		SessionTTL: sessionTTL,
	})
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// drop expired sessions in the background
	go store.Janitor(ctx, janitorTick)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// sessionSecret reads the cookie-signing key from the environment.
func sessionSecret() ([]byte, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, errors.New("SESSION_SECRET environment variable is required")
	}
	return []byte(secret), nil
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "fitlog.db")
		dbPath = "fitlog.db"
	}
	return repository.InitDB(dbPath, viper.GetInt("db.max_open_conns"))
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
