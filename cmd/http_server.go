package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/employee-management/internal"
	"github.com/frahmantamala/employee-management/internal/auth"
	"github.com/frahmantamala/employee-management/internal/department"
	departmentpg "github.com/frahmantamala/employee-management/internal/department/postgres"
	"github.com/frahmantamala/employee-management/internal/employee"
	employeepg "github.com/frahmantamala/employee-management/internal/employee/postgres"
	"github.com/frahmantamala/employee-management/internal/file"
	filepg "github.com/frahmantamala/employee-management/internal/file/postgres"
	"github.com/frahmantamala/employee-management/internal/storage"
	"github.com/frahmantamala/employee-management/internal/transport/rest"
	"github.com/frahmantamala/employee-management/internal/user"
	userpg "github.com/frahmantamala/employee-management/internal/user/postgres"
	"github.com/frahmantamala/employee-management/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))
	log := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	objectStore, err := storage.NewS3Storage(context.Background(), config.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}

	userRepo := userpg.NewUserRepository(db)
	departmentRepo := departmentpg.NewDepartmentRepository(db)
	employeeRepo := employeepg.NewEmployeeRepository(db)
	fileRepo := filepg.NewFileRepository(db)

	tokenGen := auth.NewJWTTokenGenerator(config.Security.JWTSecret, config.Security.TokenDuration)

	authHandler := auth.NewHandler(auth.NewService(userRepo, tokenGen, config.Security.BCryptCost))
	userHandler := user.NewHandler(user.NewService(userRepo))
	departmentHandler := department.NewHandler(department.NewService(departmentRepo))
	employeeHandler := employee.NewHandler(employee.NewService(employeeRepo))
	fileHandler := file.NewHandler(file.NewService(fileRepo, objectStore))

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, db, authHandler, userHandler, departmentHandler, employeeHandler, fileHandler, log)

	return &Dependencies{
		Config: config,
		Logger: log,
		DB:     db,
		Router: router,
	}, nil
}

func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
