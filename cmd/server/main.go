package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/aasia/cladtrack/internal/config"
	"github.com/aasia/cladtrack/internal/domain/activity"
	"github.com/aasia/cladtrack/internal/domain/assembly"
	"github.com/aasia/cladtrack/internal/domain/masterdata"
	"github.com/aasia/cladtrack/internal/domain/mto"
	"github.com/aasia/cladtrack/internal/domain/nmr"
	"github.com/aasia/cladtrack/internal/domain/order"
	"github.com/aasia/cladtrack/internal/domain/project"
	"github.com/aasia/cladtrack/internal/domain/quality"
	"github.com/aasia/cladtrack/internal/domain/spool"
	"github.com/aasia/cladtrack/internal/ident"
	"github.com/aasia/cladtrack/internal/mcp"
	"github.com/aasia/cladtrack/internal/sqlite"
	"github.com/aasia/cladtrack/migrations"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if cfg.Server.Mode == "stdio" {
		logWriter = os.Stderr
	}
	if cfg.Log.Path != "" {
		fileWriter, file, err := newLogFileWriter(cfg.Log.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			defer file.Close()
			logWriter = fileWriter
		}
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := runEmbeddedMigrations(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	projectRepo := sqlite.NewProjectRepository(db)
	orderRepo := sqlite.NewOrderRepository(db)
	spoolRepo := sqlite.NewSpoolRepository(db)
	assemblyRepo := sqlite.NewAssemblyRepository(db)
	nmrRepo := sqlite.NewNMRRepository(db)
	jisRepo := sqlite.NewJISRepository(db)
	mtoRepo := sqlite.NewMTORepository(db)
	masterRepo := sqlite.NewMasterDataRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)
	counterRepo := sqlite.NewCounterRepository(db)
	snapshots := sqlite.NewSnapshotStore(db)

	tokens := ident.UUIDTokenSource{}

	projectSvc := project.NewService(projectRepo, counterRepo, orderRepo, spoolRepo, mtoRepo, logger)
	orderSvc := order.NewService(orderRepo, projectRepo, counterRepo, spoolRepo, mtoRepo, tokens, activityRepo, logger)
	spoolSvc := spool.NewService(spoolRepo, tokens, activityRepo, logger)
	assemblySvc := assembly.NewService(assemblyRepo, spoolRepo, tokens, logger)
	nmrSvc := nmr.NewService(nmrRepo, mtoRepo, tokens, activityRepo, logger)
	qualitySvc := quality.NewService(jisRepo, spoolRepo, tokens, activityRepo, logger)
	mtoSvc := mto.NewService(mtoRepo, tokens, logger)
	masterSvc := masterdata.NewService(masterRepo, tokens, logger)
	activitySvc := activity.NewService(activityRepo, logger)

	if cfg.Snapshot.Path != "" {
		if err := loadBootSnapshot(context.Background(), logger, snapshots, cfg.Snapshot.Path); err != nil {
			logger.Error("failed to load boot snapshot", "path", cfg.Snapshot.Path, "error", err)
			os.Exit(1)
		}
	}

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Projects:   projectSvc,
			Orders:     orderSvc,
			Spools:     spoolSvc,
			Assemblies: assemblySvc,
			NMRs:       nmrSvc,
			Quality:    qualitySvc,
			MTOs:       mtoSvc,
			MasterData: masterSvc,
			Activity:   activitySvc,
			Snapshots:  snapshots,
		},
		Logger: logger,
	})

	if cfg.Server.Mode == "stdio" {
		runStdioMode(logger, mcpServer)
	} else {
		runHTTPMode(logger, mcpServer, cfg.Server.Host, cfg.Server.Port)
	}
}

// loadBootSnapshot seeds an empty database from a snapshot file. Non-empty
// databases are left alone so restarts never clobber live data.
func loadBootSnapshot(ctx context.Context, logger *slog.Logger, store *sqlite.SnapshotStore, path string) error {
	empty, err := store.Empty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		logger.Info("database not empty, skipping boot snapshot", "path", path)
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("boot snapshot not found, starting empty", "path", path)
			return nil
		}
		return err
	}

	var snap sqlite.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("parse snapshot: %w", err)
	}
	if err := store.Import(ctx, &snap); err != nil {
		return err
	}
	logger.Info("loaded boot snapshot", "path", path, "projects", len(snap.Projects), "spools", len(snap.Spools))
	return nil
}

func runStdioMode(logger *slog.Logger, mcpServer *sdkmcp.Server) {
	logger.Info("starting stdio transport")

	transport := &sdkmcp.StdioTransport{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	// Run blocks until stdin closes or context is canceled
	if err := mcpServer.Run(ctx, transport); err != nil {
		logger.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}

func runHTTPMode(logger *slog.Logger, mcpServer *sdkmcp.Server, host string, port int) {
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(r *http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{
			Stateless:      false,
			SessionTimeout: 30 * time.Minute,
		},
	)

	router := http.NewServeMux()
	router.Handle("/mcp", mcpHandler)
	router.Handle("/mcp/", mcpHandler)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	addr := fmt.Sprintf("%s:%d", host, port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func runEmbeddedMigrations(db *sqlite.DB) error {
	data, err := migrations.FS.ReadFile("001_initial_schema.up.sql")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}
	if _, err := db.Exec(string(data)); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

const (
	maxLogSizeBytes  = 6 * 1024 * 1024
	keepLogSizeBytes = 5 * 1024 * 1024
)

type logFileWriter struct {
	path string
	file *os.File
	mu   sync.Mutex
}

func newLogFileWriter(path string) (*logFileWriter, *os.File, error) {
	if err := ensureLogDir(path); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	writer := &logFileWriter{path: path, file: file}
	if err := writer.truncateIfNeeded(); err != nil {
		return nil, nil, err
	}
	return writer, file, nil
}

func ensureLogDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func (w *logFileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n, err := w.file.Write(p)
	if err != nil {
		return n, err
	}
	if err := w.truncateIfNeeded(); err != nil {
		return n, err
	}
	return n, nil
}

func (w *logFileWriter) truncateIfNeeded() error {
	info, err := w.file.Stat()
	if err != nil {
		return err
	}
	size := info.Size()
	if size <= maxLogSizeBytes {
		return nil
	}
	if size <= keepLogSizeBytes {
		return nil
	}

	buf := make([]byte, keepLogSizeBytes)
	if _, err := w.file.Seek(size-keepLogSizeBytes, io.SeekStart); err != nil {
		return err
	}
	n, err := w.file.Read(buf)
	if err != nil && err != io.EOF {
		return err
	}
	buf = buf[:n]

	if err := w.file.Truncate(0); err != nil {
		return err
	}
	if _, err := w.file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if _, err := w.file.Write(buf); err != nil {
		return err
	}
	_, err = w.file.Seek(0, io.SeekEnd)
	return err
}
