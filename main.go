package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/pgmaint/pgmaint/catalog"
	"github.com/pgmaint/pgmaint/cliparse"
	"github.com/pgmaint/pgmaint/gql"
	"github.com/pgmaint/pgmaint/ident"
	"github.com/pgmaint/pgmaint/maintenance"
	"github.com/pgmaint/pgmaint/router"
	"github.com/pgmaint/pgmaint/service"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	dbConn, err := sql.Open(driverName(cfg.DatabaseType), cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Wire the catalog, validator, analyzer and service roots around the
	// shared pool
	cat := newCatalog(cfg.DatabaseType, dbConn)
	validator := &ident.Validator{Catalog: cat}
	analyzer := &maintenance.Analyzer{DB: dbConn}

	resolver := gql.NewResolver(
		service.NewQuery(cat),
		service.NewMutation(validator, analyzer),
	)
	schema, err := gql.NewSchema(resolver)
	if err != nil {
		slog.Error("schema build failed", "error", err)
		os.Exit(1)
	}

	// Emit the schema artifact
	if err := gql.WriteSDL(cfg.SchemaFile); err != nil {
		slog.Error("schema artifact write failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Schema artifact written", "path", cfg.SchemaFile)

	// Create router
	mux := router.NewRouter(schema)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    cfg.ListenAddr,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "addr", cfg.ListenAddr)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server closed")
}

// catalogBackend is what main needs from a catalog: existence checks for
// the validator and listings for the query root.
type catalogBackend interface {
	catalog.Inspector
	catalog.Lister
}

func newCatalog(dbType string, db *sql.DB) catalogBackend {
	if dbType == "sqlite" {
		return catalog.NewSQLite(db)
	}
	return catalog.NewPostgres(db)
}

func driverName(dbType string) string {
	if dbType == "sqlite" {
		return "sqlite"
	}
	return "postgres"
}
