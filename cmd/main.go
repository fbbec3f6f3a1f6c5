package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"tip-tracker/config"
	"tip-tracker/internal/app/service"
	"tip-tracker/internal/repository/sqlite"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := run(context.Background(), cfg.DatabasePath, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, path string, out io.Writer) error {
	db, err := sqlite.Open(path)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	if err := sqlite.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	initializer := service.NewInitializer(sqlite.NewSqliteTipRepo(db))
	n, err := initializer.Populate(ctx)
	if err != nil {
		return fmt.Errorf("populate: %w", err)
	}
	log.Printf("inserted %d shifts", n)

	if err := db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}

	fmt.Fprintf(out, "Database '%s' has been created and populated successfully.\n", path)
	return nil
}
