package main

import (
	"context"
	"log"

	"github.com/ghuser/blogs/migrations"
	"github.com/ghuser/blogs/pkg/config"
	"github.com/ghuser/blogs/pkg/migrator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := migrator.RunMigrations(context.Background(), cfg.DatabaseURL, migrations.FS); err != nil {
		log.Fatalf("migrate: %v", err)
	}
}
