package main

import (
	"database/sql"
	"flag"
	"os"

	"seminary/migrations"
	"seminary/pkg/config"
	"seminary/pkg/logger"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		dir     = flag.String("dir", "migrations", "directory new migrations are created in")
		command = flag.String("command", "up", "migration command (up, down, status, version, create)")
		name    = flag.String("name", "", "name for new migration (used with create command)")
	)
	flag.Parse()

	log := logger.New()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load config: %v", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		log.Error("Failed to open database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Error("Failed to set dialect: %v", err)
		os.Exit(1)
	}

	if err := run(db, *command, *dir, *name, log); err != nil {
		log.Error("%s failed: %v", *command, err)
		os.Exit(1)
	}
}

// run executes command. Applied migrations come from the embedded files so
// the binary works without the source tree; create writes into dir.
func run(db *sql.DB, command, dir, name string, log *logger.Logger) error {
	if command == "create" {
		if name == "" {
			return errMissingName
		}
		if err := goose.Create(db, dir, name, "sql"); err != nil {
			return err
		}
		log.Info("Created migration: %s", name)
		return nil
	}

	goose.SetBaseFS(migrations.FS)
	defer goose.SetBaseFS(nil)

	switch command {
	case "up":
		if err := goose.Up(db, "."); err != nil {
			return err
		}
		log.Info("Migrations applied successfully")
	case "down":
		if err := goose.Down(db, "."); err != nil {
			return err
		}
		log.Info("Migrations rolled back successfully")
	case "status":
		return goose.Status(db, ".")
	case "version":
		return goose.Version(db, ".")
	default:
		return unknownCommandError(command)
	}
	return nil
}
