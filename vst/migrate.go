package vst

import (
	"context"
	sql "database/sql"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/varnamproject/gouast/internal/log"
)

type migrate struct {
	db *sql.DB
	fs fs.FS
}

type migrationStatus struct {
	lastRun       string
	lastMigration string
}

func initMigrate(ctx context.Context, db *sql.DB, fs fs.FS) (*migrate, error) {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS migrations (
			id INTEGER PRIMARY KEY,
			name VARCHAR(200)
		);
	`)
	if err != nil {
		return nil, fmt.Errorf("creating migrations table: %w", err)
	}

	return &migrate{db, fs}, nil
}

// 001-init.sql is recorded as 001-init
func migrationName(fileName string) string {
	return strings.TrimSuffix(fileName, path.Ext(fileName))
}

func (mg *migrate) status(ctx context.Context) (*migrationStatus, error) {
	var lastRun string
	err := mg.db.QueryRowContext(ctx, "SELECT name FROM migrations ORDER BY id DESC LIMIT 1").Scan(&lastRun)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	files, err := fs.ReadDir(mg.fs, ".")
	if err != nil {
		return nil, err
	}

	lastMigration := ""
	if len(files) > 0 {
		lastMigration = migrationName(files[len(files)-1].Name())
	}

	return &migrationStatus{lastRun, lastMigration}, nil
}

// run applies every migration after the last one recorded and returns how
// many ran
func (mg *migrate) run(ctx context.Context) (int, error) {
	status, err := mg.status(ctx)
	if err != nil {
		return 0, err
	}

	if status.lastRun == status.lastMigration {
		return 0, nil
	}

	files, err := fs.ReadDir(mg.fs, ".")
	if err != nil {
		return 0, err
	}

	ranMigrations := 0

	// Nothing ran yet
	foundLastRun := status.lastRun == ""

	for _, file := range files {
		name := migrationName(file.Name())

		if !foundLastRun {
			foundLastRun = status.lastRun == name
			continue
		}

		if err := mg.apply(ctx, file.Name(), name); err != nil {
			return ranMigrations, fmt.Errorf("migration %s: %w", name, err)
		}

		log.DebugS("Ran migration", "name", name)
		ranMigrations++
	}

	return ranMigrations, nil
}

func (mg *migrate) apply(ctx context.Context, fileName string, name string) error {
	contents, err := fs.ReadFile(mg.fs, fileName)
	if err != nil {
		return err
	}

	tx, err := mg.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, string(contents)); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "INSERT INTO migrations (name) VALUES (?)", name); err != nil {
		return err
	}

	return tx.Commit()
}
