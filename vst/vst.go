// Package vst stores the Script Tables in SQLite "VST" files, the format
// varnam uses for its scheme symbol tables.
package vst

/**
 * gouast - A Sanskrit transliteration library
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import (
	"context"
	sql "database/sql"
	"embed"
	"fmt"
	"io/fs"
	"time"

	"github.com/varnamproject/gouast/internal/log"

	// Registers the "sqlite" driver
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var embedFS embed.FS

// SchemeDetails of a VST
type SchemeDetails struct {
	Identifier   string
	LangCode     string
	DisplayName  string
	Author       string
	CompiledDate string
	IsStable     bool
}

// DefaultSchemeDetails describes the Sanskrit tables
func DefaultSchemeDetails() SchemeDetails {
	return SchemeDetails{
		Identifier:  "uast",
		LangCode:    "sa",
		DisplayName: "Sanskrit",
		IsStable:    true,
	}
}

// VST is an open symbol table file
type VST struct {
	Path string
	conn *sql.DB
}

// Open opens or creates a VST file and brings its schema up to date
func Open(vstPath string) (*VST, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := sql.Open("sqlite", vstPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", vstPath, err)
	}

	// One file, one writer
	conn.SetMaxOpenConns(1)

	v := &VST{Path: vstPath, conn: conn}

	migrationsFS, err := fs.Sub(embedFS, "migrations")
	if err != nil {
		conn.Close()
		return nil, err
	}

	mg, err := initMigrate(ctx, conn, migrationsFS)
	if err != nil {
		conn.Close()
		return nil, err
	}

	ran, err := mg.run(ctx)
	if err != nil {
		conn.Close()
		return nil, err
	}

	if ran > 0 {
		log.DebugS("Migrated VST", "path", vstPath, "migrations", ran)
	}

	return v, nil
}

// Close the file
func (v *VST) Close() error {
	return v.conn.Close()
}

func (sd SchemeDetails) validate() error {
	if sd.Identifier == "" {
		return fmt.Errorf("scheme identifier is empty")
	}
	if len(sd.LangCode) != 2 {
		return fmt.Errorf("language code should be one of ISO 639-1 two letter codes, got %q", sd.LangCode)
	}
	return nil
}

func addMetadata(ctx context.Context, tx *sql.Tx, key string, value string) error {
	_, err := tx.ExecContext(ctx, "INSERT OR REPLACE INTO metadata (key, value) VALUES (?, ?)", key, value)
	return err
}

func setSchemeDetails(ctx context.Context, tx *sql.Tx, sd SchemeDetails) error {
	if err := sd.validate(); err != nil {
		return err
	}

	if sd.CompiledDate == "" {
		sd.CompiledDate = time.Now().UTC().Format(time.RFC3339)
	}

	isStable := "1"
	if !sd.IsStable {
		isStable = "0"
	}

	items := []struct {
		key   string
		value string
	}{
		{VST_METADATA_SCHEME_IDENTIFIER, sd.Identifier},
		{VST_METADATA_SCHEME_LANGUAGE_CODE, sd.LangCode},
		{VST_METADATA_SCHEME_DISPLAY_NAME, sd.DisplayName},
		{VST_METADATA_SCHEME_AUTHOR, sd.Author},
		{VST_METADATA_SCHEME_COMPILED_DATE, sd.CompiledDate},
		{VST_METADATA_SCHEME_STABLE, isStable},
	}

	for _, item := range items {
		if err := addMetadata(ctx, tx, item.key, item.value); err != nil {
			return fmt.Errorf("setting %s: %w", item.key, err)
		}
	}

	return nil
}

// SchemeDetails reads the scheme metadata back
func (v *VST) SchemeDetails(ctx context.Context) (SchemeDetails, error) {
	var sd SchemeDetails

	rows, err := v.conn.QueryContext(ctx, "SELECT key, value FROM metadata")
	if err != nil {
		return sd, err
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return sd, err
		}

		switch key {
		case VST_METADATA_SCHEME_IDENTIFIER:
			sd.Identifier = value
		case VST_METADATA_SCHEME_LANGUAGE_CODE:
			sd.LangCode = value
		case VST_METADATA_SCHEME_DISPLAY_NAME:
			sd.DisplayName = value
		case VST_METADATA_SCHEME_AUTHOR:
			sd.Author = value
		case VST_METADATA_SCHEME_COMPILED_DATE:
			sd.CompiledDate = value
		case VST_METADATA_SCHEME_STABLE:
			sd.IsStable = value == "1"
		}
	}

	return sd, rows.Err()
}

// SchemaVersion is the version stamped by the last Compile, 0 if never compiled
func (v *VST) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	err := v.conn.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version)
	return version, err
}

func (v *VST) stampVersion(ctx context.Context) error {
	_, err := v.conn.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version=%d", VST_SCHEMA_SYMBOLS_VERSION))
	return err
}
