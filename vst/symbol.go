package vst

/**
 * gouast - A Sanskrit transliteration library
 * Copyright Subin Siby <mail at subinsb (.) com>, 2021
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import (
	"context"
	sql "database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/varnamproject/gouast/gouast"
	"github.com/varnamproject/gouast/internal/log"
)

// Symbol is a row of the symbols table
type Symbol struct {
	Identifier int
	Type       gouast.Category
	Pattern    string
	Value1     string
	Value2     string
	Tag        string
}

// NewSearchSymbol makes a search criteria that matches everything. Set the
// fields to narrow it down.
func NewSearchSymbol() Symbol {
	symbol := Symbol{}
	symbol.Identifier = STRUCT_INT_DEFAULT_VALUE
	symbol.Type = STRUCT_INT_DEFAULT_VALUE
	return symbol
}

// Table converts it back to a Script Table entry
func (s Symbol) Table() gouast.Symbol {
	return gouast.Symbol{
		Type:    s.Type,
		Pattern: s.Pattern,
		Value1:  s.Value1,
		Value2:  s.Value2,
		Tag:     s.Tag,
	}
}

func makeSearchSymbolQuery(queryPrefix string, searchCriteria Symbol) (string, []any) {
	var (
		clauses []string
		values  []any
	)

	addString := func(name string, val string) {
		if val == "" {
			return
		}

		// Format should be LIKE value
		if len(val) > 5 && val[0:5] == "LIKE " {
			clauses = append(clauses, name+" LIKE ?")
			values = append(values, val[5:])
			return
		}

		clauses = append(clauses, name+" = ?")
		values = append(values, val)
	}

	addInt := func(name string, val int) {
		if val == STRUCT_INT_DEFAULT_VALUE {
			return
		}
		clauses = append(clauses, name+" = ?")
		values = append(values, val)
	}

	addInt("id", searchCriteria.Identifier)
	addInt("type", int(searchCriteria.Type))
	addString("pattern", searchCriteria.Pattern)
	addString("value1", searchCriteria.Value1)
	addString("value2", searchCriteria.Value2)
	addString("tag", searchCriteria.Tag)

	query := queryPrefix

	if len(values) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	return query, values
}

// SearchSymbolTable returns the symbols matching a criteria made with
// NewSearchSymbol, ordered by type and pattern
func (v *VST) SearchSymbolTable(ctx context.Context, searchCriteria Symbol) ([]Symbol, error) {
	query, values := makeSearchSymbolQuery("SELECT id, type, pattern, value1, IFNULL(value2, ''), IFNULL(tag, '') FROM symbols", searchCriteria)
	query += " ORDER BY type, pattern"

	log.DebugS("Searching symbols", "query", query, "values", values)

	rows, err := v.conn.QueryContext(ctx, query, values...)
	if err != nil {
		return nil, fmt.Errorf("searching symbols: %w", err)
	}
	defer rows.Close()

	var results []Symbol
	for rows.Next() {
		var item Symbol
		err := rows.Scan(&item.Identifier, &item.Type, &item.Pattern, &item.Value1, &item.Value2, &item.Tag)
		if err != nil {
			return nil, fmt.Errorf("reading symbol: %w", err)
		}
		results = append(results, item)
	}

	return results, rows.Err()
}

// GetSymbol finds the symbol of a pattern in a category
func (v *VST) GetSymbol(ctx context.Context, category gouast.Category, pattern string) (Symbol, error) {
	search := NewSearchSymbol()
	search.Type = category
	search.Pattern = pattern

	results, err := v.SearchSymbolTable(ctx, search)
	if err != nil {
		return Symbol{}, err
	}

	if len(results) == 0 {
		return Symbol{}, fmt.Errorf("%s %q: %w", category, pattern, ErrSymbolNotFound)
	}

	return results[0], nil
}

// LookupGlyph is Lookup backed by the file instead of the built in tables
func (v *VST) LookupGlyph(ctx context.Context, category gouast.Category, pattern string) (string, bool, error) {
	symbol, err := v.GetSymbol(ctx, category, pattern)
	if errors.Is(err, ErrSymbolNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return symbol.Value1, true, nil
}

// Symbols loads every symbol of the file as Script Table entries
func (v *VST) Symbols(ctx context.Context) ([]gouast.Symbol, error) {
	rows, err := v.SearchSymbolTable(ctx, NewSearchSymbol())
	if err != nil {
		return nil, err
	}

	symbols := make([]gouast.Symbol, len(rows))
	for i, row := range rows {
		symbols[i] = row.Table()
	}
	return symbols, nil
}

func validateSymbol(symbol gouast.Symbol) error {
	if symbol.Pattern == "" || symbol.Value1 == "" {
		return fmt.Errorf("pattern or value1 is empty: %w", ErrInvalidSymbol)
	}

	if symbol.Type < gouast.UAST_SYMBOL_VOWEL || symbol.Type > gouast.UAST_SYMBOL_SPECIAL {
		return fmt.Errorf("type %d of %q: %w", symbol.Type, symbol.Pattern, ErrInvalidSymbol)
	}

	return nil
}

func persistSymbol(ctx context.Context, tx *sql.Tx, symbol gouast.Symbol) error {
	var count int
	err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM symbols WHERE type = ? AND pattern = ?", int(symbol.Type), symbol.Pattern).Scan(&count)
	if err != nil {
		return err
	}

	if count > 0 {
		return fmt.Errorf("there is already a %s match for %q: %w", symbol.Type, symbol.Pattern, ErrDuplicateSymbol)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO symbols (type, pattern, value1, value2, tag) VALUES (?, ?, ?, ?, ?)",
		int(symbol.Type), symbol.Pattern, symbol.Value1, symbol.Value2, symbol.Tag,
	)
	if err != nil {
		return fmt.Errorf("failed to persist symbol %q: %w", symbol.Pattern, err)
	}

	return nil
}

// Compile replaces the symbols and metadata of the file with the given
// ones. Nothing is written if any symbol is rejected.
func (v *VST) Compile(ctx context.Context, symbols []gouast.Symbol, sd SchemeDetails) error {
	tx, err := v.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM symbols"); err != nil {
		return fmt.Errorf("clearing symbols: %w", err)
	}

	if err := setSchemeDetails(ctx, tx, sd); err != nil {
		return err
	}

	for _, symbol := range symbols {
		if err := validateSymbol(symbol); err != nil {
			return err
		}

		if err := persistSymbol(ctx, tx, symbol); err != nil {
			return err
		}
	}

	log.DebugS("Writing changes to file", "path", v.Path)

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to flush changes: %w", err)
	}

	if err := v.stampVersion(ctx); err != nil {
		return err
	}

	log.InfoS("Compiled VST", "path", v.Path, "scheme", sd.Identifier, "symbols", len(symbols))

	return nil
}
