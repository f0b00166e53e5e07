package factors

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ecobeehq/ecoscore-backend/internal/boundaries"
)

// CSV layout: one file per domain (<domain>.csv), one row per category, one
// column per boundary, trailing description column. Kept simple so analysts
// can maintain the tables in a spreadsheet.

// LoadDir loads factor tables from a directory of per-domain CSV files.
// Missing directory or files fall back to the built-in tables; malformed rows
// are skipped with a warning. Loading never fails the process.
func LoadDir(dir string) Table {
	if dir == "" {
		return Default()
	}
	if _, err := os.Stat(dir); err != nil {
		slog.Warn("Factor table directory not found, using built-in tables", "dir", dir)
		return Default()
	}

	loaded := Table{}
	for _, domain := range boundaries.Domains() {
		path := filepath.Join(dir, string(domain)+".csv")
		entries, err := loadFile(path)
		if err != nil {
			slog.Warn("Skipping factor table file", "path", path, "error", err)
			continue
		}
		if len(entries) > 0 {
			loaded[domain] = entries
		}
	}

	if len(loaded) == 0 {
		return Default()
	}
	// Fill domains without a CSV from the built-in data so every canonical
	// domain always has a table.
	for domain, entries := range defaultTables {
		if _, ok := loaded[domain]; !ok {
			loaded[domain] = entries
		}
	}
	slog.Info("Factor tables loaded", "dir", dir, "domains", len(loaded))
	return loaded
}

func loadFile(path string) (map[string]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("no data rows in %s", path)
	}

	header := records[0]
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	if _, ok := col["category"]; !ok {
		return nil, fmt.Errorf("missing category column in %s", path)
	}

	entries := make(map[string]Entry, len(records)-1)
	for _, row := range records[1:] {
		category := strings.TrimSpace(row[col["category"]])
		if category == "" {
			continue
		}
		entry := Entry{Scores: make(map[string]float64, len(boundaries.Keys()))}
		ok := true
		for _, key := range boundaries.Keys() {
			idx, exists := col[key]
			if !exists || idx >= len(row) {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
			if err != nil {
				slog.Warn("Skipping factor row with bad score", "path", path, "category", category, "boundary", key)
				ok = false
				break
			}
			entry.Scores[key] = v
		}
		if !ok {
			continue
		}
		if idx, exists := col["description"]; exists && idx < len(row) {
			entry.Description = strings.TrimSpace(row[idx])
		}
		entries[category] = entry
	}

	return entries, nil
}

// SaveDir writes factor tables to per-domain CSV files, creating the
// directory if needed.
func SaveDir(t Table, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create factor table directory: %w", err)
	}

	for domain, entries := range t {
		path := filepath.Join(dir, string(domain)+".csv")
		if err := saveFile(path, entries); err != nil {
			return fmt.Errorf("failed to save factor table %s: %w", domain, err)
		}
	}
	return nil
}

func saveFile(path string, entries map[string]Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append([]string{"category"}, boundaries.Keys()...)
	header = append(header, "description")
	if err := w.Write(header); err != nil {
		return err
	}

	categories := make([]string, 0, len(entries))
	for c := range entries {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	for _, category := range categories {
		entry := entries[category]
		row := []string{category}
		for _, key := range boundaries.Keys() {
			row = append(row, strconv.FormatFloat(entry.Scores[key], 'f', -1, 64))
		}
		row = append(row, entry.Description)
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
