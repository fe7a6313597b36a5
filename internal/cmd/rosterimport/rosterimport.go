// Package rosterimport parses roster importer flags and runs the import.
package rosterimport

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/rollcall/internal/id"
	entrypoint "github.com/louisbranch/rollcall/internal/platform/cmd"
	"github.com/louisbranch/rollcall/internal/roster"
	"github.com/louisbranch/rollcall/internal/storage"
	"github.com/louisbranch/rollcall/internal/storage/sqlite"
	"github.com/louisbranch/rollcall/internal/telemetry"
)

// Config holds roster importer configuration.
type Config struct {
	Input       string `env:"ROLLCALL_IMPORT_INPUT" validate:"required"`
	DBPath      string `env:"ROLLCALL_DB_PATH" envDefault:"data/rollcall.db" validate:"required"`
	OutDir      string `env:"ROLLCALL_IMPORT_OUT_DIR" envDefault:"data" validate:"required"`
	OutName     string `env:"ROLLCALL_IMPORT_OUT_NAME" envDefault:"students_with_tracking_id.csv" validate:"required"`
	Mode        string `env:"ROLLCALL_IMPORT_MODE" envDefault:"separate" validate:"oneof=combined separate"`
	IfExists    string `env:"ROLLCALL_IMPORT_IF_EXISTS" envDefault:"replace" validate:"oneof=replace append"`
	NameColumn  string `env:"ROLLCALL_IMPORT_NAME_COLUMN" envDefault:"Student Name" validate:"required"`
	FirstColumn string `env:"ROLLCALL_IMPORT_FIRST_COLUMN" envDefault:"First Name" validate:"required"`
	LastColumn  string `env:"ROLLCALL_IMPORT_LAST_COLUMN" envDefault:"Last Name" validate:"required"`
	Delimiter   string `env:"ROLLCALL_IMPORT_DELIMITER" envDefault:"," validate:"required"`
	Encoding    string `env:"ROLLCALL_IMPORT_ENCODING" envDefault:"utf-8" validate:"oneof=utf-8 utf8 latin-1 iso-8859-1 windows-1252 cp1252 utf-16 utf-16le utf-16be"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Input, "input", cfg.Input, "Path to the delimited roster export")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the SQLite database")
	fs.StringVar(&cfg.OutDir, "out-dir", cfg.OutDir, "Directory for the roster mirror CSV")
	fs.StringVar(&cfg.OutName, "out-name", cfg.OutName, "Filename for the roster mirror CSV")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "Input name layout: combined or separate")
	fs.StringVar(&cfg.IfExists, "if-exists", cfg.IfExists, "Replace or append to the stored roster")
	fs.StringVar(&cfg.NameColumn, "name-column", cfg.NameColumn, "Combined-mode column holding full names")
	fs.StringVar(&cfg.FirstColumn, "first-column", cfg.FirstColumn, "Separate-mode column holding first names")
	fs.StringVar(&cfg.LastColumn, "last-column", cfg.LastColumn, "Separate-mode column holding last names")
	fs.StringVar(&cfg.Delimiter, "delimiter", cfg.Delimiter, "Field delimiter of the input file")
	fs.StringVar(&cfg.Encoding, "encoding", cfg.Encoding, "Character encoding of the input file")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.Encoding = strings.ToLower(strings.TrimSpace(cfg.Encoding))
	if err := entrypoint.ValidateConfig(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DelimiterRune returns the configured field delimiter as a single rune.
// The literal two-character escape \t and the word tab both mean a tab.
func (c Config) DelimiterRune() (rune, error) {
	if c.Delimiter == `\t` || c.Delimiter == "tab" {
		return '\t', nil
	}
	runes := []rune(c.Delimiter)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	return runes[0], nil
}

// Run reads the roster export, loads it into the database, and writes the
// mirror CSV. The input is read and normalized in full before the first
// database write. A human summary goes to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	delimiter, err := cfg.DelimiterRune()
	if err != nil {
		return err
	}
	mode := roster.Mode(cfg.Mode)
	if !mode.Valid() {
		return fmt.Errorf("unknown roster mode %q", cfg.Mode)
	}

	table, err := roster.OpenTable(cfg.Input, delimiter, cfg.Encoding)
	if err != nil {
		return err
	}
	entries, err := roster.Build(table, mode, roster.Columns{
		Combined: cfg.NameColumn,
		First:    cfg.FirstColumn,
		Last:     cfg.LastColumn,
	})
	if err != nil {
		return err
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create database directory: %w", err)
		}
	}
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close store: %v", err)
		}
	}()

	runID := id.New()
	stamp := storage.ImportStamp{
		RunID:      runID,
		SourceFile: filepath.Base(cfg.Input),
		ImportedAt: time.Now().UTC(),
	}
	switch cfg.IfExists {
	case "append":
		err = store.AppendRoster(ctx, entries, stamp)
	default:
		err = store.ReplaceRoster(ctx, entries, stamp)
	}
	if err != nil {
		return fmt.Errorf("write roster: %w", err)
	}

	mirrorPath := filepath.Join(cfg.OutDir, cfg.OutName)
	if err := roster.WriteMirror(mirrorPath, entries); err != nil {
		return err
	}

	emitter := telemetry.NewEmitter(store, runID)
	detail := fmt.Sprintf("source=%s mode=%s if_exists=%s rows=%d", stamp.SourceFile, cfg.Mode, cfg.IfExists, len(entries))
	if err := emitter.Emit(ctx, "roster.import_completed", telemetry.SeverityInfo, detail); err != nil {
		log.Printf("emit audit event: %v", err)
	}

	fmt.Fprintf(out, "Processed %d rows.\n", len(entries))
	fmt.Fprintf(out, "  SQLite: %s (mode: %s)\n", cfg.DBPath, cfg.IfExists)
	fmt.Fprintf(out, "  CSV: %s\n", mirrorPath)
	fmt.Fprintf(out, "  Tracking ids start at %d, sorted by first name then last name.\n", roster.FirstTrackingID)
	return nil
}
