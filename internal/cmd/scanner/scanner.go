// Package scanner parses scanner flags and runs the live scan loop.
package scanner

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/louisbranch/rollcall/internal/id"
	entrypoint "github.com/louisbranch/rollcall/internal/platform/cmd"
	"github.com/louisbranch/rollcall/internal/scan"
	"github.com/louisbranch/rollcall/internal/storage/sqlite"
	"github.com/louisbranch/rollcall/internal/telemetry"
)

// Config holds scanner configuration.
type Config struct {
	DBPath string `env:"ROLLCALL_DB_PATH" envDefault:"data/rollcall.db" validate:"required"`
	OutDir string `env:"ROLLCALL_SCAN_OUT_DIR" envDefault:"data/daily_list" validate:"required"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the SQLite database")
	fs.StringVar(&cfg.OutDir, "out-dir", cfg.OutDir, "Root directory for the daily attendance CSV tree")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if err := entrypoint.ValidateConfig(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run opens the store and drives the scan loop over input until input is
// exhausted or ctx is canceled. The database must already hold an imported
// roster; a missing database file fails setup before the loop starts.
func Run(ctx context.Context, cfg Config, input io.Reader, out io.Writer) error {
	if _, err := os.Stat(cfg.DBPath); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("database %s does not exist; run roster-import first", cfg.DBPath)
	} else if err != nil {
		return fmt.Errorf("stat database: %w", err)
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output root: %w", err)
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

	emitter := telemetry.NewEmitter(store, id.New())
	if err := emitter.Emit(ctx, "session.started", telemetry.SeverityInfo, "out_dir="+cfg.OutDir); err != nil {
		log.Printf("emit audit event: %v", err)
	}
	defer func() {
		// The loop context is already canceled on interrupt; the stop
		// event still belongs in the audit trail.
		if err := emitter.Emit(context.Background(), "session.stopped", telemetry.SeverityInfo, ""); err != nil {
			log.Printf("emit audit event: %v", err)
		}
	}()

	recorder := scan.NewRecorder(store, cfg.OutDir)
	session := scan.NewSession(store, recorder, &consolePresenter{out: out})
	if err := session.Run(ctx, input); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("run session: %w", err)
	}
	return nil
}
