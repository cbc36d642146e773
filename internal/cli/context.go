package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Flyrell/paycal/internal/config"
	"github.com/Flyrell/paycal/internal/schedule"
	"github.com/Flyrell/paycal/internal/store"
	"github.com/Flyrell/paycal/internal/store/sqlite"
	"go.uber.org/zap"
)

// getHomeDir returns the user's home directory.
func getHomeDir() (string, error) {
	return os.UserHomeDir()
}

// env is what a command needs to read or write statuses.
type env struct {
	cfg    *config.Config
	anchor time.Time
	store  store.Store
}

// openEnv loads the configuration for homeDir and opens the configured
// status store. The caller must close the store.
func openEnv(homeDir string, log *zap.Logger) (*env, error) {
	cfg, err := config.Load(homeDir)
	if err != nil {
		return nil, err
	}

	anchor, err := cfg.AnchorDate()
	if err != nil {
		return nil, err
	}

	s, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	log.Debug("store opened", zap.String("kind", cfg.Store), zap.String("anchor", cfg.Anchor))

	return &env{cfg: cfg, anchor: anchor, store: s}, nil
}

func (e *env) Close() error {
	return e.store.Close()
}

// openStore opens the status store selected by cfg.Store.
func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store {
	case config.StoreFile:
		return store.OpenFile(cfg.StatusFile)
	case config.StoreSQLite:
		return sqlite.New(cfg.Database)
	case config.StoreMemory:
		return store.NewMemory(nil), nil
	}
	return nil, fmt.Errorf("unknown store %q", cfg.Store)
}

// parseYearFlag parses --year. Empty means "no year given".
func parseYearFlag(yearFlag string) (int, error) {
	if yearFlag == "" {
		return 0, nil
	}
	y, err := strconv.Atoi(yearFlag)
	if err != nil || y <= 0 || y > 9999 {
		return 0, fmt.Errorf("invalid --year value %q (expected a positive number)", yearFlag)
	}
	return y, nil
}

// anchorForFlag resolves --year onto the anchor's biweekly chain. Without a
// year the configured anchor is used as is.
func anchorForFlag(anchor time.Time, yearFlag string) (time.Time, error) {
	year, err := parseYearFlag(yearFlag)
	if err != nil {
		return time.Time{}, err
	}
	if year == 0 {
		return anchor, nil
	}
	return schedule.AnchorForYear(anchor, year), nil
}

// parseMonthYearFlags parses the --month and --year flags into year and month.
// Defaults to current month/year if empty.
func parseMonthYearFlags(monthFlag, yearFlag string, now time.Time) (int, time.Month, error) {
	year := now.Year()
	y, err := parseYearFlag(yearFlag)
	if err != nil {
		return 0, 0, err
	}
	if y != 0 {
		year = y
	}

	month := now.Month()
	if monthFlag != "" {
		m, err := strconv.Atoi(monthFlag)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, fmt.Errorf("invalid --month value %q (expected 1-12)", monthFlag)
		}
		month = time.Month(m)
	}

	return year, month, nil
}

// monthRange returns the first and last day of a month as UTC midnights.
func monthRange(year int, month time.Month) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, -1)
}
