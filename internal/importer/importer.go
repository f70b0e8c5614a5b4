// Package importer runs life-list imports: it reads an export file, merges it
// into a life list, and replaces the stored list, one import at a time per
// data directory.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"lifelist/internal/exportfile"
	"lifelist/internal/lifelist"
	"lifelist/internal/logging"
)

// ErrImportInProgress indicates another process holds the import lock.
var ErrImportInProgress = errors.New("another lifelist import is already running")

// Options adjusts a single import.
type Options struct {
	// DryRun merges the export without replacing the stored list.
	DryRun bool
}

// Result describes a completed import.
type Result struct {
	RunID           string              `json:"run_id"`
	Source          string              `json:"source"`
	Format          exportfile.Format   `json:"format"`
	DryRun          bool                `json:"dry_run"`
	PreviousSpecies int                 `json:"previous_species"`
	Stats           lifelist.MergeStats `json:"stats"`
	Species         lifelist.List       `json:"species"`
	Elapsed         time.Duration       `json:"elapsed_ns"`
}

// Service coordinates imports against one life-list store.
type Service struct {
	store    *lifelist.Store
	lockPath string
	maxBytes int64
	logger   *slog.Logger
	newRunID func() string
}

// New creates a Service. lockPath names the advisory lock file shared by every
// process importing into the same store; maxBytes bounds export size.
func New(store *lifelist.Store, lockPath string, maxBytes int64, logger *slog.Logger) *Service {
	return &Service{
		store:    store,
		lockPath: lockPath,
		maxBytes: maxBytes,
		logger:   logging.NewComponentLogger(logger, "importer"),
		newRunID: uuid.NewString,
	}
}

// Import reads the export at path and replaces the stored life list with the
// merged result. Any failure leaves the stored list untouched.
func (s *Service) Import(ctx context.Context, path string, opts Options) (*Result, error) {
	unlock, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer unlock()

	started := time.Now()
	result := &Result{RunID: s.newRunID(), Source: path, DryRun: opts.DryRun}
	ctx = logging.WithRunID(ctx, result.RunID)
	logger := logging.WithContext(ctx, s.logger)
	logger.Info("import started", logging.String("source", path), logging.Bool("dry_run", opts.DryRun))

	if err := s.run(ctx, path, opts, result); err != nil {
		logging.ErrorWithContext(logger, "import failed", "import_failed",
			logging.Error(err),
			logging.String("source", path),
			logging.String(logging.FieldErrorHint, failureHint(err)))
		return nil, err
	}

	result.Elapsed = time.Since(started)
	logger.Info("import finished",
		logging.Int("species", result.Stats.Species),
		logging.Int("previous_species", result.PreviousSpecies),
		logging.Int("rows", result.Stats.Rows),
		logging.Int("skipped", result.Stats.Skipped),
		logging.Int("undated", result.Stats.Undated),
		logging.Bool("dry_run", opts.DryRun),
		logging.Duration("elapsed", result.Elapsed))
	return result, nil
}

func (s *Service) run(ctx context.Context, path string, opts Options, result *Result) error {
	export, err := exportfile.Read(path, s.maxBytes)
	if err != nil {
		return err
	}
	result.Format = export.Format

	list, stats, err := export.Merge()
	if err != nil {
		return err
	}
	result.Species = list
	result.Stats = stats

	previous, _, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	result.PreviousSpecies = len(previous)

	if opts.DryRun {
		return nil
	}
	return s.store.Save(ctx, list)
}

// Current returns the stored life list.
func (s *Service) Current(ctx context.Context) (lifelist.List, bool, error) {
	return s.store.Load(ctx)
}

// Clear removes the stored life list. It fails with ErrImportInProgress while
// an import holds the lock.
func (s *Service) Clear(ctx context.Context) error {
	unlock, err := s.acquire()
	if err != nil {
		return err
	}
	defer unlock()

	if err := s.store.Clear(ctx); err != nil {
		return err
	}
	s.logger.Info("life list cleared")
	return nil
}

func (s *Service) acquire() (func(), error) {
	if s.lockPath == "" {
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(s.lockPath), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock := flock.New(s.lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire import lock: %w", err)
	}
	if !ok {
		return nil, ErrImportInProgress
	}
	return func() {
		if err := lock.Unlock(); err != nil {
			logging.WarnWithContext(s.logger, "failed to release import lock", "import_lock_release_failed",
				logging.Error(err),
				logging.String("lock", s.lockPath),
				logging.String(logging.FieldErrorHint, "remove the lock file if no import is running"),
				logging.String(logging.FieldImpact, "later imports may report an import in progress"))
		}
	}, nil
}

func failureHint(err error) string {
	switch {
	case errors.Is(err, lifelist.ErrMissingRequiredColumn):
		return "export the full eBird data file; it must include a Scientific Name column"
	case errors.Is(err, fs.ErrNotExist):
		return "check the export path"
	case errors.Is(err, exportfile.ErrUnsupportedFormat):
		return "use a .csv or .xlsx export"
	case errors.Is(err, exportfile.ErrFileTooLarge):
		return "raise import.max_file_bytes in the config"
	default:
		return "check the store configuration and logs"
	}
}
