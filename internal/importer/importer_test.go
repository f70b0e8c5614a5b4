package importer_test

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"

	"lifelist/internal/config"
	"lifelist/internal/exportfile"
	"lifelist/internal/importer"
	"lifelist/internal/lifelist"
	"lifelist/internal/testsupport"
)

func newService(t *testing.T, opts ...testsupport.ConfigOption) (*importer.Service, *config.Config) {
	t.Helper()
	cfg := testsupport.NewConfig(t, opts...)
	store := testsupport.MustOpenLifeList(t, cfg)
	return importer.New(store, cfg.ImportLockPath(), cfg.Import.MaxFileBytes, nil), cfg
}

func TestImportReplacesStoredList(t *testing.T) {
	svc, cfg := newService(t)
	ctx := context.Background()
	base := testsupport.BaseDir(cfg)

	first := testsupport.WriteExport(t, base, "first.csv", testsupport.RobinExport)
	result, err := svc.Import(ctx, first, importer.Options{})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if result.RunID == "" {
		t.Error("expected run id to be assigned")
	}
	if result.Format != exportfile.FormatCSV {
		t.Errorf("Format mismatch: got %q", result.Format)
	}
	if result.Stats.Rows != 2 || result.Stats.Species != 1 {
		t.Errorf("unexpected stats: %+v", result.Stats)
	}
	if len(result.Species) != 1 || result.Species[0].LastSeen != "2023-03-05" {
		t.Fatalf("unexpected species: %+v", result.Species)
	}

	second := testsupport.WriteExport(t, base, "second.csv", testsupport.ExportLines(
		"Common Name,Scientific Name,Date",
		"Blue Jay,Cyanocitta cristata,2024-02-01",
		"Northern Cardinal,Cardinalis cardinalis,2/2/2024",
	))
	result, err = svc.Import(ctx, second, importer.Options{})
	if err != nil {
		t.Fatalf("second Import failed: %v", err)
	}
	if result.PreviousSpecies != 1 {
		t.Errorf("PreviousSpecies mismatch: got %d, want 1", result.PreviousSpecies)
	}

	current, ok, err := svc.Current(ctx)
	if err != nil || !ok {
		t.Fatalf("Current failed: ok=%v err=%v", ok, err)
	}
	if len(current) != 2 || !current.IsLifer("Turdus migratorius") {
		t.Fatalf("expected full replace, got %+v", current)
	}
}

func TestImportDryRunDoesNotPersist(t *testing.T) {
	svc, cfg := newService(t)
	ctx := context.Background()
	path := testsupport.WriteExport(t, testsupport.BaseDir(cfg), "export.csv", testsupport.RobinExport)

	result, err := svc.Import(ctx, path, importer.Options{DryRun: true})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if !result.DryRun || len(result.Species) != 1 {
		t.Fatalf("unexpected dry run result: %+v", result)
	}
	if _, ok, _ := svc.Current(ctx); ok {
		t.Fatal("dry run should not store a list")
	}
}

func TestImportFailureKeepsPreviousList(t *testing.T) {
	svc, cfg := newService(t)
	ctx := context.Background()
	base := testsupport.BaseDir(cfg)

	good := testsupport.WriteExport(t, base, "good.csv", testsupport.RobinExport)
	if _, err := svc.Import(ctx, good, importer.Options{}); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	bad := testsupport.WriteExport(t, base, "bad.csv", "Common Name,Date\nAmerican Robin,2024-01-01\n")
	_, err := svc.Import(ctx, bad, importer.Options{})
	var missing *lifelist.MissingColumnError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingColumnError, got %v", err)
	}

	current, ok, err := svc.Current(ctx)
	if err != nil || !ok {
		t.Fatalf("Current failed: ok=%v err=%v", ok, err)
	}
	if len(current) != 1 || current[0].ScientificName != "Turdus migratorius" {
		t.Fatalf("previous list should survive a failed import, got %+v", current)
	}
}

func TestImportMissingFile(t *testing.T) {
	svc, cfg := newService(t)
	_, err := svc.Import(context.Background(), filepath.Join(testsupport.BaseDir(cfg), "nope.csv"), importer.Options{})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestImportRespectsSizeLimit(t *testing.T) {
	svc, cfg := newService(t, testsupport.WithMaxFileBytes(16))
	path := testsupport.WriteExport(t, testsupport.BaseDir(cfg), "export.csv", testsupport.RobinExport)
	if _, err := svc.Import(context.Background(), path, importer.Options{}); !errors.Is(err, exportfile.ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestImportRejectsConcurrentImport(t *testing.T) {
	svc, cfg := newService(t)
	path := testsupport.WriteExport(t, testsupport.BaseDir(cfg), "export.csv", testsupport.RobinExport)

	held := flock.New(cfg.ImportLockPath())
	ok, err := held.TryLock()
	if err != nil || !ok {
		t.Fatalf("failed to take lock: ok=%v err=%v", ok, err)
	}

	if _, err := svc.Import(context.Background(), path, importer.Options{}); !errors.Is(err, importer.ErrImportInProgress) {
		t.Fatalf("expected ErrImportInProgress, got %v", err)
	}
	if err := svc.Clear(context.Background()); !errors.Is(err, importer.ErrImportInProgress) {
		t.Fatalf("expected Clear to report ErrImportInProgress, got %v", err)
	}

	if err := held.Unlock(); err != nil {
		t.Fatalf("unlock failed: %v", err)
	}
	if _, err := svc.Import(context.Background(), path, importer.Options{}); err != nil {
		t.Fatalf("Import after unlock failed: %v", err)
	}
}

func TestClearRemovesList(t *testing.T) {
	svc, cfg := newService(t, testsupport.WithBackend(config.BackendJSONFile))
	ctx := context.Background()
	path := testsupport.WriteExport(t, testsupport.BaseDir(cfg), "export.csv", testsupport.RobinExport)

	if _, err := svc.Import(ctx, path, importer.Options{}); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, ok, _ := svc.Current(ctx); ok {
		t.Fatal("expected no list after Clear")
	}
}
