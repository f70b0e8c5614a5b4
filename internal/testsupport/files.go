package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// RobinExport is a minimal eBird export with two sightings of one species.
const RobinExport = "Submission ID,Common Name,Scientific Name,Taxonomic Order,Count,Date\n" +
	"S100,American Robin,Turdus migratorius,28500,2,2023-01-02\n" +
	"S101,American Robin,Turdus migratorius,28500,X,3/5/2023\n"

// WriteExport writes an export file under the config's temp directory and
// returns its path.
func WriteExport(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ExportLines joins CSV lines with CRLF endings, the way the eBird website
// serves its export.
func ExportLines(lines ...string) string {
	return strings.Join(lines, "\r\n") + "\r\n"
}
