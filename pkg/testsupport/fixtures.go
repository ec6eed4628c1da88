package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tidwall/gjson"
)

// LoadFixture loads test data from a fixture file.
// The path is relative to the test package directory.
func LoadFixture(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to load fixture from %s: %v", path, err)
	}

	return data
}

// LoadFixtureJSON loads a fixture and fails the test unless it is valid JSON.
func LoadFixtureJSON(t *testing.T, path string) gjson.Result {
	t.Helper()

	data := LoadFixture(t, path)
	if !gjson.ValidBytes(data) {
		t.Fatalf("fixture %s is not valid JSON", path)
	}

	return gjson.ParseBytes(data)
}

// FixturePath constructs a path to a fixture file relative to the testdata directory.
func FixturePath(filename string) string {
	return filepath.Join("testdata", filename)
}
