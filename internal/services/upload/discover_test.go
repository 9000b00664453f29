package upload

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFindHistoricalCostFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"12229 tax lot 201906.xlsx",
		"CLO Holdings 2019.06.28.xlsx",
		"notes.txt",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	path, err := FindHistoricalCostFile(dir)
	if err != nil {
		t.Fatalf("FindHistoricalCostFile: %v", err)
	}
	if filepath.Base(path) != "CLO Holdings 2019.06.28.xlsx" {
		t.Errorf("Path: got %q", path)
	}
}

func TestFindHistoricalCostFile_Missing(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "12229 tax lot 201906.xlsx"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := FindHistoricalCostFile(dir); !errors.Is(err, ErrNoHistoricalCostFile) {
		t.Fatalf("Expected ErrNoHistoricalCostFile, got %v", err)
	}
}
