package upload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/clamc/trustee/internal/excel"
	"github.com/clamc/trustee/internal/models"
)

// historicalCostPrefix marks the historical cost reference file inside a
// holdings folder; every other spreadsheet there is a holdings report.
const historicalCostPrefix = "CLO Holdings"

// ErrNoHistoricalCostFile means the folder has no historical cost file.
var ErrNoHistoricalCostFile = errors.New("historical cost file not found")

// FindHistoricalCostFile returns the path of the folder's historical
// cost file, identified by its fixed file name prefix.
func FindHistoricalCostFile(folder string) (string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return "", fmt.Errorf("read folder %s: %w", folder, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasPrefix(e.Name(), historicalCostPrefix) {
			return filepath.Join(folder, e.Name()), nil
		}
	}
	return "", fmt.Errorf("folder %s: %w", folder, ErrNoHistoricalCostFile)
}

// FolderToFeed reads a folder holding one historical cost file and any
// number of tax lot reports, joins every report's bond holdings against
// the historical data, and returns the complete TSCF feed rows including
// the fixed header lines.
func FolderToFeed(folder string) ([]models.Row, error) {
	histPath, err := FindHistoricalCostFile(folder)
	if err != nil {
		return nil, err
	}
	histRows, err := excel.ReadGrid(histPath)
	if err != nil {
		return nil, err
	}
	hist, err := ParseHistoricalCosts(histRows)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", histPath, err)
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("read folder %s: %w", folder, err)
	}

	feed := FeedHeader()
	for _, e := range entries {
		if e.IsDir() || !isSpreadsheet(e.Name()) || strings.HasPrefix(e.Name(), historicalCostPrefix) {
			continue
		}
		path := filepath.Join(folder, e.Name())
		rows, err := excel.ReadGrid(path)
		if err != nil {
			return nil, err
		}
		bonds, err := BondEntries(rows)
		if err != nil {
			return nil, fmt.Errorf("extract bonds from %s: %w", path, err)
		}
		log.WithField("file", path).WithField("bonds", len(bonds)).Info("joining holdings report")
		feed = append(feed, JoinRows(hist, bonds)...)
	}
	return feed, nil
}

// WriteFeed generates the folder's TSCF feed and writes it to outPath.
func WriteFeed(folder, outPath string) error {
	rows, err := FolderToFeed(folder)
	if err != nil {
		return err
	}
	return excel.WriteCSV(outPath, rows)
}

func isSpreadsheet(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm", ".xls":
		return true
	}
	return false
}
