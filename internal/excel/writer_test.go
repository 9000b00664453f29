package excel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/clamc/trustee/internal/models"
)

func TestWriteCSV(t *testing.T) {
	rows := []models.Row{
		{
			models.TextValue("Upload Method"),
			models.TextValue("INCREMENTAL"),
			models.BlankValue(),
			models.BlankValue(),
			models.BlankValue(),
			models.BlankValue(),
		},
		{
			models.TextValue("CD022"),
			models.TextValue("4"),
			models.TextValue("HK0000226404"),
			models.TextValue("12229"),
			models.NumberValue(decimal.RequireFromString("99.027")),
			models.NumberValue(decimal.RequireFromString("99.027")),
		},
	}

	path := filepath.Join(t.TempDir(), "feed.csv")
	if err := WriteCSV(path, rows); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "Upload Method,INCREMENTAL,,,,\n" +
		"CD022,4,HK0000226404,12229,99.027,99.027\n"
	if string(got) != want {
		t.Errorf("File content:\ngot  %q\nwant %q", got, want)
	}
}
