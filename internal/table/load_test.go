package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad_CSV(t *testing.T) {
	path := writeCSV(t, ""+
		"Comanda Interna,Reper,Cantitate\n"+
		"INR000055,P-17,25\n"+
		"INR000056,P-09,10\n")

	tbl, err := Load(path, Options{Kind: KindPlanning, Required: []string{"Comanda Interna", "Reper"}})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}
	if got := tbl.Value(0, "comanda interna"); got != "INR000055" {
		t.Errorf("Value(0, comanda interna) = %q, want INR000055", got)
	}
	if got := tbl.Value(1, "Cantitate"); got != "10" {
		t.Errorf("Value(1, Cantitate) = %q, want 10", got)
	}
}

func TestLoad_SkipsBlankAndEchoRows(t *testing.T) {
	path := writeCSV(t, ""+
		"Comanda Interna,Reper\n"+
		"INR000055,P-17\n"+
		",\n"+
		"Comanda Interna,Reper\n"+
		"INR000056,P-09\n"+
		",\n")

	tbl, err := Load(path, Options{Kind: KindPlanning, Required: []string{"Comanda Interna"}})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if tbl.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (blank and echoed header rows skipped)", tbl.Len())
	}
}

func TestLoad_LeadingTotalsRow(t *testing.T) {
	// Upstream planning exports sometimes carry a totals row above the
	// real header.
	path := writeCSV(t, ""+
		"TOTAL,,35\n"+
		"Comanda Interna,Reper,Cantitate\n"+
		"INR000055,P-17,25\n")

	tbl, err := Load(path, Options{Kind: KindPlanning, Required: []string{"Comanda Interna", "Cantitate"}})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if tbl.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tbl.Len())
	}
	if got := tbl.Value(0, "Reper"); got != "P-17" {
		t.Errorf("Value(0, Reper) = %q, want P-17", got)
	}
}

func TestLoad_HeaderDrift(t *testing.T) {
	// Header carries diacritics and stray whitespace; lookup does not.
	path := writeCSV(t, ""+
		"Reper,  Operație , Utilaj/Locație\n"+
		"P-17,Debitare,Fierastrau\n")

	tbl, err := Load(path, Options{Kind: KindTechnology, Required: []string{"Operatie"}})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got := tbl.Value(0, "operatie"); got != "Debitare" {
		t.Errorf("Value(0, operatie) = %q, want Debitare", got)
	}
	if got := tbl.Value(0, "UTILAJ/LOCATIE"); got != "Fierastrau" {
		t.Errorf("Value(0, UTILAJ/LOCATIE) = %q, want Fierastrau", got)
	}
}

func TestLoad_MissingRequiredColumn(t *testing.T) {
	path := writeCSV(t, ""+
		"Comanda Interna,Cantitate\n"+
		"INR000055,25\n")

	_, err := Load(path, Options{Kind: KindPlanning, Required: []string{"Comanda Interna", "Reper"}})
	if err == nil {
		t.Fatal("Load() succeeded, want SOURCE_FORMAT error")
	}
	if !IsFormat(err) {
		t.Errorf("IsFormat(err) = false for %v", err)
	}
	le := err.(*LoadError)
	if len(le.Missing) != 1 || le.Missing[0] != "Reper" {
		t.Errorf("Missing = %v, want [Reper]", le.Missing)
	}
}

func TestLoad_SourceNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"), Options{Kind: KindPlanning})
	if err == nil {
		t.Fatal("Load() succeeded, want SOURCE_NOT_FOUND error")
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound(err) = false for %v", err)
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "source.pdf")
	if err := os.WriteFile(path, []byte("%PDF"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	_, err := Load(path, Options{Kind: KindPlanning})
	if !IsFormat(err) {
		t.Errorf("IsFormat(err) = false for %v", err)
	}
}

func TestLoad_XLSX(t *testing.T) {
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Comanda Interna", "Reper", "Cantitate"},
		{"INR000055", "P-17", 25},
		{},
		{"INR000056", "P-09", 10},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		r := row
		if err := f.SetSheetRow("Sheet1", cell, &r); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "planning.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close workbook: %v", err)
	}

	tbl, err := Load(path, Options{Kind: KindPlanning, Required: []string{"Comanda Interna", "Reper", "Cantitate"}})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}
	if got := tbl.Value(1, "Comanda Interna"); got != "INR000056" {
		t.Errorf("Value(1, Comanda Interna) = %q, want INR000056", got)
	}
}
