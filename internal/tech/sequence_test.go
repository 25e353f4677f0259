package tech

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pvflorin/RC-Generator/internal/table"
)

var testColumns = Columns{
	ProductCode: "Reper",
	Seq:         "Nr. Op.",
	Operation:   "Operatie",
	Workstation: "Utilaj/Locatie",
	Duration:    "Timp (min)",
}

func loadCatalog(t *testing.T, csv string) *Catalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), "technology.csv")
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	tbl, err := table.Load(path, table.Options{Kind: table.KindTechnology, Required: testColumns.Required()})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	cat, err := ParseCatalog(tbl, testColumns)
	if err != nil {
		t.Fatalf("ParseCatalog() failed: %v", err)
	}
	return cat
}

const catalogCSV = "" +
	"Reper,Nr. Op.,Operatie,Utilaj/Locatie,Timp (min)\n" +
	"P-17,3,Control final,Banc control,10\n" +
	"P-17,1,Debitare,Fierastrau,15\n" +
	"P-17,2,Frezare,CNC-02,45\n" +
	"P-09,1,Debitare,Fierastrau,12\n" +
	"P-09,3,Control final,Banc control,8\n" +
	"P-31,1,Strunjire,Strung-01,30\n" +
	"P-31,1,Rectificare,RU-100,20\n"

func TestSequence_SortedAscending(t *testing.T) {
	cat := loadCatalog(t, catalogCSV)

	steps, warnings, err := cat.Sequence("P-17")
	if err != nil {
		t.Fatalf("Sequence() failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	wantOps := []string{"Debitare", "Frezare", "Control final"}
	if len(steps) != len(wantOps) {
		t.Fatalf("len(steps) = %d, want %d", len(steps), len(wantOps))
	}
	for i, want := range wantOps {
		if steps[i].Seq != i+1 {
			t.Errorf("steps[%d].Seq = %d, want %d", i, steps[i].Seq, i+1)
		}
		if steps[i].Operation != want {
			t.Errorf("steps[%d].Operation = %q, want %q", i, steps[i].Operation, want)
		}
	}
}

func TestSequence_GapWarnsButReturnsSteps(t *testing.T) {
	cat := loadCatalog(t, catalogCSV)

	steps, warnings, err := cat.Sequence("P-09")
	if err != nil {
		t.Fatalf("Sequence() failed: %v", err)
	}
	if len(steps) != 2 || steps[0].Seq != 1 || steps[1].Seq != 3 {
		t.Fatalf("steps = %v, want seq [1 3]", steps)
	}
	if len(warnings) != 1 {
		t.Fatalf("len(warnings) = %d, want 1", len(warnings))
	}
	if warnings[0].Code != WarnSequenceGap {
		t.Errorf("warning code = %q, want %q", warnings[0].Code, WarnSequenceGap)
	}
}

func TestSequence_DuplicateStepRejected(t *testing.T) {
	cat := loadCatalog(t, catalogCSV)

	steps, _, err := cat.Sequence("P-31")
	if !IsDuplicateStep(err) {
		t.Fatalf("err = %v, want DuplicateStepError", err)
	}
	if steps != nil {
		t.Errorf("steps = %v, want nil on duplicate", steps)
	}
}

func TestSequence_UnknownProduct(t *testing.T) {
	cat := loadCatalog(t, catalogCSV)

	steps, warnings, err := cat.Sequence("P-99")
	if err != nil || steps != nil || warnings != nil {
		t.Errorf("Sequence(P-99) = (%v, %v, %v), want all nil", steps, warnings, err)
	}
}

func TestSequence_ProductCodeNormalized(t *testing.T) {
	cat := loadCatalog(t, catalogCSV)

	steps, _, err := cat.Sequence("  p-17 ")
	if err != nil {
		t.Fatalf("Sequence() failed: %v", err)
	}
	if len(steps) != 3 {
		t.Errorf("len(steps) = %d, want 3 for normalized lookup", len(steps))
	}
}

func TestParseCatalog_BadSequenceNumber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "technology.csv")
	csv := "Reper,Nr. Op.,Operatie\nP-17,first,Debitare\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	tbl, err := table.Load(path, table.Options{Kind: table.KindTechnology, Required: []string{"Reper", "Nr. Op.", "Operatie"}})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	_, err = ParseCatalog(tbl, Columns{ProductCode: "Reper", Seq: "Nr. Op.", Operation: "Operatie"})
	if !table.IsFormat(err) {
		t.Errorf("err = %v, want SOURCE_FORMAT", err)
	}
}
