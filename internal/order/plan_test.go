package order

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pvflorin/RC-Generator/internal/table"
	"github.com/pvflorin/RC-Generator/internal/tech"
)

var planColumns = Columns{
	OrderID:     "Comanda Interna",
	ProductCode: "Reper",
	Description: "Denumire",
	Quantity:    "Cantitate",
	DueDate:     "Termen",
	Customer:    "Client",
	ClientOrder: "Comanda",
	ClientRef:   "Fisa Interna",
	Position:    "Pozitie",
	Material:    "Material",
	DrawingRev:  "Revizie",
}

var techColumns = tech.Columns{
	ProductCode: "Reper",
	Seq:         "Nr. Op.",
	Operation:   "Operatie",
	Workstation: "Utilaj/Locatie",
	Duration:    "Timp (min)",
}

const planCSV = "" +
	"Comanda Interna,Reper,Denumire,Cantitate,Termen,Client,Pozitie\n" +
	"INR000055,P-17,Flansa intermediara,25.0,2026-09-15,Elmet International SRL,3\n" +
	"INR000060,P-99,Capac,10,2026-09-20,Elmet International SRL,1\n"

const techCSV = "" +
	"Reper,Nr. Op.,Operatie,Utilaj/Locatie,Timp (min)\n" +
	"P-17,1,Debitare,Fierastrau,15\n" +
	"P-17,2,Frezare,CNC-02,45\n" +
	"P-17,3,Control final,Banc control,10\n"

func loadFixtures(t *testing.T) (*Plan, *tech.Catalog) {
	t.Helper()
	dir := t.TempDir()

	planPath := filepath.Join(dir, "planning.csv")
	if err := os.WriteFile(planPath, []byte(planCSV), 0o644); err != nil {
		t.Fatalf("write planning fixture: %v", err)
	}
	planTbl, err := table.Load(planPath, table.Options{Kind: table.KindPlanning, Required: planColumns.Required()})
	if err != nil {
		t.Fatalf("load planning: %v", err)
	}
	plan, err := ParsePlan(planTbl, planColumns)
	if err != nil {
		t.Fatalf("ParsePlan() failed: %v", err)
	}

	techPath := filepath.Join(dir, "technology.csv")
	if err := os.WriteFile(techPath, []byte(techCSV), 0o644); err != nil {
		t.Fatalf("write technology fixture: %v", err)
	}
	techTbl, err := table.Load(techPath, table.Options{Kind: table.KindTechnology, Required: techColumns.Required()})
	if err != nil {
		t.Fatalf("load technology: %v", err)
	}
	catalog, err := tech.ParseCatalog(techTbl, techColumns)
	if err != nil {
		t.Fatalf("ParseCatalog() failed: %v", err)
	}

	return plan, catalog
}

func TestResolve_Found(t *testing.T) {
	plan, catalog := loadFixtures(t)

	octx, err := plan.Resolve("INR000055", catalog)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if octx.OrderID != "INR000055" {
		t.Errorf("OrderID = %q, want INR000055", octx.OrderID)
	}
	if octx.ProductCode != "P-17" {
		t.Errorf("ProductCode = %q, want P-17", octx.ProductCode)
	}
	if octx.Quantity != "25" {
		t.Errorf("Quantity = %q, want 25 (float artifact stripped)", octx.Quantity)
	}
	if len(octx.Steps) != 3 {
		t.Fatalf("len(Steps) = %d, want 3", len(octx.Steps))
	}
	for i, step := range octx.Steps {
		if step.Seq != i+1 {
			t.Errorf("Steps[%d].Seq = %d, want %d (ascending, no gaps)", i, step.Seq, i+1)
		}
	}
	if len(octx.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", octx.Warnings)
	}
}

func TestResolve_NormalizedLookup(t *testing.T) {
	plan, catalog := loadFixtures(t)

	octx, err := plan.Resolve("  inr000055 ", catalog)
	if err != nil {
		t.Fatalf("Resolve() failed for normalized id: %v", err)
	}
	if octx.OrderID != "INR000055" {
		t.Errorf("OrderID = %q, want INR000055", octx.OrderID)
	}
}

func TestResolve_NoSubstringMatch(t *testing.T) {
	plan, catalog := loadFixtures(t)

	// "55" is a substring of INR000055 but must never resolve.
	_, err := plan.Resolve("55", catalog)
	if !IsNotFound(err) {
		t.Errorf("Resolve(55) err = %v, want ORDER_NOT_FOUND", err)
	}
}

func TestResolve_OrderNotFound(t *testing.T) {
	plan, catalog := loadFixtures(t)

	_, err := plan.Resolve("INR999999", catalog)
	if !IsNotFound(err) {
		t.Fatalf("err = %v, want ORDER_NOT_FOUND", err)
	}
	re := err.(*ResolveError)
	if re.OrderID != "INR999999" {
		t.Errorf("error OrderID = %q, want INR999999", re.OrderID)
	}
}

func TestResolve_ProductCodeMissing(t *testing.T) {
	plan, catalog := loadFixtures(t)

	// INR000060's product P-99 has no technology steps.
	_, err := plan.Resolve("INR000060", catalog)
	if !IsProductCodeMissing(err) {
		t.Fatalf("err = %v, want PRODUCT_CODE_MISSING", err)
	}
	re := err.(*ResolveError)
	if re.ProductCode != "P-99" {
		t.Errorf("error ProductCode = %q, want P-99", re.ProductCode)
	}
}

func TestParsePlan_DuplicateOrderID(t *testing.T) {
	dir := t.TempDir()
	csv := "Comanda Interna,Reper,Cantitate\nINR000055,P-17,5\ninr000055,P-18,6\n"
	path := filepath.Join(dir, "planning.csv")
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	tbl, err := table.Load(path, table.Options{Kind: table.KindPlanning, Required: planColumns.Required()})
	if err != nil {
		t.Fatalf("load planning: %v", err)
	}
	_, err = ParsePlan(tbl, planColumns)
	if !table.IsFormat(err) {
		t.Errorf("err = %v, want SOURCE_FORMAT for duplicate order id", err)
	}
}
