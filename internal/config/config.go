package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/pvflorin/RC-Generator/internal/order"
	"github.com/pvflorin/RC-Generator/internal/render"
	"github.com/pvflorin/RC-Generator/internal/tech"
)

//go:embed schema.cue
var schemaCUE string

// Config is the full generator configuration.
type Config struct {
	Sources SourcesConfig `yaml:"sources"`
	Output  OutputConfig  `yaml:"output"`
	Mail    MailConfig    `yaml:"mail"`
	History HistoryConfig `yaml:"history"`
	Company CompanyConfig `yaml:"company"`
}

// SourcesConfig names the two input tables.
type SourcesConfig struct {
	Planning   PlanningSource   `yaml:"planning"`
	Technology TechnologySource `yaml:"technology"`
}

// PlanningSource locates the planning table and maps its headers.
type PlanningSource struct {
	Path    string          `yaml:"path"`
	Sheet   string          `yaml:"sheet"`
	Columns PlanningColumns `yaml:"columns"`
}

// PlanningColumns are the planning table's header names as they appear
// in the file. Matching downstream is diacritic- and case-insensitive.
type PlanningColumns struct {
	OrderID     string `yaml:"order_id"`
	ProductCode string `yaml:"product_code"`
	Quantity    string `yaml:"quantity"`
	Description string `yaml:"description"`
	DueDate     string `yaml:"due_date"`
	Customer    string `yaml:"customer"`
	ClientOrder string `yaml:"client_order"`
	ClientRef   string `yaml:"client_ref"`
	Position    string `yaml:"position"`
	Material    string `yaml:"material"`
	DrawingRev  string `yaml:"drawing_rev"`
}

// TechnologySource locates the technology table and maps its headers.
type TechnologySource struct {
	Path    string            `yaml:"path"`
	Sheet   string            `yaml:"sheet"`
	Columns TechnologyColumns `yaml:"columns"`
}

// TechnologyColumns are the technology table's header names.
type TechnologyColumns struct {
	ProductCode string `yaml:"product_code"`
	Seq         string `yaml:"seq"`
	Operation   string `yaml:"operation"`
	Workstation string `yaml:"workstation"`
	Duration    string `yaml:"duration"`
}

// OutputConfig controls where documents land.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// MailConfig controls email drafting.
type MailConfig struct {
	DraftDir string   `yaml:"draft_dir"`
	Subject  string   `yaml:"subject"`
	From     string   `yaml:"from"`
	To       []string `yaml:"to"`
}

// HistoryConfig controls the run log. An empty path disables history.
type HistoryConfig struct {
	Path string `yaml:"path"`
}

// CompanyConfig is the manufacturer identity printed on documents.
type CompanyConfig struct {
	Name       string `yaml:"name"`
	Address    string `yaml:"address"`
	TaxID      string `yaml:"tax_id"`
	RegistryNo string `yaml:"registry_no"`
	Signer     string `yaml:"signer"`
}

// Default returns the full default configuration. Source paths are
// intentionally empty; they have no sensible default and Validate
// rejects a config that leaves them unset.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	outputDir := filepath.Join(home, "Documents", "RC Generator")

	return &Config{
		Sources: SourcesConfig{
			Planning: PlanningSource{
				Columns: PlanningColumns{
					OrderID:     "Comanda Interna",
					ProductCode: "Reper",
					Quantity:    "Cantitate",
					Description: "Denumire",
					DueDate:     "Termen",
					Customer:    "Client",
					ClientOrder: "Comanda",
					ClientRef:   "Fisa Interna",
					Position:    "Pozitie",
					Material:    "Material",
					DrawingRev:  "Revizie",
				},
			},
			Technology: TechnologySource{
				Columns: TechnologyColumns{
					ProductCode: "Reper",
					Seq:         "Nr. Op.",
					Operation:   "Operatie",
					Workstation: "Utilaj/Locatie",
					Duration:    "Timp (min)",
				},
			},
		},
		Output: OutputConfig{Dir: outputDir},
		Mail: MailConfig{
			DraftDir: filepath.Join(outputDir, "Drafts"),
			Subject:  "Documente comenzi",
		},
		History: HistoryConfig{Path: filepath.Join(outputDir, "runlog.db")},
		Company: CompanyConfig{
			Name:   "S.C. INRED GROUP SRL",
			Signer: "General Manager",
		},
	}
}

// Load reads the YAML file at path on top of the defaults and
// validates the result. An empty path returns validated defaults,
// which fail because the source paths are unset.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate unifies the configuration with the embedded CUE schema.
func (c *Config) Validate() error {
	// Round-trip through YAML so the CUE value carries the file's key
	// names, not Go field names.
	raw, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}
	unified := schema.Unify(ctx.Encode(data))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// OrderColumns converts the planning column map for the resolver.
func (c *Config) OrderColumns() order.Columns {
	p := c.Sources.Planning.Columns
	return order.Columns{
		OrderID:     p.OrderID,
		ProductCode: p.ProductCode,
		Quantity:    p.Quantity,
		Description: p.Description,
		DueDate:     p.DueDate,
		Customer:    p.Customer,
		ClientOrder: p.ClientOrder,
		ClientRef:   p.ClientRef,
		Position:    p.Position,
		Material:    p.Material,
		DrawingRev:  p.DrawingRev,
	}
}

// TechColumns converts the technology column map for the sequencer.
func (c *Config) TechColumns() tech.Columns {
	t := c.Sources.Technology.Columns
	return tech.Columns{
		ProductCode: t.ProductCode,
		Seq:         t.Seq,
		Operation:   t.Operation,
		Workstation: t.Workstation,
		Duration:    t.Duration,
	}
}

// RenderCompany converts the company block for the renderer.
func (c *Config) RenderCompany() render.Company {
	return render.Company{
		Name:       c.Company.Name,
		Address:    c.Company.Address,
		TaxID:      c.Company.TaxID,
		RegistryNo: c.Company.RegistryNo,
		Signer:     c.Company.Signer,
	}
}
