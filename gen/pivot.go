package gen

import (
	_ "embed"
	"strings"

	"github.com/schemly/schemly/schema"
	"github.com/schemly/schemly/template"
)

//go:embed templates/pivot_table.php.tmpl
var pivotTemplate string

// PivotGenerator emits a many-to-many junction-table migration. A pivot
// table is not a ModelDefinition, so it has its own entry points:
// GeneratePivot and PivotFilePath. Calling the generic model entry
// point is a defined wrong-artifact error, not a panic.
type PivotGenerator struct{}

// Generate implements Generator by rejecting the input: pivot tables
// are generated through GeneratePivot.
func (PivotGenerator) Generate(m *schema.ModelDefinition, cfg *Config) (string, error) {
	return "", NewWrongArtifactError("pivot table", "pivot generator cannot generate model artifacts; use GeneratePivot")
}

// FilePath implements Generator for interface completeness; the
// returned path uses the model's table like a regular migration.
func (PivotGenerator) FilePath(m *schema.ModelDefinition, cfg *Config) string {
	return MigrationPath(m.Table, cfg)
}

// GeneratePivot renders the junction-table migration for p. The table
// name and any additional fields are validated first.
func (PivotGenerator) GeneratePivot(p *schema.PivotTable, cfg *Config) (string, error) {
	if err := schema.ValidateTableName(p.Name); err != nil {
		return "", err
	}
	var additional strings.Builder
	for i := range p.AdditionalFields {
		if err := schema.ValidateField(&p.AdditionalFields[i]); err != nil {
			return "", err
		}
		additional.WriteString("            " + columnStatement(&p.AdditionalFields[i]) + "\n")
	}

	timestamps := ""
	if p.Timestamps {
		timestamps = "            $table->timestamps();\n"
	}

	ctx := template.NewContext().
		Set("table_name", p.Name).
		Set("foreign_key1", p.ForeignKey1).
		Set("foreign_key2", p.ForeignKey2).
		Set("table1", referencedTable(p.Model1)).
		Set("table2", referencedTable(p.Model2)).
		Set("additional_fields", additional.String()).
		Set("timestamps", timestamps)

	return template.Render(pivotTemplate, ctx)
}

// PivotFilePath resolves the timestamped migration path for p.
func (PivotGenerator) PivotFilePath(p *schema.PivotTable, cfg *Config) string {
	return MigrationPath(p.Name, cfg)
}
