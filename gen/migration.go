package gen

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/schemly/schemly/schema"
	"github.com/schemly/schemly/template"
)

//go:embed templates/migration.php.tmpl
var migrationTemplate string

// MigrationGenerator emits a create-table migration: one column
// statement per field, the synthesized id unless a declared field is
// primary, timestamp/soft-delete columns and one foreign-key constraint
// block per belongsTo relationship that declares a foreign key.
type MigrationGenerator struct{}

// Generate implements Generator.
func (g MigrationGenerator) Generate(m *schema.ModelDefinition, cfg *Config) (string, error) {
	if err := schema.ValidateModel(m); err != nil {
		return "", err
	}

	idField := "            $table->id();\n"
	if m.HasCustomPrimary() {
		idField = ""
	}

	var fields strings.Builder
	for i := range m.Fields {
		fields.WriteString("            " + columnStatement(&m.Fields[i]) + "\n")
	}

	timestamps := ""
	if m.Timestamps {
		timestamps = "            $table->timestamps();\n"
	}
	softDeletes := ""
	if m.SoftDeletes {
		softDeletes = "            $table->softDeletes();\n"
	}

	ctx := template.NewContext().
		Set("table_name", m.Table).
		Set("id_field", idField).
		Set("fields", fields.String()).
		Set("timestamps", timestamps).
		Set("soft_deletes", softDeletes).
		Set("foreign_keys", g.foreignKeys(m))

	return template.Render(migrationTemplate, ctx)
}

// FilePath implements Generator. The filename carries a timestamp from
// the configured clock.
func (MigrationGenerator) FilePath(m *schema.ModelDefinition, cfg *Config) string {
	return MigrationPath(m.Table, cfg)
}

// foreignKeys builds one Schema::table block per belongsTo relationship
// with an explicit foreign key. Referential actions default to restrict.
func (MigrationGenerator) foreignKeys(m *schema.ModelDefinition) string {
	var b strings.Builder
	for _, rel := range m.Relationships {
		r, ok := rel.(*schema.StandardRel)
		if !ok || r.Kind() != schema.KindBelongsTo || r.ForeignKey == "" {
			continue
		}
		onDelete := r.OnDelete
		if onDelete == "" {
			onDelete = "restrict"
		}
		onUpdate := r.OnUpdate
		if onUpdate == "" {
			onUpdate = "restrict"
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "        Schema::table('%s', function (Blueprint $table) {\n", m.Table)
		fmt.Fprintf(&b, "            $table->foreign('%s')->references('id')->on('%s')->onDelete('%s')->onUpdate('%s');\n",
			r.ForeignKey, referencedTable(r.Model), onDelete, onUpdate)
		b.WriteString("        });\n")
	}
	return b.String()
}

// columnStatement renders one schema-builder column. String columns
// honor an explicit length, decimals their precision/scale, enums their
// value list. Modifiers apply in a fixed order so output is stable.
func columnStatement(f *schema.Field) string {
	var b strings.Builder
	b.WriteString("$table->")
	switch {
	case f.Type == schema.TypeString && f.Length != nil:
		fmt.Fprintf(&b, "string('%s', %d)", f.Name, *f.Length)
	case f.Type == schema.TypeDecimal && f.DecimalPrecision != nil:
		fmt.Fprintf(&b, "decimal('%s', %d, %d)", f.Name, f.DecimalPrecision.Precision, f.DecimalPrecision.Scale)
	case f.Type == schema.TypeEnum:
		values := make([]string, len(f.EnumValues))
		for i, v := range f.EnumValues {
			values[i] = "'" + v.Value + "'"
		}
		fmt.Fprintf(&b, "enum('%s', [%s])", f.Name, strings.Join(values, ", "))
	default:
		fmt.Fprintf(&b, "%s('%s')", f.Type.MigrationMethod(), f.Name)
	}
	if f.Unsigned {
		b.WriteString("->unsigned()")
	}
	if f.Nullable {
		b.WriteString("->nullable()")
	}
	if f.Unique {
		b.WriteString("->unique()")
	}
	if f.Index {
		b.WriteString("->index()")
	}
	if f.AutoIncrement {
		b.WriteString("->autoIncrement()")
	}
	if f.Primary {
		b.WriteString("->primary()")
	}
	if f.Default != nil {
		fmt.Fprintf(&b, "->default('%s')", *f.Default)
	}
	if f.Comment != nil {
		fmt.Fprintf(&b, "->comment('%s')", *f.Comment)
	}
	b.WriteString(";")
	return b.String()
}
