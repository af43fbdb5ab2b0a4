package gen

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/schemly/schemly/schema"
	"github.com/schemly/schemly/template"
)

//go:embed templates/dto.php.tmpl
var dtoTemplate string

// dtoRequiredVars is pre-checked before rendering so a template edit
// that drops a placeholder fails loudly instead of silently.
var dtoRequiredVars = []string{
	"namespace",
	"dto_name",
	"constructor_fields",
	"from_array_fields",
	"to_array_fields",
}

// DTOGenerator emits a data-transfer object: constructor-promoted
// properties for id, every declared field and the conditional timestamp
// columns, plus fromArray/toArray mapping methods.
type DTOGenerator struct{}

// Generate implements Generator.
func (g DTOGenerator) Generate(m *schema.ModelDefinition, cfg *Config) (string, error) {
	if err := schema.ValidateModel(m); err != nil {
		return "", err
	}

	ctx := template.NewContext().
		Set("namespace", fmt.Sprintf("namespace %s;", NamespaceFor(KindDTO, m, cfg))).
		Set("dto_name", m.Name).
		Set("constructor_fields", g.constructorFields(m)).
		Set("from_array_fields", g.fromArrayFields(m)).
		Set("to_array_fields", g.toArrayFields(m))

	return template.RenderRequired(dtoTemplate, ctx, dtoRequiredVars)
}

// FilePath implements Generator.
func (DTOGenerator) FilePath(m *schema.ModelDefinition, cfg *Config) string {
	return PathFor(KindDTO, m, cfg)
}

// dtoColumns lists the DTO's columns in declaration order: id, declared
// fields, then the conditional timestamp and soft-delete markers.
func dtoColumns(m *schema.ModelDefinition) []schema.Field {
	cols := []schema.Field{{Name: "id", Type: schema.TypeInteger}}
	cols = append(cols, m.Fields...)
	if m.Timestamps {
		cols = append(cols,
			schema.Field{Name: "created_at", Type: schema.TypeString, Nullable: true},
			schema.Field{Name: "updated_at", Type: schema.TypeString, Nullable: true},
		)
	}
	if m.SoftDeletes {
		cols = append(cols, schema.Field{Name: "deleted_at", Type: schema.TypeString, Nullable: true})
	}
	return cols
}

func (DTOGenerator) constructorFields(m *schema.ModelDefinition) string {
	var params []string
	for _, f := range dtoColumns(m) {
		prefix := ""
		if f.Nullable && f.Name != "id" {
			prefix = "?"
		}
		params = append(params, fmt.Sprintf("public %s%s $%s", prefix, f.Type.PHPType(), f.Name))
	}
	return strings.Join(params, ",\n        ")
}

func (DTOGenerator) fromArrayFields(m *schema.ModelDefinition) string {
	var args []string
	for _, f := range dtoColumns(m) {
		args = append(args, fmt.Sprintf("$data['%s']", f.Name))
	}
	return strings.Join(args, ",\n                ")
}

func (DTOGenerator) toArrayFields(m *schema.ModelDefinition) string {
	var entries []string
	for _, f := range dtoColumns(m) {
		entries = append(entries, fmt.Sprintf("'%s' => $this->%s", f.Name, f.Name))
	}
	return strings.Join(entries, ",\n            ")
}
