package gen

import (
	"fmt"
	"strings"

	"github.com/schemly/schemly/schema"
)

// ResourceGenerator emits an API resource whose toArray exposes the id,
// every declared field and the conditional timestamp columns.
type ResourceGenerator struct{}

// Generate implements Generator.
func (ResourceGenerator) Generate(m *schema.ModelDefinition, cfg *Config) (string, error) {
	if err := schema.ValidateModel(m); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("<?php\n\n")
	fmt.Fprintf(&b, "namespace %s;\n\n", NamespaceFor(KindResource, m, cfg))
	b.WriteString("use Illuminate\\Http\\Request;\n")
	b.WriteString("use Illuminate\\Http\\Resources\\Json\\JsonResource;\n\n")

	fmt.Fprintf(&b, "class %sResource extends JsonResource\n{\n", m.Name)
	b.WriteString("    public function toArray(Request $request): array\n    {\n")
	b.WriteString("        return [\n")
	b.WriteString("            'id' => $this->id,\n")
	for i := range m.Fields {
		f := &m.Fields[i]
		if f.Name == "id" {
			continue
		}
		fmt.Fprintf(&b, "            '%s' => $this->%s,\n", f.Name, f.Name)
	}
	if m.Timestamps {
		b.WriteString("            'created_at' => $this->created_at,\n")
		b.WriteString("            'updated_at' => $this->updated_at,\n")
	}
	if m.SoftDeletes {
		b.WriteString("            'deleted_at' => $this->deleted_at,\n")
	}
	b.WriteString("        ];\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")

	return b.String(), nil
}

// FilePath implements Generator.
func (ResourceGenerator) FilePath(m *schema.ModelDefinition, cfg *Config) string {
	return PathFor(KindResource, m, cfg)
}
