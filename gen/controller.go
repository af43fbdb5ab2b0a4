package gen

import (
	"fmt"
	"strings"

	"github.com/schemly/schemly/schema"
)

// ControllerGenerator emits a resource controller with the five
// conventional operations: index, show, store, update, destroy.
// store and update validate every non-id field as "nullable" or
// "required" depending on the field's nullability, and responses are
// wrapped in the API resource when resource generation is enabled.
type ControllerGenerator struct{}

// Generate implements Generator.
func (g ControllerGenerator) Generate(m *schema.ModelDefinition, cfg *Config) (string, error) {
	if err := schema.ValidateModel(m); err != nil {
		return "", err
	}

	name := m.Name
	variable := strings.ToLower(name)
	withResource := cfg.Generate.Resources

	var b strings.Builder
	b.WriteString("<?php\n\n")
	fmt.Fprintf(&b, "namespace %s;\n\n", NamespaceFor(KindController, m, cfg))
	b.WriteString("use Illuminate\\Http\\Request;\n")
	fmt.Fprintf(&b, "use %s\\%s;\n", NamespaceFor(KindModel, m, cfg), name)
	if withResource {
		fmt.Fprintf(&b, "use %s\\%sResource;\n", NamespaceFor(KindResource, m, cfg), name)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "class %sController extends Controller\n{\n", name)

	b.WriteString("    public function index()\n    {\n")
	if withResource {
		fmt.Fprintf(&b, "        return %sResource::collection(%s::all());\n", name, name)
	} else {
		fmt.Fprintf(&b, "        return %s::all();\n", name)
	}
	b.WriteString("    }\n\n")

	fmt.Fprintf(&b, "    public function show(%s $%s)\n    {\n", name, variable)
	b.WriteString(g.respond(m, cfg, "        "))
	b.WriteString("    }\n\n")

	b.WriteString("    public function store(Request $request)\n    {\n")
	g.writeValidationRules(&b, m)
	fmt.Fprintf(&b, "        $%s = %s::create($validated);\n\n", variable, name)
	b.WriteString(g.respond(m, cfg, "        "))
	b.WriteString("    }\n\n")

	fmt.Fprintf(&b, "    public function update(Request $request, %s $%s)\n    {\n", name, variable)
	g.writeValidationRules(&b, m)
	fmt.Fprintf(&b, "        $%s->update($validated);\n\n", variable)
	b.WriteString(g.respond(m, cfg, "        "))
	b.WriteString("    }\n\n")

	fmt.Fprintf(&b, "    public function destroy(%s $%s)\n    {\n", name, variable)
	fmt.Fprintf(&b, "        $%s->delete();\n", variable)
	b.WriteString("        return response()->json(null, 204);\n")
	b.WriteString("    }\n")

	b.WriteString("}\n")
	return b.String(), nil
}

// FilePath implements Generator.
func (ControllerGenerator) FilePath(m *schema.ModelDefinition, cfg *Config) string {
	return PathFor(KindController, m, cfg)
}

// writeValidationRules emits the $request->validate() map: one rule per
// non-id field, nullable fields marked "nullable", the rest "required".
func (ControllerGenerator) writeValidationRules(b *strings.Builder, m *schema.ModelDefinition) {
	b.WriteString("        $validated = $request->validate([\n")
	for i := range m.Fields {
		f := &m.Fields[i]
		if f.Name == "id" {
			continue
		}
		rule := "required"
		if f.Nullable {
			rule = "nullable"
		}
		fmt.Fprintf(b, "            '%s' => '%s',\n", f.Name, rule)
	}
	b.WriteString("        ]);\n\n")
}

func (ControllerGenerator) respond(m *schema.ModelDefinition, cfg *Config, indent string) string {
	variable := strings.ToLower(m.Name)
	if cfg.Generate.Resources {
		return fmt.Sprintf("%sreturn new %sResource($%s);\n", indent, m.Name, variable)
	}
	return fmt.Sprintf("%sreturn $%s;\n", indent, variable)
}
