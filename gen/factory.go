package gen

import (
	"fmt"
	"strings"

	"github.com/schemly/schemly/schema"
)

// FactoryGenerator emits a model factory whose definition() synthesizes
// a fake value per field. Field names are matched against substring
// heuristics first so that an "email" column gets an email and not a
// random word; the field type only decides the generator when no name
// heuristic applies.
type FactoryGenerator struct{}

// Generate implements Generator.
func (g FactoryGenerator) Generate(m *schema.ModelDefinition, cfg *Config) (string, error) {
	if err := schema.ValidateModel(m); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("<?php\n\n")
	fmt.Fprintf(&b, "namespace %s;\n\n", NamespaceFor(KindFactory, m, cfg))
	b.WriteString("use Illuminate\\Database\\Eloquent\\Factories\\Factory;\n")
	fmt.Fprintf(&b, "use %s\\%s;\n\n", NamespaceFor(KindModel, m, cfg), m.Name)

	fmt.Fprintf(&b, "class %sFactory extends Factory\n{\n", m.Name)
	fmt.Fprintf(&b, "    protected $model = %s::class;\n\n", m.Name)

	b.WriteString("    public function definition(): array\n    {\n")
	b.WriteString("        return [\n")
	for i := range m.Fields {
		f := &m.Fields[i]
		if f.Name == "id" {
			continue
		}
		fmt.Fprintf(&b, "            '%s' => %s,\n", f.Name, fakerFor(f))
	}
	b.WriteString("        ];\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")

	return b.String(), nil
}

// FilePath implements Generator.
func (FactoryGenerator) FilePath(m *schema.ModelDefinition, cfg *Config) string {
	return PathFor(KindFactory, m, cfg)
}

// nameHeuristics pairs field-name substrings with semantically fitting
// fake-value generators. Order matters: the first match wins.
var nameHeuristics = []struct {
	substr string
	faker  string
}{
	{"email", "fake()->email()"},
	{"name", "fake()->name()"},
	{"title", "fake()->sentence(3)"},
	{"description", "fake()->paragraph()"},
	{"content", "fake()->paragraph()"},
	{"phone", "fake()->phoneNumber()"},
	{"address", "fake()->address()"},
	{"city", "fake()->city()"},
	{"country", "fake()->country()"},
	{"url", "fake()->url()"},
	{"website", "fake()->url()"},
	{"password", "fake()->password()"},
}

// fakerFor picks the fake-value expression for a field: name heuristics
// first, then a type-based fallback covering every field type.
func fakerFor(f *schema.Field) string {
	for _, h := range nameHeuristics {
		if strings.Contains(f.Name, h.substr) {
			return h.faker
		}
	}
	switch f.Type {
	case schema.TypeString:
		return "fake()->word()"
	case schema.TypeText:
		return "fake()->text()"
	case schema.TypeMediumText:
		return "fake()->text(500)"
	case schema.TypeLongText:
		return "fake()->text(2000)"
	case schema.TypeInteger, schema.TypeBigInteger:
		return "fake()->numberBetween(1, 100)"
	case schema.TypeTinyInteger:
		return "fake()->numberBetween(0, 255)"
	case schema.TypeSmallInteger:
		return "fake()->numberBetween(-32768, 32767)"
	case schema.TypeMediumInteger:
		return "fake()->numberBetween(-8388608, 8388607)"
	case schema.TypeFloat, schema.TypeDecimal:
		return "fake()->randomFloat(2, 0, 1000)"
	case schema.TypeBoolean:
		return "fake()->boolean()"
	case schema.TypeDate:
		return "fake()->date()"
	case schema.TypeDateTime, schema.TypeTimestamp:
		return "fake()->dateTime()"
	case schema.TypeJSON:
		return "fake()->words(3)"
	case schema.TypeUUID:
		return "fake()->uuid()"
	case schema.TypeEnum:
		if len(f.EnumValues) > 0 {
			values := make([]string, len(f.EnumValues))
			for i, v := range f.EnumValues {
				values[i] = "'" + v.Value + "'"
			}
			return fmt.Sprintf("fake()->randomElement([%s])", strings.Join(values, ", "))
		}
		return "fake()->randomElement(['option1', 'option2', 'option3'])"
	case schema.TypeBinary:
		return "fake()->sha256()"
	case schema.TypeInet:
		return "fake()->ipv4()"
	default:
		return "fake()->word()"
	}
}
