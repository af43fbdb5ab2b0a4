package gen

import (
	"fmt"
	"strings"

	"github.com/schemly/schemly/schema"
)

// ModelGenerator emits an Eloquent model class: a @property doc block,
// framework imports, trait use-line, table binding, mass-assignment
// policy, attribute casts and one navigation method per relationship.
type ModelGenerator struct{}

// Generate implements Generator.
func (g ModelGenerator) Generate(m *schema.ModelDefinition, cfg *Config) (string, error) {
	if err := schema.ValidateModel(m); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("<?php\n\n")
	fmt.Fprintf(&b, "namespace %s;\n\n", NamespaceFor(KindModel, m, cfg))

	b.WriteString("use Illuminate\\Database\\Eloquent\\Model;\n")
	if m.SoftDeletes {
		b.WriteString("use Illuminate\\Database\\Eloquent\\SoftDeletes;\n")
	}
	if cfg.Generate.Factories {
		b.WriteString("use Illuminate\\Database\\Eloquent\\Factories\\HasFactory;\n")
	}
	b.WriteString("\n")

	b.WriteString(g.propertyBlock(m))
	fmt.Fprintf(&b, "class %s extends Model\n{\n", m.Name)

	if uses := g.traits(m, cfg); len(uses) > 0 {
		fmt.Fprintf(&b, "    use %s;\n\n", strings.Join(uses, ", "))
	}

	fmt.Fprintf(&b, "    protected $table = '%s';\n\n", m.Table)

	if !m.Timestamps {
		b.WriteString("    public $timestamps = false;\n\n")
	}

	g.writeAccessBlock(&b, m)

	if casts := g.casts(m); casts != "" {
		b.WriteString("    protected $casts = [\n")
		b.WriteString(casts)
		b.WriteString("    ];\n\n")
	}

	for _, rel := range m.Relationships {
		b.WriteString(g.relationshipMethod(rel))
	}

	b.WriteString("}\n")
	return b.String(), nil
}

// FilePath implements Generator.
func (ModelGenerator) FilePath(m *schema.ModelDefinition, cfg *Config) string {
	return PathFor(KindModel, m, cfg)
}

// propertyBlock builds the PHPDoc @property annotations covering the
// synthesized id, every declared field and the conditional timestamp
// columns.
func (ModelGenerator) propertyBlock(m *schema.ModelDefinition) string {
	var b strings.Builder
	b.WriteString("/**\n")
	if !m.HasCustomPrimary() {
		b.WriteString(" * @property int $id\n")
	}
	for i := range m.Fields {
		f := &m.Fields[i]
		phpType := f.Type.PHPType()
		if f.Nullable {
			phpType += "|null"
		}
		fmt.Fprintf(&b, " * @property %s $%s\n", phpType, f.Name)
	}
	if m.Timestamps {
		b.WriteString(" * @property string|null $created_at\n")
		b.WriteString(" * @property string|null $updated_at\n")
	}
	if m.SoftDeletes {
		b.WriteString(" * @property string|null $deleted_at\n")
	}
	b.WriteString(" */\n")
	return b.String()
}

func (ModelGenerator) traits(m *schema.ModelDefinition, cfg *Config) []string {
	var uses []string
	if cfg.Generate.Factories {
		uses = append(uses, "HasFactory")
	}
	if m.SoftDeletes {
		uses = append(uses, "SoftDeletes")
	}
	uses = append(uses, m.Traits...)
	return uses
}

// writeAccessBlock emits the mass-assignment policy: an explicit
// $guarded list for guarded mode, otherwise a $fillable list (explicit
// or every non-id field).
func (ModelGenerator) writeAccessBlock(b *strings.Builder, m *schema.ModelDefinition) {
	if m.Access.Mode == schema.AccessGuarded {
		if len(m.Access.Fields) == 0 {
			return
		}
		b.WriteString("    protected $guarded = [\n")
		b.WriteString("        " + quoteJoin(m.Access.Fields) + "\n")
		b.WriteString("    ];\n\n")
		return
	}
	fillable := m.FillableFields()
	if len(fillable) == 0 {
		return
	}
	b.WriteString("    protected $fillable = [\n")
	b.WriteString("        " + quoteJoin(fillable) + "\n")
	b.WriteString("    ];\n\n")
}

func (ModelGenerator) casts(m *schema.ModelDefinition) string {
	var b strings.Builder
	for i := range m.Fields {
		f := &m.Fields[i]
		if cast, ok := f.CastTag(); ok {
			fmt.Fprintf(&b, "        '%s' => '%s',\n", f.Name, cast)
		}
	}
	return b.String()
}

// relationshipMethod emits one navigation method. The argument shape
// depends on the relationship payload: standard kinds take the target
// class plus an optional foreign key (or pivot table for
// belongsToMany); morphTo takes nothing; the polymorphic kinds take the
// target class and morph discriminator, morphToMany optionally a pivot
// table.
func (ModelGenerator) relationshipMethod(rel schema.Relationship) string {
	name := rel.MethodName()
	var call string
	switch r := rel.(type) {
	case *schema.StandardRel:
		args := r.Model + "::class"
		if r.Kind() == schema.KindBelongsToMany {
			if r.PivotTable != "" {
				args += fmt.Sprintf(", '%s'", r.PivotTable)
			}
		} else if r.ForeignKey != "" {
			args += fmt.Sprintf(", '%s'", r.ForeignKey)
		}
		call = fmt.Sprintf("%s(%s)", r.Kind(), args)
	case *schema.MorphToRel:
		call = "morphTo()"
	case *schema.PolymorphicRel:
		args := fmt.Sprintf("%s::class, '%s'", r.Model, r.MorphName)
		if r.Kind() == schema.KindMorphToMany && r.PivotTable != "" {
			args += fmt.Sprintf(", '%s'", r.PivotTable)
		}
		call = fmt.Sprintf("%s(%s)", r.Kind(), args)
	}
	return fmt.Sprintf("    public function %s()\n    {\n        return $this->%s;\n    }\n\n", name, call)
}

// quoteJoin renders a field list as single-quoted PHP array entries.
func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return strings.Join(quoted, ",\n        ")
}
