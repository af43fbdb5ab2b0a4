// Package load reads a YAML schema document and maps it onto the typed
// schema model and generation config. The document uses camelCase keys
// throughout; flat relationship records are lifted into the typed
// relationship union with per-kind shape checks.
package load

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/schemly/schemly/gen"
	"github.com/schemly/schemly/schema"
)

// document is the raw YAML shape before mapping.
type document struct {
	Models []rawModel `yaml:"models"`

	OutputDir      string `yaml:"outputDir"`
	Namespace      string `yaml:"namespace"`
	UseDDD         bool   `yaml:"useDDD"`
	DatabaseEngine string `yaml:"databaseEngine"`
	ForceOverwrite bool   `yaml:"forceOverwrite"`

	// Per-kind enable flags default to true when omitted.
	GenerateModels      *bool `yaml:"generateModels"`
	GenerateMigrations  *bool `yaml:"generateMigrations"`
	GenerateControllers *bool `yaml:"generateControllers"`
	GenerateResources   *bool `yaml:"generateResources"`
	GenerateFactories   *bool `yaml:"generateFactories"`
	GenerateDTOs        *bool `yaml:"generateDtos"`
	GeneratePivotTables *bool `yaml:"generatePivotTables"`
}

type rawModel struct {
	Name            string            `yaml:"name"`
	Table           string            `yaml:"table"`
	Fields          []rawField        `yaml:"fields"`
	Timestamps      bool              `yaml:"timestamps"`
	SoftDeletes     bool              `yaml:"softDeletes"`
	Relationships   []rawRelationship `yaml:"relationships"`
	PivotTables     []rawPivotTable   `yaml:"pivotTables"`
	ValidationRules []rawRule         `yaml:"validationRules"`
	Traits          []string          `yaml:"traits"`
	Fillable        []string          `yaml:"fillable"`
	Guarded         []string          `yaml:"guarded"`
}

type rawField struct {
	Name             string        `yaml:"name"`
	Type             string        `yaml:"type"`
	Nullable         bool          `yaml:"nullable"`
	Unique           bool          `yaml:"unique"`
	Default          *string       `yaml:"default"`
	Length           *int          `yaml:"length"`
	Index            bool          `yaml:"index"`
	EnumValues       []rawEnum     `yaml:"enumValues"`
	DecimalPrecision *rawPrecision `yaml:"decimalPrecision"`
	Unsigned         bool          `yaml:"unsigned"`
	AutoIncrement    bool          `yaml:"autoIncrement"`
	Primary          bool          `yaml:"primary"`
	Comment          *string       `yaml:"comment"`
	ValidationRules  []rawRule     `yaml:"validationRules"`
	Cast             *string       `yaml:"cast"`
}

type rawEnum struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type rawPrecision struct {
	Precision uint8 `yaml:"precision"`
	Scale     uint8 `yaml:"scale"`
}

type rawRule struct {
	Rule       string   `yaml:"rule"`
	Parameters []string `yaml:"parameters"`
}

type rawRelationship struct {
	Type           string `yaml:"type"`
	Model          string `yaml:"model"`
	ForeignKey     string `yaml:"foreignKey"`
	LocalKey       string `yaml:"localKey"`
	PivotTable     string `yaml:"pivotTable"`
	MorphName      string `yaml:"morphName"`
	OnDelete       string `yaml:"onDelete"`
	OnUpdate       string `yaml:"onUpdate"`
	WithTimestamps bool   `yaml:"withTimestamps"`
}

type rawPivotTable struct {
	Name             string     `yaml:"name"`
	Model1           string     `yaml:"model1"`
	Model2           string     `yaml:"model2"`
	ForeignKey1      string     `yaml:"foreignKey1"`
	ForeignKey2      string     `yaml:"foreignKey2"`
	AdditionalFields []rawField `yaml:"additionalFields"`
	Timestamps       bool       `yaml:"timestamps"`
}

// File loads a schema document from disk.
func File(path string) (*gen.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schemly: read schema document: %w", err)
	}
	return Parse(data)
}

// Parse decodes a schema document and builds the generation config.
func Parse(data []byte) (*gen.Config, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schemly: decode schema document: %w", err)
	}
	return doc.build()
}

func (d *document) build() (*gen.Config, error) {
	cfg := gen.DefaultConfig()
	if d.OutputDir != "" {
		cfg.OutputDir = d.OutputDir
	}
	if d.Namespace != "" {
		cfg.Namespace = d.Namespace
	}
	if d.DatabaseEngine != "" {
		cfg.DatabaseEngine = d.DatabaseEngine
	}
	cfg.UseDDD = d.UseDDD
	cfg.ForceOverwrite = d.ForceOverwrite
	cfg.Generate = gen.GenerateSet{
		Models:      enabled(d.GenerateModels),
		Migrations:  enabled(d.GenerateMigrations),
		Controllers: enabled(d.GenerateControllers),
		Resources:   enabled(d.GenerateResources),
		Factories:   enabled(d.GenerateFactories),
		DTOs:        enabled(d.GenerateDTOs),
		PivotTables: enabled(d.GeneratePivotTables),
	}

	for i := range d.Models {
		m, err := d.Models[i].build()
		if err != nil {
			return nil, err
		}
		cfg.Models = append(cfg.Models, m)
	}
	return cfg, nil
}

func enabled(flag *bool) bool {
	return flag == nil || *flag
}

func (r *rawModel) build() (*schema.ModelDefinition, error) {
	m := &schema.ModelDefinition{
		Name:        r.Name,
		Table:       r.Table,
		Timestamps:  r.Timestamps,
		SoftDeletes: r.SoftDeletes,
		Traits:      r.Traits,
	}

	access, err := buildAccess(r)
	if err != nil {
		return nil, err
	}
	m.Access = access

	for i := range r.Fields {
		f, err := r.Fields[i].build()
		if err != nil {
			return nil, fmt.Errorf("model %q: %w", r.Name, err)
		}
		m.Fields = append(m.Fields, f)
	}

	for i := range r.Relationships {
		rel, err := r.Relationships[i].build()
		if err != nil {
			return nil, fmt.Errorf("model %q: %w", r.Name, err)
		}
		m.Relationships = append(m.Relationships, rel)
	}

	for i := range r.PivotTables {
		p, err := r.PivotTables[i].build()
		if err != nil {
			return nil, fmt.Errorf("model %q: %w", r.Name, err)
		}
		m.PivotTables = append(m.PivotTables, p)
	}

	for _, rule := range r.ValidationRules {
		m.ValidationRules = append(m.ValidationRules, schema.ValidationRule{
			Rule:       rule.Rule,
			Parameters: rule.Parameters,
		})
	}
	return m, nil
}

// buildAccess maps the fillable/guarded keys onto the three-mode access
// policy. Declaring both lists is ambiguous and rejected.
func buildAccess(r *rawModel) (schema.Access, error) {
	switch {
	case len(r.Fillable) > 0 && len(r.Guarded) > 0:
		return schema.Access{}, NewDocumentError(r.Name, "cannot declare both fillable and guarded")
	case len(r.Fillable) > 0:
		return schema.Access{Mode: schema.AccessFillable, Fields: r.Fillable}, nil
	case len(r.Guarded) > 0:
		return schema.Access{Mode: schema.AccessGuarded, Fields: r.Guarded}, nil
	default:
		return schema.Access{Mode: schema.AccessAll}, nil
	}
}

func (r *rawField) build() (schema.Field, error) {
	ft, err := schema.ParseFieldType(r.Type)
	if err != nil {
		return schema.Field{}, fmt.Errorf("field %q: %w", r.Name, err)
	}

	f := schema.Field{
		Name:          r.Name,
		Type:          ft,
		Nullable:      r.Nullable,
		Unique:        r.Unique,
		Default:       r.Default,
		Length:        r.Length,
		Index:         r.Index,
		Unsigned:      r.Unsigned,
		AutoIncrement: r.AutoIncrement,
		Primary:       r.Primary,
		Comment:       r.Comment,
		Cast:          r.Cast,
	}
	for _, v := range r.EnumValues {
		f.EnumValues = append(f.EnumValues, schema.EnumValue{Value: v.Value, Label: v.Label})
	}
	if r.DecimalPrecision != nil {
		f.DecimalPrecision = &schema.DecimalPrecision{
			Precision: r.DecimalPrecision.Precision,
			Scale:     r.DecimalPrecision.Scale,
		}
	}
	for _, rule := range r.ValidationRules {
		f.ValidationRules = append(f.ValidationRules, schema.ValidationRule{
			Rule:       rule.Rule,
			Parameters: rule.Parameters,
		})
	}
	return f, nil
}

// build lifts a flat relationship record into the typed union, checking
// the per-kind payload shape.
func (r *rawRelationship) build() (schema.Relationship, error) {
	kind, err := schema.ParseRelationshipKind(r.Type)
	if err != nil {
		return nil, err
	}

	switch kind {
	case schema.KindMorphTo:
		if r.Model != "" {
			return nil, NewDocumentError(r.Type, "morphTo does not take a target model")
		}
		return schema.MorphTo(r.MorphName), nil

	case schema.KindMorphOne, schema.KindMorphMany, schema.KindMorphToMany:
		if r.Model == "" {
			return nil, NewDocumentError(r.Type, "polymorphic relationship requires a target model")
		}
		if r.MorphName == "" {
			return nil, NewDocumentError(r.Type, "polymorphic relationship requires a morphName")
		}
		var rel *schema.PolymorphicRel
		switch kind {
		case schema.KindMorphOne:
			rel = schema.MorphOne(r.Model, r.MorphName)
		case schema.KindMorphMany:
			rel = schema.MorphMany(r.Model, r.MorphName)
		default:
			rel = schema.MorphToMany(r.Model, r.MorphName)
		}
		rel.PivotTable = r.PivotTable
		return rel, nil

	default:
		if r.Model == "" {
			return nil, NewDocumentError(r.Type, "relationship requires a target model")
		}
		var rel *schema.StandardRel
		switch kind {
		case schema.KindBelongsTo:
			rel = schema.BelongsTo(r.Model)
		case schema.KindHasOne:
			rel = schema.HasOne(r.Model)
		case schema.KindHasMany:
			rel = schema.HasMany(r.Model)
		default:
			rel = schema.BelongsToMany(r.Model)
		}
		rel.ForeignKey = r.ForeignKey
		rel.LocalKey = r.LocalKey
		rel.PivotTable = r.PivotTable
		rel.OnDelete = r.OnDelete
		rel.OnUpdate = r.OnUpdate
		rel.WithTimestamps = r.WithTimestamps
		return rel, nil
	}
}

func (r *rawPivotTable) build() (schema.PivotTable, error) {
	p := schema.PivotTable{
		Name:        r.Name,
		Model1:      r.Model1,
		Model2:      r.Model2,
		ForeignKey1: r.ForeignKey1,
		ForeignKey2: r.ForeignKey2,
		Timestamps:  r.Timestamps,
	}
	for i := range r.AdditionalFields {
		f, err := r.AdditionalFields[i].build()
		if err != nil {
			return schema.PivotTable{}, fmt.Errorf("pivot table %q: %w", r.Name, err)
		}
		p.AdditionalFields = append(p.AdditionalFields, f)
	}
	return p, nil
}
