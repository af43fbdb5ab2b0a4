package schema

// EnumValue is one allowed value of an enum field, with an optional
// human-readable label.
type EnumValue struct {
	Value string
	Label string
}

// DecimalPrecision carries the precision/scale pair of a decimal field.
// Scale must not exceed Precision and Precision must be at least 1.
type DecimalPrecision struct {
	Precision uint8
	Scale     uint8
}

// ValidationRule is a named framework validation rule with optional
// parameters, attached to a field or a model.
type ValidationRule struct {
	Rule       string
	Parameters []string
}

// Field describes one declared column of a model. The `id` column is
// never declared; generators synthesize it.
type Field struct {
	Name             string
	Type             FieldType
	Nullable         bool
	Unique           bool
	Default          *string
	Length           *int
	Index            bool
	EnumValues       []EnumValue
	DecimalPrecision *DecimalPrecision
	Unsigned         bool
	AutoIncrement    bool
	Primary          bool
	Comment          *string
	ValidationRules  []ValidationRule
	Cast             *string // overrides the type's default cast tag
}

// CastTag returns the Eloquent cast tag for the field, honoring an
// explicit override before falling back to the type mapping.
func (f *Field) CastTag() (string, bool) {
	if f.Cast != nil && *f.Cast != "" {
		return *f.Cast, true
	}
	return f.Type.Cast()
}
