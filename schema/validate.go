package schema

import (
	"fmt"
	"strings"
)

const (
	maxIdentifierLen = 64
	maxTableNameLen  = 128
)

// ValidateModel checks a complete model definition: its own names, the
// at-least-one-field-or-timestamps rule, every field, field-name
// uniqueness and the implicit-id rule. The first violation is returned.
func ValidateModel(m *ModelDefinition) error {
	if err := ValidateIdentifier(m.Name, "model name"); err != nil {
		return err
	}
	if err := ValidateTableName(m.Table); err != nil {
		return err
	}
	if len(m.Fields) == 0 && !m.Timestamps {
		return NewModelError(m.Name, "must declare at least one field or enable timestamps")
	}
	for i := range m.Fields {
		if err := ValidateField(&m.Fields[i]); err != nil {
			return err
		}
	}
	seen := make(map[string]struct{}, len(m.Fields))
	for i := range m.Fields {
		name := m.Fields[i].Name
		if _, dup := seen[name]; dup {
			return NewModelError(m.Name, fmt.Sprintf("duplicate field name %q", name))
		}
		seen[name] = struct{}{}
	}
	for i := range m.Fields {
		if m.Fields[i].Name == "id" {
			return NewModelError(m.Name, "must not declare an 'id' field; it is auto-generated")
		}
	}
	return nil
}

// ValidateField checks one field definition: its name, that its type
// is a member of the enumeration, and the type-specific constraints.
func ValidateField(f *Field) error {
	if err := ValidateIdentifier(f.Name, "field name"); err != nil {
		return err
	}
	if !f.Type.Valid() {
		return NewFieldError(f.Name, fmt.Sprintf("invalid field type %s", f.Type))
	}
	switch {
	case f.Type.IsStringFamily():
		if f.Length != nil && *f.Length < 1 {
			return NewFieldError(f.Name, "string field length must be at least 1")
		}
	case f.Type == TypeDecimal:
		if f.DecimalPrecision == nil {
			return NewFieldError(f.Name, "decimal field must declare precision and scale")
		}
		p := f.DecimalPrecision
		if p.Precision < 1 || p.Scale > p.Precision {
			return NewFieldError(f.Name,
				fmt.Sprintf("invalid decimal precision (precision=%d, scale=%d)", p.Precision, p.Scale))
		}
	case f.Type == TypeEnum:
		if len(f.EnumValues) == 0 {
			return NewFieldError(f.Name, "enum field must declare at least one value")
		}
		for _, v := range f.EnumValues {
			if v.Value == "" {
				return NewFieldError(f.Name, "enum field has an empty value")
			}
		}
	}
	if f.AutoIncrement && !f.Type.IsInteger() {
		return NewFieldError(f.Name,
			fmt.Sprintf("auto-increment is only valid on integer types, not %s", f.Type))
	}
	if f.Primary && f.Nullable {
		return NewFieldError(f.Name, "primary key field cannot be nullable")
	}
	return nil
}

// ValidateIdentifier checks a PHP identifier: non-empty, at most 64
// characters, leading letter or underscore, alphanumeric/underscore
// body, and not a PHP reserved word (case-insensitive). The context
// string names where the identifier appeared for error reporting.
func ValidateIdentifier(name, context string) error {
	if name == "" {
		return NewIdentifierError(context, "", "cannot be empty")
	}
	if len(name) > maxIdentifierLen {
		return NewIdentifierError(context, name,
			fmt.Sprintf("too long (max %d characters)", maxIdentifierLen))
	}
	first := name[0]
	if !isASCIILetter(first) && first != '_' {
		return NewIdentifierError(context, name, "must start with a letter or underscore")
	}
	for i := 0; i < len(name); i++ {
		if !isASCIILetter(name[i]) && !isASCIIDigit(name[i]) && name[i] != '_' {
			return NewIdentifierError(context, name,
				"contains invalid characters (only letters, numbers and underscores allowed)")
		}
	}
	if isReservedWord(name) {
		return NewIdentifierError(context, name, "is a PHP reserved word")
	}
	return nil
}

// ValidateTableName checks a storage table name: non-empty, at most 128
// characters, alphanumeric/underscore charset. Table names are allowed
// to start with a digit and may shadow reserved words.
func ValidateTableName(name string) error {
	if name == "" {
		return NewIdentifierError("table name", "", "cannot be empty")
	}
	if len(name) > maxTableNameLen {
		return NewIdentifierError("table name", name,
			fmt.Sprintf("too long (max %d characters)", maxTableNameLen))
	}
	for i := 0; i < len(name); i++ {
		if !isASCIILetter(name[i]) && !isASCIIDigit(name[i]) && name[i] != '_' {
			return NewIdentifierError("table name", name,
				"contains invalid characters (only letters, numbers and underscores allowed)")
		}
	}
	return nil
}

// SanitizeFieldName coerces an arbitrary string into a valid identifier:
// a leading digit gains an underscore prefix and every other illegal
// character becomes an underscore. The result is re-validated, so
// reserved words still fail.
func SanitizeFieldName(name string) (string, error) {
	if name == "" {
		return "", NewIdentifierError("field name", "", "cannot be empty")
	}
	var b strings.Builder
	b.Grow(len(name) + 1)
	first := name[0]
	switch {
	case isASCIILetter(first) || first == '_':
		b.WriteByte(first)
	case isASCIIDigit(first):
		b.WriteByte('_')
		b.WriteByte(first)
	default:
		b.WriteByte('_')
	}
	for i := 1; i < len(name); i++ {
		if isASCIILetter(name[i]) || isASCIIDigit(name[i]) || name[i] == '_' {
			b.WriteByte(name[i])
		} else {
			b.WriteByte('_')
		}
	}
	sanitized := b.String()
	if err := ValidateIdentifier(sanitized, "sanitized field name"); err != nil {
		return "", err
	}
	return sanitized, nil
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
