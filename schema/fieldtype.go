package schema

import "fmt"

// FieldType is the closed enumeration of column types a field may declare.
type FieldType int

// Supported field types.
const (
	TypeInvalid FieldType = iota
	TypeString
	TypeText
	TypeMediumText
	TypeLongText
	TypeInteger
	TypeTinyInteger
	TypeSmallInteger
	TypeMediumInteger
	TypeBigInteger
	TypeFloat
	TypeDecimal
	TypeBoolean
	TypeDate
	TypeDateTime
	TypeTimestamp
	TypeJSON
	TypeUUID
	TypeEnum
	TypeBinary
	TypeInet
	endFieldTypes
)

// fieldTypeTags maps each type to its schema-document tag (camelCase).
var fieldTypeTags = map[FieldType]string{
	TypeString:        "string",
	TypeText:          "text",
	TypeMediumText:    "mediumText",
	TypeLongText:      "longText",
	TypeInteger:       "integer",
	TypeTinyInteger:   "tinyInteger",
	TypeSmallInteger:  "smallInteger",
	TypeMediumInteger: "mediumInteger",
	TypeBigInteger:    "bigInteger",
	TypeFloat:         "float",
	TypeDecimal:       "decimal",
	TypeBoolean:       "boolean",
	TypeDate:          "date",
	TypeDateTime:      "dateTime",
	TypeTimestamp:     "timestamp",
	TypeJSON:          "json",
	TypeUUID:          "uuid",
	TypeEnum:          "enum",
	TypeBinary:        "binary",
	TypeInet:          "inet",
}

// String returns the schema-document tag for the type.
func (t FieldType) String() string {
	if tag, ok := fieldTypeTags[t]; ok {
		return tag
	}
	return fmt.Sprintf("FieldType(%d)", int(t))
}

// Valid reports whether t is a member of the enumeration.
func (t FieldType) Valid() bool {
	return t > TypeInvalid && t < endFieldTypes
}

// ParseFieldType resolves a schema-document tag to its FieldType.
func ParseFieldType(tag string) (FieldType, error) {
	for t, s := range fieldTypeTags {
		if s == tag {
			return t, nil
		}
	}
	return TypeInvalid, NewFieldTypeError(tag)
}

// MigrationMethod returns the Laravel schema-builder method for the type.
// The mapping is total over the enumeration.
func (t FieldType) MigrationMethod() string {
	if t == TypeInet {
		return "ipAddress"
	}
	return fieldTypeTags[t]
}

// Cast returns the Eloquent $casts tag for the type and whether one
// applies. The mapping is deliberately partial: textual, uuid, enum,
// binary and inet columns carry no cast.
func (t FieldType) Cast() (string, bool) {
	switch t {
	case TypeBoolean:
		return "boolean", true
	case TypeInteger, TypeTinyInteger, TypeSmallInteger, TypeMediumInteger, TypeBigInteger:
		return "integer", true
	case TypeFloat, TypeDecimal:
		return "float", true
	case TypeJSON:
		return "array", true
	case TypeDateTime, TypeTimestamp:
		return "datetime", true
	case TypeDate:
		return "date", true
	default:
		return "", false
	}
}

// PHPType returns the PHP type hint for the type. Date and time columns
// surface as strings on the DTO boundary.
func (t FieldType) PHPType() string {
	switch t {
	case TypeInteger, TypeTinyInteger, TypeSmallInteger, TypeMediumInteger, TypeBigInteger:
		return "int"
	case TypeFloat, TypeDecimal:
		return "float"
	case TypeBoolean:
		return "bool"
	case TypeJSON:
		return "array"
	default:
		return "string"
	}
}

// IsInteger reports whether the type belongs to the integer family.
func (t FieldType) IsInteger() bool {
	switch t {
	case TypeInteger, TypeTinyInteger, TypeSmallInteger, TypeMediumInteger, TypeBigInteger:
		return true
	}
	return false
}

// IsStringFamily reports whether the type is string or a text variant.
func (t FieldType) IsStringFamily() bool {
	switch t {
	case TypeString, TypeText, TypeMediumText, TypeLongText:
		return true
	}
	return false
}
