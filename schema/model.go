package schema

// AccessMode selects how a model exposes mass assignment.
type AccessMode int

// Access control modes.
const (
	// AccessAll marks every declared field mass-assignable.
	AccessAll AccessMode = iota
	// AccessFillable whitelists an explicit field list.
	AccessFillable
	// AccessGuarded blacklists an explicit field list.
	AccessGuarded
)

// Access is a model's mass-assignment policy: a mode plus the field
// list the mode applies to (unused for AccessAll).
type Access struct {
	Mode   AccessMode
	Fields []string
}

// PivotTable describes a many-to-many junction table owned by a model
// definition, independent of any single relationship declaration.
type PivotTable struct {
	Name             string
	Model1           string
	Model2           string
	ForeignKey1      string
	ForeignKey2      string
	AdditionalFields []Field
	Timestamps       bool
}

// ModelDefinition is one model of the schema document. Definitions are
// constructed once, stay immutable during a generation pass, and are
// discarded afterwards.
type ModelDefinition struct {
	Name            string // class name (PHP identifier rules)
	Table           string // storage table name (database charset rules)
	Fields          []Field
	Timestamps      bool
	SoftDeletes     bool
	Relationships   []Relationship
	PivotTables     []PivotTable
	ValidationRules []ValidationRule
	Traits          []string
	Access          Access
}

// FillableFields returns the field names the model's access policy
// marks mass-assignable. For AccessAll that is every non-id field; for
// AccessFillable the declared whitelist. AccessGuarded returns nil:
// guarded models emit $guarded instead.
func (m *ModelDefinition) FillableFields() []string {
	switch m.Access.Mode {
	case AccessFillable:
		return m.Access.Fields
	case AccessGuarded:
		return nil
	default:
		names := make([]string, 0, len(m.Fields))
		for i := range m.Fields {
			if m.Fields[i].Name != "id" {
				names = append(names, m.Fields[i].Name)
			}
		}
		return names
	}
}

// HasCustomPrimary reports whether any declared field is marked primary,
// which suppresses the synthesized auto-increment id column.
func (m *ModelDefinition) HasCustomPrimary() bool {
	for i := range m.Fields {
		if m.Fields[i].Primary {
			return true
		}
	}
	return false
}
