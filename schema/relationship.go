package schema

import (
	"fmt"

	"github.com/schemly/schemly/naming"
)

// RelationshipKind enumerates the eight supported relationship kinds.
type RelationshipKind int

// Supported relationship kinds.
const (
	KindInvalid RelationshipKind = iota
	KindBelongsTo
	KindHasOne
	KindHasMany
	KindBelongsToMany
	KindMorphTo
	KindMorphOne
	KindMorphMany
	KindMorphToMany
)

// relationshipTags maps each kind to its schema-document tag.
var relationshipTags = map[RelationshipKind]string{
	KindBelongsTo:     "belongsTo",
	KindHasOne:        "hasOne",
	KindHasMany:       "hasMany",
	KindBelongsToMany: "belongsToMany",
	KindMorphTo:       "morphTo",
	KindMorphOne:      "morphOne",
	KindMorphMany:     "morphMany",
	KindMorphToMany:   "morphToMany",
}

// String returns the schema-document tag for the kind.
func (k RelationshipKind) String() string {
	if tag, ok := relationshipTags[k]; ok {
		return tag
	}
	return fmt.Sprintf("RelationshipKind(%d)", int(k))
}

// Plural reports whether the kind targets many records, which drives
// method-name pluralization.
func (k RelationshipKind) Plural() bool {
	switch k {
	case KindHasMany, KindBelongsToMany, KindMorphMany, KindMorphToMany:
		return true
	}
	return false
}

// ParseRelationshipKind resolves a schema-document tag to its kind.
func ParseRelationshipKind(tag string) (RelationshipKind, error) {
	for k, s := range relationshipTags {
		if s == tag {
			return k, nil
		}
	}
	return KindInvalid, NewRelationshipKindError(tag)
}

// DefaultMorphName is the discriminator used by a MorphTo relationship
// that does not declare one.
const DefaultMorphName = "morphable"

// Relationship is the closed union over relationship payload shapes.
// The three implementations are StandardRel (belongsTo, hasOne, hasMany,
// belongsToMany), MorphToRel (no target model by construction) and
// PolymorphicRel (morphOne, morphMany, morphToMany).
type Relationship interface {
	// Kind returns the relationship kind.
	Kind() RelationshipKind
	// MethodName returns the navigation method name generated on the
	// owning model.
	MethodName() string

	isRelationship()
}

// StandardRel is a non-polymorphic relationship to a target model.
type StandardRel struct {
	kind           RelationshipKind
	Model          string
	ForeignKey     string
	LocalKey       string
	PivotTable     string
	OnDelete       string
	OnUpdate       string
	WithTimestamps bool
}

// BelongsTo declares a many-to-one relationship to model.
func BelongsTo(model string) *StandardRel {
	return &StandardRel{kind: KindBelongsTo, Model: model}
}

// HasOne declares a one-to-one relationship to model.
func HasOne(model string) *StandardRel {
	return &StandardRel{kind: KindHasOne, Model: model}
}

// HasMany declares a one-to-many relationship to model.
func HasMany(model string) *StandardRel {
	return &StandardRel{kind: KindHasMany, Model: model}
}

// BelongsToMany declares a many-to-many relationship to model.
func BelongsToMany(model string) *StandardRel {
	return &StandardRel{kind: KindBelongsToMany, Model: model}
}

// WithForeignKey sets an explicit foreign key column.
func (r *StandardRel) WithForeignKey(key string) *StandardRel {
	r.ForeignKey = key
	return r
}

// WithLocalKey sets an explicit local key column.
func (r *StandardRel) WithLocalKey(key string) *StandardRel {
	r.LocalKey = key
	return r
}

// WithPivotTable sets an explicit junction table for belongsToMany.
func (r *StandardRel) WithPivotTable(table string) *StandardRel {
	r.PivotTable = table
	return r
}

// OnDeleteAction sets the referential on-delete action ("cascade",
// "restrict", "set null", ...).
func (r *StandardRel) OnDeleteAction(action string) *StandardRel {
	r.OnDelete = action
	return r
}

// OnUpdateAction sets the referential on-update action.
func (r *StandardRel) OnUpdateAction(action string) *StandardRel {
	r.OnUpdate = action
	return r
}

// Timestamped marks the junction table as carrying timestamps.
func (r *StandardRel) Timestamped() *StandardRel {
	r.WithTimestamps = true
	return r
}

// Kind returns the relationship kind.
func (r *StandardRel) Kind() RelationshipKind { return r.kind }

// MethodName returns the navigation method name, derived from the
// target model name.
func (r *StandardRel) MethodName() string {
	return naming.MethodName(r.Model, r.kind.Plural())
}

func (*StandardRel) isRelationship() {}

// MorphToRel is the inverse side of a polymorphic relationship. It has
// no target model: the concrete model resolves at application runtime.
type MorphToRel struct {
	MorphName string
}

// MorphTo declares the inverse polymorphic relationship with the given
// discriminator name. An empty name falls back to DefaultMorphName.
func MorphTo(morphName string) *MorphToRel {
	return &MorphToRel{MorphName: morphName}
}

// Kind returns KindMorphTo.
func (*MorphToRel) Kind() RelationshipKind { return KindMorphTo }

// MethodName returns the declared discriminator name, defaulting to
// DefaultMorphName when absent.
func (r *MorphToRel) MethodName() string {
	if r.MorphName == "" {
		return DefaultMorphName
	}
	return r.MorphName
}

func (*MorphToRel) isRelationship() {}

// PolymorphicRel is a polymorphic relationship that targets a model and
// carries a morph discriminator.
type PolymorphicRel struct {
	kind       RelationshipKind
	Model      string
	MorphName  string
	PivotTable string
}

// MorphOne declares a polymorphic one-to-one relationship.
func MorphOne(model, morphName string) *PolymorphicRel {
	return &PolymorphicRel{kind: KindMorphOne, Model: model, MorphName: morphName}
}

// MorphMany declares a polymorphic one-to-many relationship.
func MorphMany(model, morphName string) *PolymorphicRel {
	return &PolymorphicRel{kind: KindMorphMany, Model: model, MorphName: morphName}
}

// MorphToMany declares a polymorphic many-to-many relationship.
func MorphToMany(model, morphName string) *PolymorphicRel {
	return &PolymorphicRel{kind: KindMorphToMany, Model: model, MorphName: morphName}
}

// WithPivotTable sets an explicit junction table for morphToMany.
func (r *PolymorphicRel) WithPivotTable(table string) *PolymorphicRel {
	r.PivotTable = table
	return r
}

// Kind returns the relationship kind.
func (r *PolymorphicRel) Kind() RelationshipKind { return r.kind }

// MethodName returns the navigation method name, derived from the
// target model name.
func (r *PolymorphicRel) MethodName() string {
	return naming.MethodName(r.Model, r.kind.Plural())
}

func (*PolymorphicRel) isRelationship() {}
