package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldTypeMappings(t *testing.T) {
	t.Run("migration methods are total", func(t *testing.T) {
		for ft := TypeInvalid + 1; ft < endFieldTypes; ft++ {
			assert.NotEmpty(t, ft.MigrationMethod(), ft.String())
		}
		assert.Equal(t, "string", TypeString.MigrationMethod())
		assert.Equal(t, "bigInteger", TypeBigInteger.MigrationMethod())
		assert.Equal(t, "ipAddress", TypeInet.MigrationMethod())
	})

	t.Run("casts are partial", func(t *testing.T) {
		cast, ok := TypeBoolean.Cast()
		require.True(t, ok)
		assert.Equal(t, "boolean", cast)

		for _, ft := range []FieldType{TypeInteger, TypeTinyInteger, TypeSmallInteger, TypeMediumInteger, TypeBigInteger} {
			cast, ok := ft.Cast()
			require.True(t, ok, ft.String())
			assert.Equal(t, "integer", cast)
		}

		cast, ok = TypeJSON.Cast()
		require.True(t, ok)
		assert.Equal(t, "array", cast)

		cast, ok = TypeDateTime.Cast()
		require.True(t, ok)
		assert.Equal(t, "datetime", cast)

		cast, ok = TypeDate.Cast()
		require.True(t, ok)
		assert.Equal(t, "date", cast)

		for _, ft := range []FieldType{TypeString, TypeText, TypeUUID, TypeEnum, TypeBinary, TypeInet} {
			_, ok := ft.Cast()
			assert.False(t, ok, ft.String())
		}
	})

	t.Run("php type hints", func(t *testing.T) {
		assert.Equal(t, "string", TypeString.PHPType())
		assert.Equal(t, "int", TypeBigInteger.PHPType())
		assert.Equal(t, "float", TypeDecimal.PHPType())
		assert.Equal(t, "bool", TypeBoolean.PHPType())
		assert.Equal(t, "array", TypeJSON.PHPType())
		assert.Equal(t, "string", TypeDate.PHPType())
		assert.Equal(t, "string", TypeUUID.PHPType())
	})

	t.Run("parse tags", func(t *testing.T) {
		ft, err := ParseFieldType("bigInteger")
		require.NoError(t, err)
		assert.Equal(t, TypeBigInteger, ft)

		_, err = ParseFieldType("varchar")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownFieldType))
	})
}

func TestFieldCastOverride(t *testing.T) {
	f := Field{Name: "payload", Type: TypeText}
	_, ok := f.CastTag()
	assert.False(t, ok)

	custom := "encrypted"
	f.Cast = &custom
	cast, ok := f.CastTag()
	require.True(t, ok)
	assert.Equal(t, "encrypted", cast)
}

func TestRelationshipConstructors(t *testing.T) {
	t.Run("standard kinds", func(t *testing.T) {
		rel := BelongsTo("Category").WithForeignKey("category_id").OnDeleteAction("cascade")
		assert.Equal(t, KindBelongsTo, rel.Kind())
		assert.Equal(t, "category_id", rel.ForeignKey)
		assert.Equal(t, "cascade", rel.OnDelete)

		assert.Equal(t, KindHasOne, HasOne("Profile").Kind())
		assert.Equal(t, KindHasMany, HasMany("Comment").Kind())
		assert.Equal(t, KindBelongsToMany, BelongsToMany("Role").WithPivotTable("role_user").Kind())
	})

	t.Run("morphTo has no target model", func(t *testing.T) {
		rel := MorphTo("commentable")
		assert.Equal(t, KindMorphTo, rel.Kind())
		assert.Equal(t, "commentable", rel.MethodName())
	})

	t.Run("morphTo discriminator defaults", func(t *testing.T) {
		assert.Equal(t, "morphable", MorphTo("").MethodName())
	})

	t.Run("polymorphic kinds", func(t *testing.T) {
		assert.Equal(t, KindMorphOne, MorphOne("Image", "imageable").Kind())
		assert.Equal(t, KindMorphMany, MorphMany("Comment", "commentable").Kind())
		rel := MorphToMany("Tag", "taggable").WithPivotTable("taggables")
		assert.Equal(t, KindMorphToMany, rel.Kind())
		assert.Equal(t, "taggables", rel.PivotTable)
	})
}

func TestRelationshipMethodNames(t *testing.T) {
	assert.Equal(t, "category", BelongsTo("Category").MethodName())
	assert.Equal(t, "profile", HasOne("Profile").MethodName())
	assert.Equal(t, "comments", HasMany("Comment").MethodName())
	assert.Equal(t, "roles", BelongsToMany("Role").MethodName())
	assert.Equal(t, "image", MorphOne("Image", "imageable").MethodName())
	assert.Equal(t, "comments", MorphMany("Comment", "commentable").MethodName())
	assert.Equal(t, "tags", MorphToMany("Tag", "taggable").MethodName())
	assert.Equal(t, "blogPosts", HasMany("BlogPost").MethodName())
}

func TestParseRelationshipKind(t *testing.T) {
	k, err := ParseRelationshipKind("belongsToMany")
	require.NoError(t, err)
	assert.Equal(t, KindBelongsToMany, k)

	_, err = ParseRelationshipKind("ownedBy")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownRelationshipKind))
}

func TestFillableFields(t *testing.T) {
	m := validModel()
	m.Fields = []Field{
		{Name: "name", Type: TypeString},
		{Name: "email", Type: TypeString},
	}

	t.Run("all mode lists every non-id field", func(t *testing.T) {
		m.Access = Access{Mode: AccessAll}
		assert.Equal(t, []string{"name", "email"}, m.FillableFields())
	})

	t.Run("fillable mode uses the declared list", func(t *testing.T) {
		m.Access = Access{Mode: AccessFillable, Fields: []string{"name"}}
		assert.Equal(t, []string{"name"}, m.FillableFields())
	})

	t.Run("guarded mode yields none", func(t *testing.T) {
		m.Access = Access{Mode: AccessGuarded, Fields: []string{"email"}}
		assert.Nil(t, m.FillableFields())
	})
}
