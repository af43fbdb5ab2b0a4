package load

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemly/schemly/schema"
)

const sampleDocument = `
outputDir: /srv/blog
namespace: App\Models
useDDD: true
generateFactories: false

models:
  - name: Post
    table: posts
    timestamps: true
    softDeletes: true
    traits:
      - Searchable
    fillable:
      - title
      - body
    fields:
      - name: title
        type: string
        length: 200
        unique: true
      - name: body
        type: longText
      - name: price
        type: decimal
        decimalPrecision:
          precision: 8
          scale: 2
        nullable: true
      - name: status
        type: enum
        enumValues:
          - value: draft
            label: Draft
          - value: published
        default: draft
      - name: author_ip
        type: inet
        nullable: true
    relationships:
      - type: belongsTo
        model: User
        foreignKey: user_id
        onDelete: cascade
      - type: hasMany
        model: Comment
      - type: morphToMany
        model: Tag
        morphName: taggable
        pivotTable: taggables
      - type: morphTo
        morphName: commentable
    pivotTables:
      - name: post_tag
        model1: Post
        model2: Tag
        foreignKey1: post_id
        foreignKey2: tag_id
        timestamps: true
        additionalFields:
          - name: sort_order
            type: integer
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleDocument))
	require.NoError(t, err)

	assert.Equal(t, "/srv/blog", cfg.OutputDir)
	assert.Equal(t, `App\Models`, cfg.Namespace)
	assert.True(t, cfg.UseDDD)
	assert.True(t, cfg.Generate.Models, "omitted flags default on")
	assert.False(t, cfg.Generate.Factories)

	require.Len(t, cfg.Models, 1)
	m := cfg.Models[0]
	assert.Equal(t, "Post", m.Name)
	assert.Equal(t, "posts", m.Table)
	assert.True(t, m.Timestamps)
	assert.True(t, m.SoftDeletes)
	assert.Equal(t, []string{"Searchable"}, m.Traits)
	assert.Equal(t, schema.AccessFillable, m.Access.Mode)
	assert.Equal(t, []string{"title", "body"}, m.Access.Fields)

	require.Len(t, m.Fields, 5)
	title := m.Fields[0]
	assert.Equal(t, schema.TypeString, title.Type)
	require.NotNil(t, title.Length)
	assert.Equal(t, 200, *title.Length)
	assert.True(t, title.Unique)

	price := m.Fields[2]
	assert.Equal(t, schema.TypeDecimal, price.Type)
	require.NotNil(t, price.DecimalPrecision)
	assert.Equal(t, uint8(8), price.DecimalPrecision.Precision)
	assert.Equal(t, uint8(2), price.DecimalPrecision.Scale)

	status := m.Fields[3]
	require.Len(t, status.EnumValues, 2)
	assert.Equal(t, "draft", status.EnumValues[0].Value)
	assert.Equal(t, "Draft", status.EnumValues[0].Label)
	require.NotNil(t, status.Default)
	assert.Equal(t, "draft", *status.Default)

	assert.Equal(t, schema.TypeInet, m.Fields[4].Type)

	require.Len(t, m.Relationships, 4)
	belongs, ok := m.Relationships[0].(*schema.StandardRel)
	require.True(t, ok)
	assert.Equal(t, schema.KindBelongsTo, belongs.Kind())
	assert.Equal(t, "user_id", belongs.ForeignKey)
	assert.Equal(t, "cascade", belongs.OnDelete)

	assert.Equal(t, schema.KindHasMany, m.Relationships[1].Kind())

	poly, ok := m.Relationships[2].(*schema.PolymorphicRel)
	require.True(t, ok)
	assert.Equal(t, "taggables", poly.PivotTable)

	morphTo, ok := m.Relationships[3].(*schema.MorphToRel)
	require.True(t, ok)
	assert.Equal(t, "commentable", morphTo.MorphName)

	require.Len(t, m.PivotTables, 1)
	pivot := m.PivotTables[0]
	assert.Equal(t, "post_tag", pivot.Name)
	require.Len(t, pivot.AdditionalFields, 1)
	assert.Equal(t, schema.TypeInteger, pivot.AdditionalFields[0].Type)

	// Loaded models pass validation untouched.
	assert.NoError(t, schema.ValidateModel(m))
}

func TestParseErrors(t *testing.T) {
	t.Run("unknown field type", func(t *testing.T) {
		_, err := Parse([]byte(`
models:
  - name: Post
    table: posts
    fields:
      - name: title
        type: varchar
`))
		require.Error(t, err)
		assert.True(t, errors.Is(err, schema.ErrUnknownFieldType))
		assert.Contains(t, err.Error(), `model "Post"`)
	})

	t.Run("unknown relationship kind", func(t *testing.T) {
		_, err := Parse([]byte(`
models:
  - name: Post
    table: posts
    timestamps: true
    relationships:
      - type: ownedBy
        model: User
`))
		require.Error(t, err)
		assert.True(t, errors.Is(err, schema.ErrUnknownRelationshipKind))
	})

	t.Run("morphTo with a model", func(t *testing.T) {
		_, err := Parse([]byte(`
models:
  - name: Post
    table: posts
    timestamps: true
    relationships:
      - type: morphTo
        model: User
`))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidDocument))
		assert.Contains(t, err.Error(), "does not take a target model")
	})

	t.Run("standard kind without a model", func(t *testing.T) {
		_, err := Parse([]byte(`
models:
  - name: Post
    table: posts
    timestamps: true
    relationships:
      - type: hasMany
`))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidDocument))
	})

	t.Run("polymorphic kind without morphName", func(t *testing.T) {
		_, err := Parse([]byte(`
models:
  - name: Post
    table: posts
    timestamps: true
    relationships:
      - type: morphMany
        model: Comment
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "morphName")
	})

	t.Run("both fillable and guarded", func(t *testing.T) {
		_, err := Parse([]byte(`
models:
  - name: Post
    table: posts
    timestamps: true
    fillable: [title]
    guarded: [body]
`))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidDocument))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("models: ["))
		require.Error(t, err)
	})
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o644))

	cfg, err := File(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Models, 1)

	_, err = File(filepath.Join(dir, "missing.yml"))
	require.Error(t, err)
}
