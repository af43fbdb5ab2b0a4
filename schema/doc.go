// Package schema defines schemly's typed in-memory schema model: field
// types and their Laravel mappings, fields, relationships, pivot tables
// and model definitions, plus the validation rules every generator runs
// before producing text.
//
// # Models
//
// A ModelDefinition describes one Eloquent model:
//
//	model := &schema.ModelDefinition{
//	    Name:       "User",
//	    Table:      "users",
//	    Timestamps: true,
//	    Fields: []schema.Field{
//	        {Name: "name", Type: schema.TypeString},
//	        {Name: "email", Type: schema.TypeString, Unique: true},
//	        {Name: "age", Type: schema.TypeInteger, Nullable: true},
//	    },
//	}
//
// The `id` column is implicit: every generator synthesizes it, and
// declaring it as a field is a validation error.
//
// # Relationships
//
// Relationships form a closed union over eight kinds. Each kind is built
// through its constructor, which fixes the payload shape at the type
// level (a MorphTo never carries a target model):
//
//	schema.BelongsTo("Category").WithForeignKey("category_id")
//	schema.HasMany("Comment")
//	schema.MorphTo("commentable")
//	schema.MorphMany("Comment", "commentable")
//
// # Validation
//
// ValidateModel checks a full definition; ValidateField,
// ValidateIdentifier and ValidateTableName are the finer-grained entry
// points. All violations are recoverable: callers may skip the offending
// model and continue with the rest of the schema.
package schema
