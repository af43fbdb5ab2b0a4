package gen

import "github.com/schemly/schemly/schema"

// Generator produces one artifact kind for a validated model. Both
// methods are pure: Generate returns the artifact text and FilePath its
// destination, and neither touches the filesystem.
type Generator interface {
	Generate(m *schema.ModelDefinition, cfg *Config) (string, error)
	FilePath(m *schema.ModelDefinition, cfg *Config) string
}
