package gen

import (
	"time"

	"github.com/schemly/schemly/schema"
)

// GenerateSet selects which artifact kinds a run produces.
type GenerateSet struct {
	Models      bool
	Migrations  bool
	Controllers bool
	Resources   bool
	Factories   bool
	DTOs        bool
	PivotTables bool
}

// All returns a set with every artifact kind enabled.
func All() GenerateSet {
	return GenerateSet{
		Models:      true,
		Migrations:  true,
		Controllers: true,
		Resources:   true,
		Factories:   true,
		DTOs:        true,
		PivotTables: true,
	}
}

// None reports whether every artifact kind is disabled.
func (s GenerateSet) None() bool {
	return s == GenerateSet{}
}

// Config is one full generation request. It is immutable during a run:
// generators read it but never write it, so a single Config may serve
// concurrent generation of independent models.
type Config struct {
	// Models is the schema to generate from.
	Models []*schema.ModelDefinition

	// OutputDir is the Laravel project root artifacts are placed under.
	OutputDir string

	// Namespace is the model namespace for the traditional layout.
	Namespace string

	// Generate selects the artifact kinds to produce.
	Generate GenerateSet

	// UseDDD switches class artifacts to the grouped
	// app/Domain/{Model}/{Kind} layout.
	UseDDD bool

	// DatabaseEngine tags the target engine ("mysql", "pgsql", ...).
	DatabaseEngine string

	// ForceOverwrite makes the Runner clobber existing files.
	ForceOverwrite bool

	// Workers caps parallel model generation. Zero means GOMAXPROCS.
	Workers int

	// Now supplies migration-filename timestamps. Nil means time.Now.
	Now func() time.Time
}

// DefaultConfig returns a Config with every artifact kind enabled and
// the conventional Laravel defaults.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:      ".",
		Namespace:      `App\Models`,
		Generate:       All(),
		DatabaseEngine: "mysql",
	}
}

// now returns the configured clock's current time.
func (c *Config) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// timestamp formats the clock for migration filenames.
func (c *Config) timestamp() string {
	return c.now().UTC().Format("2006_01_02_150405")
}
