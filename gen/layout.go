package gen

import (
	"fmt"
	"path/filepath"

	"github.com/schemly/schemly/naming"
	"github.com/schemly/schemly/schema"
)

// Kind enumerates the artifact kinds the generators produce.
type Kind int

// Artifact kinds.
const (
	KindModel Kind = iota
	KindController
	KindResource
	KindFactory
	KindDTO
	KindMigration
)

// kindFolders maps each class-artifact kind to its grouped-layout
// folder, which doubles as the trailing namespace segment.
var kindFolders = map[Kind]string{
	KindModel:      "Models",
	KindController: "Controllers",
	KindResource:   "Resources",
	KindFactory:    "Factories",
	KindDTO:        "DTOs",
}

// fileName returns the artifact filename for a class kind.
func fileName(kind Kind, m *schema.ModelDefinition) string {
	switch kind {
	case KindController:
		return m.Name + "Controller.php"
	case KindResource:
		return m.Name + "Resource.php"
	case KindFactory:
		return m.Name + "Factory.php"
	case KindDTO:
		return m.Name + "DTO.php"
	default:
		return m.Name + ".php"
	}
}

// PathFor resolves the output file path for a class artifact. Grouped
// layout nests every kind under app/Domain/{Model}; traditional layout
// uses the fixed conventional folders. Migration paths are resolved by
// MigrationPath instead, since they carry a timestamp.
func PathFor(kind Kind, m *schema.ModelDefinition, cfg *Config) string {
	if cfg.UseDDD {
		return filepath.Join(cfg.OutputDir, "app", "Domain", m.Name, kindFolders[kind], fileName(kind, m))
	}
	switch kind {
	case KindController:
		return filepath.Join(cfg.OutputDir, "app", "Http", "Controllers", fileName(kind, m))
	case KindResource:
		return filepath.Join(cfg.OutputDir, "app", "Http", "Resources", fileName(kind, m))
	case KindFactory:
		return filepath.Join(cfg.OutputDir, "database", "factories", fileName(kind, m))
	case KindDTO:
		return filepath.Join(cfg.OutputDir, "app", "DTOs", fileName(kind, m))
	default:
		return filepath.Join(cfg.OutputDir, "app", "Models", fileName(kind, m))
	}
}

// NamespaceFor resolves the PHP namespace for a class artifact.
func NamespaceFor(kind Kind, m *schema.ModelDefinition, cfg *Config) string {
	if cfg.UseDDD {
		return fmt.Sprintf(`App\Domain\%s\%s`, m.Name, kindFolders[kind])
	}
	switch kind {
	case KindController:
		return `App\Http\Controllers`
	case KindResource:
		return `App\Http\Resources`
	case KindFactory:
		return `Database\Factories`
	case KindDTO:
		return `App\DTOs`
	default:
		return cfg.Namespace
	}
}

// MigrationPath resolves a timestamped migration path for the given
// table. Migrations live in database/migrations under both layouts so
// the framework's chronological directory scan keeps working.
func MigrationPath(table string, cfg *Config) string {
	name := fmt.Sprintf("%s_create_%s_table.php", cfg.timestamp(), table)
	return filepath.Join(cfg.OutputDir, "database", "migrations", name)
}

// referencedTable derives the storage table a foreign key points at
// from the target model name.
func referencedTable(model string) string {
	return naming.TableName(model)
}
