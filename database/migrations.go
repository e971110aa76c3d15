package database

import (
	"fmt"
	"sort"

	"github.com/yeremiapane/little-lemon/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TargetVersion is the schema version a fully migrated database reports via
// PRAGMA user_version.
var TargetVersion = 1

type Migration struct {
	Version int
	Name    string
	Up      func(db *gorm.DB) error
}

// Migrations is applied in ascending Version order whatever the slice order.
// Each step runs only when the stored version is below its Version.
var Migrations = []Migration{
	{Version: 1, Name: "create and seed menu", Up: createAndSeedMenu},
}

const menuTableDDL = `
CREATE TABLE IF NOT EXISTS menu (
    id INTEGER PRIMARY KEY NOT NULL,
    name TEXT NOT NULL,
    price TEXT NOT NULL,
    description TEXT NOT NULL,
    image TEXT NOT NULL,
    category TEXT NOT NULL
)`

// EnsureSchema brings the database up to TargetVersion. Running it on an
// up-to-date database does nothing.
func EnsureSchema(db *gorm.DB) error {
	// WAL hanya petunjuk performa; database in-memory akan menolak dengan diam-diam.
	if err := db.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
		utils.ErrorLogger.Warnf("Could not enable WAL journaling: %v", err)
	}

	current, err := SchemaVersion(db)
	if err != nil {
		return err
	}
	utils.InfoLogger.Infof("Current DB version: %d", current)

	if current >= TargetVersion {
		return nil
	}

	for _, m := range sortedMigrations() {
		if m.Version <= current || m.Version > TargetVersion {
			continue
		}
		utils.InfoLogger.Infof("Applying migration %d: %s", m.Version, m.Name)
		if err := m.Up(db); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
		}
		if err := setSchemaVersion(db, m.Version); err != nil {
			return err
		}
	}

	return setSchemaVersion(db, TargetVersion)
}

// SchemaVersion reads PRAGMA user_version; a new file reports 0.
func SchemaVersion(db *gorm.DB) (int, error) {
	var version int
	if err := db.Raw("PRAGMA user_version").Row().Scan(&version); err != nil {
		return 0, fmt.Errorf("read user_version: %w", err)
	}
	return version, nil
}

func setSchemaVersion(db *gorm.DB, version int) error {
	// PRAGMA tidak menerima parameter binding.
	if err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", version)).Error; err != nil {
		return fmt.Errorf("write user_version %d: %w", version, err)
	}
	return nil
}

func createAndSeedMenu(db *gorm.DB) error {
	if err := db.Exec(menuTableDDL).Error; err != nil {
		return fmt.Errorf("create menu table: %w", err)
	}

	utils.InfoLogger.Infof("Seeding %d menu items", len(MenuSeed))
	for _, item := range MenuSeed {
		// Rows left by an interrupted earlier seed are skipped instead of failing.
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&item).Error; err != nil {
			return fmt.Errorf("seed menu item %d: %w", item.ID, err)
		}
	}
	return nil
}

func sortedMigrations() []Migration {
	steps := make([]Migration, len(Migrations))
	copy(steps, Migrations)
	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].Version < steps[j].Version
	})
	return steps
}
