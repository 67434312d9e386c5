package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

const schemaDir = "sql"

//go:embed sql/*.sql
var schema embed.FS

// Migrate brings the timers and advancements tables up to date. Foreign
// keys must already be enabled on db so advancements reject unknown channels.
func Migrate(db *sql.DB) error {
	if err := sqlmigrator.New(db, darwin.SqliteDialect{}).Migrate(schema, schemaDir); err != nil {
		return fmt.Errorf("migrate timekeeper schema: %w", err)
	}
	return nil
}
