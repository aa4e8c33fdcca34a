package migration

import (
	"fmt"

	"gorm.io/gorm"
)

// TableCount is one row of the migration status report.
type TableCount struct {
	Table string `json:"table"`
	Rows  int64  `json:"rows"`
}

// Status pings the database and reports the row count of every managed table.
func Status(db *gorm.DB) ([]TableCount, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	counts := make([]TableCount, 0, len(AllModels()))
	for _, model := range AllModels() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("failed to resolve table name: %w", err)
		}

		var rows int64
		if err := db.Table(stmt.Table).Count(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", stmt.Table, err)
		}
		counts = append(counts, TableCount{Table: stmt.Table, Rows: rows})
	}

	return counts, nil
}
