package database

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// runMigrations applies schema migrations in order. New schema changes get a
// new dated entry; never edit an applied migration.
func runMigrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250830_create_render_jobs",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&RenderJob{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("render_jobs")
			},
		},
	})
	return m.Migrate()
}
