package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RenderJob records one HTTP render: which kernel ran, over what geometry,
// and how long it took. Options holds the preparation parameters (resize,
// blur, seed) as submitted.
type RenderJob struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Kernel       string         `gorm:"not null;index" json:"kernel"`
	Width        int            `gorm:"not null" json:"width"`
	Height       int            `gorm:"not null" json:"height"`
	SourceFormat string         `json:"source_format"`
	DurationMS   int64          `json:"duration_ms"`
	Options      datatypes.JSON `json:"options,omitempty"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
}

// BeforeCreate assigns the job ID if the caller didn't.
func (j *RenderJob) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
