package database

import (
	"time"

	"gorm.io/gorm"
)

// JobService provides render-job history operations
type JobService struct {
	db *gorm.DB
}

// NewJobService creates a new job service
func NewJobService(db *gorm.DB) *JobService {
	return &JobService{db: db}
}

// Record stores a completed render job
func (s *JobService) Record(job *RenderJob) error {
	return s.db.Create(job).Error
}

// Recent returns the most recent jobs, newest first
func (s *JobService) Recent(limit int) ([]RenderJob, error) {
	var jobs []RenderJob
	err := s.db.Order("created_at DESC").Limit(limit).Find(&jobs).Error
	return jobs, err
}

// Count returns the total number of recorded jobs
func (s *JobService) Count() (int64, error) {
	var count int64
	err := s.db.Model(&RenderJob{}).Count(&count).Error
	return count, err
}

// CleanupOlderThan deletes jobs older than the retention window and returns
// how many rows went away. A zero retention keeps everything.
func (s *JobService) CleanupOlderThan(retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, nil
	}
	cutoff := time.Now().Add(-retention)
	res := s.db.Where("created_at < ?", cutoff).Delete(&RenderJob{})
	return res.RowsAffected, res.Error
}
