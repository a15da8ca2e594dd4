package repository

import (
	"github.com/jvictorino/briefly/internal/model"
	"gorm.io/gorm"
)

type ResponseRepository interface {
	// Create inserts one response row. Payload validation already happened in
	// the validation layer; nothing is re-checked here.
	Create(response *model.Response) error
	// FindByBriefingID returns a briefing's responses, newest first.
	FindByBriefingID(briefingID string) ([]model.Response, error)
	CountByBriefingID(briefingID string) (int64, error)
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) Create(response *model.Response) error {
	return r.db.Create(response).Error
}

func (r *responseRepository) FindByBriefingID(briefingID string) ([]model.Response, error) {
	var responses []model.Response
	if err := r.db.Where("briefing_id = ?", briefingID).Order("created_at DESC").Find(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *responseRepository) CountByBriefingID(briefingID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Response{}).Where("briefing_id = ?", briefingID).Count(&count).Error
	return count, err
}
