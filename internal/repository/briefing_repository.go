package repository

import (
	"errors"

	"github.com/jvictorino/briefly/internal/model"
	"gorm.io/gorm"
)

// BriefingWithCounts is a briefing row joined with its question and response counts.
type BriefingWithCounts struct {
	model.Briefing
	QuestionCount int
	ResponseCount int
}

type BriefingRepository interface {
	// Create persists the briefing and its question batch in one transaction.
	Create(briefing *model.Briefing) error
	// FindBySlug returns the briefing with its questions ordered by
	// order_index, or (nil, nil) when no briefing matches the slug.
	FindBySlug(slug string) (*model.Briefing, error)
	FindByID(id string) (*model.Briefing, error)
	FindAllWithCounts() ([]BriefingWithCounts, error)
	// Delete removes the briefing row; questions and responses go with it via
	// the storage layer's ON DELETE CASCADE constraints.
	Delete(id string) error
}

type briefingRepository struct {
	db *gorm.DB
}

func NewBriefingRepository(db *gorm.DB) BriefingRepository {
	return &briefingRepository{db: db}
}

func (r *briefingRepository) Create(briefing *model.Briefing) error {
	// GORM creates the associated questions alongside the briefing inside a
	// single transaction, so a failed question batch rolls the briefing back.
	return r.db.Create(briefing).Error
}

func (r *briefingRepository) FindBySlug(slug string) (*model.Briefing, error) {
	var briefing model.Briefing
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.order_index ASC")
	}).Where("slug = ?", slug).First(&briefing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &briefing, nil
}

func (r *briefingRepository) FindByID(id string) (*model.Briefing, error) {
	var briefing model.Briefing
	err := r.db.First(&briefing, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &briefing, nil
}

func (r *briefingRepository) FindAllWithCounts() ([]BriefingWithCounts, error) {
	var results []BriefingWithCounts
	err := r.db.Model(&model.Briefing{}).
		Select("briefings.*, " +
			"(SELECT COUNT(*) FROM questions WHERE questions.briefing_id = briefings.id) as question_count, " +
			"(SELECT COUNT(*) FROM responses WHERE responses.briefing_id = briefings.id) as response_count").
		Order("briefings.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *briefingRepository) Delete(id string) error {
	result := r.db.Delete(&model.Briefing{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
