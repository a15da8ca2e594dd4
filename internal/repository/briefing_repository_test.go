package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/jvictorino/briefly/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(&model.Briefing{}, &model.Question{}, &model.Response{}))
	return db
}

func briefingWithQuestions(title, slug string, n int) *model.Briefing {
	questions := make([]model.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, model.Question{
			Text:       fmt.Sprintf("Question number %d?", i),
			Type:       model.ShortText,
			Required:   true,
			OrderIndex: i,
		})
	}
	return &model.Briefing{Title: title, Slug: slug, Questions: questions}
}

func TestBriefingRepository_CreateAndFindBySlugRoundTrip(t *testing.T) {
	repo := NewBriefingRepository(newTestDB(t))

	created := briefingWithQuestions("Website Project", "website-project-abc123", 4)
	require.NoError(t, repo.Create(created))
	assert.NotEmpty(t, created.ID)

	found, err := repo.FindBySlug("website-project-abc123")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Len(t, found.Questions, 4)
	for i, q := range found.Questions {
		assert.Equal(t, i, q.OrderIndex, "questions come back in authoring order")
		assert.Equal(t, found.ID, q.BriefingID)
		assert.NotEmpty(t, q.ID)
	}
}

func TestBriefingRepository_FindBySlugAbsentIsNilNotError(t *testing.T) {
	repo := NewBriefingRepository(newTestDB(t))

	found, err := repo.FindBySlug("no-such-slug")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestBriefingRepository_FindAllWithCountsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewBriefingRepository(db)
	responseRepo := NewResponseRepository(db)

	older := briefingWithQuestions("Older", "older-aaaaaa", 2)
	require.NoError(t, repo.Create(older))
	// Force distinct created_at ordering regardless of clock resolution.
	require.NoError(t, db.Model(older).Update("created_at", time.Now().Add(-time.Hour)).Error)

	newer := briefingWithQuestions("Newer", "newer-bbbbbb", 3)
	require.NoError(t, repo.Create(newer))

	require.NoError(t, responseRepo.Create(&model.Response{
		BriefingID: newer.ID,
		Answers:    model.AnswerMap{newer.Questions[0].ID: model.TextAnswer("hi")},
	}))

	results, err := repo.FindAllWithCounts()
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Newer", results[0].Title)
	assert.Equal(t, 3, results[0].QuestionCount)
	assert.Equal(t, 1, results[0].ResponseCount)
	assert.Equal(t, "Older", results[1].Title)
	assert.Equal(t, 2, results[1].QuestionCount)
	assert.Equal(t, 0, results[1].ResponseCount)
}

func TestBriefingRepository_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewBriefingRepository(db)
	responseRepo := NewResponseRepository(db)

	briefing := briefingWithQuestions("Doomed", "doomed-cccccc", 2)
	require.NoError(t, repo.Create(briefing))
	require.NoError(t, responseRepo.Create(&model.Response{
		BriefingID: briefing.ID,
		Answers:    model.AnswerMap{briefing.Questions[0].ID: model.TextAnswer("bye")},
	}))

	require.NoError(t, repo.Delete(briefing.ID))

	found, err := repo.FindBySlug("doomed-cccccc")
	require.NoError(t, err)
	assert.Nil(t, found)

	var questionCount int64
	require.NoError(t, db.Model(&model.Question{}).Where("briefing_id = ?", briefing.ID).Count(&questionCount).Error)
	assert.Zero(t, questionCount, "questions cascade with the briefing")

	var responseCount int64
	require.NoError(t, db.Model(&model.Response{}).Where("briefing_id = ?", briefing.ID).Count(&responseCount).Error)
	assert.Zero(t, responseCount, "responses cascade with the briefing")
}

func TestBriefingRepository_DeleteMissingIsNotFound(t *testing.T) {
	repo := NewBriefingRepository(newTestDB(t))

	err := repo.Delete("2b6e6c1e-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestResponseRepository_FindByBriefingIDNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewBriefingRepository(db)
	responseRepo := NewResponseRepository(db)

	briefing := briefingWithQuestions("Polled", "polled-dddddd", 1)
	require.NoError(t, repo.Create(briefing))
	qID := briefing.Questions[0].ID

	first := &model.Response{BriefingID: briefing.ID, Answers: model.AnswerMap{qID: model.TextAnswer("first")}}
	require.NoError(t, responseRepo.Create(first))
	require.NoError(t, db.Model(first).Update("created_at", time.Now().Add(-time.Minute)).Error)

	second := &model.Response{BriefingID: briefing.ID, Answers: model.AnswerMap{qID: model.TextAnswer("second")}}
	require.NoError(t, responseRepo.Create(second))

	responses, err := responseRepo.FindByBriefingID(briefing.ID)
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, model.TextAnswer("second"), responses[0].Answers[qID])
	assert.Equal(t, model.TextAnswer("first"), responses[1].Answers[qID])
	assert.Nil(t, responses[0].RespondentEmail)

	count, err := responseRepo.CountByBriefingID(briefing.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
