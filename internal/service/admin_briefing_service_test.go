package service

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/jvictorino/briefly/internal/dto"
	"github.com/jvictorino/briefly/internal/model"
	"github.com/jvictorino/briefly/internal/repository"
	"github.com/jvictorino/briefly/internal/slug"
	"github.com/jvictorino/briefly/pkg/fault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db           *gorm.DB
	briefingRepo repository.BriefingRepository
	responseRepo repository.ResponseRepository
	admin        AdminBriefingService
	public       PublicBriefingService
	results      ResultsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(&model.Briefing{}, &model.Question{}, &model.Response{}))

	briefingRepo := repository.NewBriefingRepository(db)
	responseRepo := repository.NewResponseRepository(db)
	return &testEnv{
		db:           db,
		briefingRepo: briefingRepo,
		responseRepo: responseRepo,
		admin:        NewAdminBriefingService(briefingRepo, slug.NewWithSource(rand.NewSource(1))),
		public:       NewPublicBriefingService(briefingRepo, responseRepo),
		results:      NewResultsService(briefingRepo, responseRepo),
	}
}

func createRequest() dto.BriefingCreateDTO {
	return dto.BriefingCreateDTO{
		Title:       "Website Project",
		Description: "Scope questions for the new site",
		Questions: []dto.QuestionCreateDTO{
			{Text: "Your name?", Type: "SHORT_TEXT", Required: true},
			{Text: "Tell us about your goals", Type: "LONG_TEXT", Required: false},
			{Text: "Preferred color palette?", Type: "MULTIPLE_CHOICE", Required: true, Options: []string{"Warm", "Cool"}},
			{Text: "Contact email address?", Type: "EMAIL", Required: true},
			{Text: "Budget in dollars?", Type: "NUMBER", Required: false},
		},
	}
}

func TestCreateBriefing_AssignsSlugAndOrder(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.admin.CreateBriefing(createRequest())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(created.Slug, "website-project-"), "slug %q", created.Slug)
	require.Len(t, created.Questions, 5)
	for i, q := range created.Questions {
		assert.Equal(t, i, q.OrderIndex)
	}
	assert.Equal(t, []string{"Warm", "Cool"}, created.Questions[2].Options)

	// And the round trip holds through storage.
	fetched, err := env.briefingRepo.FindBySlug(created.Slug)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Len(t, fetched.Questions, 5)
}

func TestCreateBriefing_RejectsUnknownQuestionType(t *testing.T) {
	env := newTestEnv(t)

	req := createRequest()
	req.Questions[0].Type = "RATING_SCALE"

	_, err := env.admin.CreateBriefing(req)
	require.Error(t, err)
	assert.True(t, fault.IsClientError(err))
}

func TestCreateBriefing_RejectsChoiceQuestionWithoutOptions(t *testing.T) {
	env := newTestEnv(t)

	req := createRequest()
	req.Questions[2].Options = []string{"  ", ""}

	_, err := env.admin.CreateBriefing(req)
	require.Error(t, err)
	assert.True(t, fault.IsClientError(err))
}

func TestListBriefings_IncludesCounts(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.admin.CreateBriefing(createRequest())
	require.NoError(t, err)

	require.NoError(t, env.responseRepo.Create(&model.Response{
		BriefingID: created.ID,
		Answers:    model.AnswerMap{created.Questions[0].ID: model.TextAnswer("Alice")},
	}))

	summaries, err := env.admin.ListBriefings()
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 5, summaries[0].QuestionCount)
	assert.Equal(t, 1, summaries[0].ResponseCount)
	assert.Equal(t, created.Slug, summaries[0].Slug)
}

func TestDeleteBriefing(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.admin.CreateBriefing(createRequest())
	require.NoError(t, err)

	require.NoError(t, env.admin.DeleteBriefing(created.ID))

	fetched, err := env.briefingRepo.FindBySlug(created.Slug)
	require.NoError(t, err)
	assert.Nil(t, fetched)

	assert.ErrorIs(t, env.admin.DeleteBriefing(created.ID), fault.ErrNotFound)
}
