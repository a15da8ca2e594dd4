package service

import (
	"encoding/json"
	"testing"

	"github.com/jvictorino/briefly/internal/model"
	"github.com/jvictorino/briefly/pkg/fault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawPayload(t *testing.T, fields map[string]any) map[string]json.RawMessage {
	t.Helper()
	out := make(map[string]json.RawMessage, len(fields))
	for k, v := range fields {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		out[k] = raw
	}
	return out
}

func TestGetBriefingBySlug_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.public.GetBriefingBySlug("no-such-slug")
	assert.ErrorIs(t, err, fault.ErrNotFound)
}

func TestSubmitResponse_WebsiteProjectScenario(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.admin.CreateBriefing(createRequest())
	require.NoError(t, err)

	fetched, err := env.public.GetBriefingBySlug(created.Slug)
	require.NoError(t, err)
	require.Len(t, fetched.Questions, 5)

	receipt, err := env.public.SubmitResponse(created.Slug, rawPayload(t, map[string]any{
		fetched.Questions[0].ID: "Alice",
		fetched.Questions[2].ID: []string{"Warm"},
		fetched.Questions[3].ID: "alice@example.com",
	}))
	require.NoError(t, err)
	assert.Equal(t, created.ID, receipt.BriefingID)
	assert.NotEmpty(t, receipt.ID)

	results, err := env.results.GetResults(created.Slug)
	require.NoError(t, err)
	assert.Equal(t, 1, results.ResponseCount)
	require.Len(t, results.Responses, 1)

	response := results.Responses[0]
	assert.Nil(t, response.RespondentEmail, "no respondent_email was submitted")

	// Answers follow question order; unanswered optional questions are absent.
	require.Len(t, response.Answers, 3)
	assert.Equal(t, "Your name?", response.Answers[0].QuestionText)
	assert.Equal(t, model.TextAnswer("Alice"), response.Answers[0].Value)
	assert.Equal(t, model.ChoicesAnswer([]string{"Warm"}), response.Answers[1].Value)
	assert.Equal(t, model.TextAnswer("alice@example.com"), response.Answers[2].Value)
}

func TestSubmitResponse_CapturesRespondentEmail(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.admin.CreateBriefing(createRequest())
	require.NoError(t, err)

	_, err = env.public.SubmitResponse(created.Slug, rawPayload(t, map[string]any{
		created.Questions[0].ID: "Bob",
		created.Questions[2].ID: []string{"Cool"},
		created.Questions[3].ID: "bob@example.com",
		"respondent_email":      "bob@example.com",
	}))
	require.NoError(t, err)

	results, err := env.results.GetResults(created.Slug)
	require.NoError(t, err)
	require.Len(t, results.Responses, 1)
	require.NotNil(t, results.Responses[0].RespondentEmail)
	assert.Equal(t, "bob@example.com", *results.Responses[0].RespondentEmail)
}

func TestSubmitResponse_ValidationFailureIsNotStored(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.admin.CreateBriefing(createRequest())
	require.NoError(t, err)

	_, err = env.public.SubmitResponse(created.Slug, rawPayload(t, map[string]any{
		created.Questions[3].ID: "not-an-email",
	}))
	require.Error(t, err)

	fields, ok := fault.ValidationFields(err)
	require.True(t, ok, "expected a validation fault, got %v", err)
	// Missing name, empty required choice, bad email: all reported together.
	assert.Len(t, fields, 3)

	count, err := env.responseRepo.CountByBriefingID(created.ID)
	require.NoError(t, err)
	assert.Zero(t, count, "rejected payloads never reach storage")
}

func TestSubmitResponse_UnknownSlug(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.public.SubmitResponse("no-such-slug", rawPayload(t, map[string]any{"q": "v"}))
	assert.ErrorIs(t, err, fault.ErrNotFound)
}
