package validation

import (
	"encoding/json"
	"fmt"
	"regexp"

	playground "github.com/go-playground/validator/v10"
	"github.com/jvictorino/briefly/internal/model"
	"github.com/jvictorino/briefly/pkg/fault"
)

// RespondentEmailField is the reserved payload key for the respondent's
// contact email. It is always optional and never belongs to a question.
const RespondentEmailField = "respondent_email"

var (
	digitsOnly = regexp.MustCompile(`^\d+$`)
	validate   = playground.New()
)

// Validator checks a response payload against the question list it was built
// from. Payload keys are Question IDs, so a validator is only good for the
// exact question list it was given and must be rebuilt when that list changes.
type Validator struct {
	questions []model.Question
}

// Build derives one validation rule per question from its type and
// requiredness. The dispatch on QuestionType is exhaustive: a new question
// type without a rule arm fails validation loudly instead of passing through.
func Build(questions []model.Question) *Validator {
	return &Validator{questions: questions}
}

// Validate checks every field and accumulates all failures; it never stops at
// the first bad field. On success it returns the answers keyed by question ID
// (unanswered optional questions are absent keys) and the respondent email,
// nil when not provided. Payload keys matching no question are ignored.
func (v *Validator) Validate(payload map[string]json.RawMessage) (model.AnswerMap, *string, []fault.FieldError) {
	answers := model.AnswerMap{}
	var errs []fault.FieldError

	addErr := func(field, message string) {
		errs = append(errs, fault.FieldError{Field: field, Message: message})
	}

	for _, q := range v.questions {
		raw, present := payload[q.ID]

		switch q.Type {
		case model.Email:
			text, ok := decodeText(raw, present)
			if !ok {
				addErr(q.ID, "answer must be text")
				continue
			}
			if q.Required {
				if !present || text == "" {
					addErr(q.ID, "this field is required")
					continue
				}
				if !isEmail(text) {
					addErr(q.ID, "must be a valid email address")
					continue
				}
			} else {
				if !present || text == "" {
					continue
				}
				if !isEmail(text) {
					addErr(q.ID, "must be a valid email address")
					continue
				}
			}
			answers[q.ID] = model.TextAnswer(text)

		case model.Number:
			text, ok := decodeText(raw, present)
			if !ok {
				addErr(q.ID, "answer must be text")
				continue
			}
			if q.Required {
				if !present || !digitsOnly.MatchString(text) {
					addErr(q.ID, "must be a number")
					continue
				}
			} else if !present || text == "" {
				continue
			}
			answers[q.ID] = model.TextAnswer(text)

		case model.MultipleChoice:
			choices, ok := decodeChoices(raw, present)
			if !ok {
				addErr(q.ID, "answer must be a list of options")
				continue
			}
			if q.Required {
				if len(choices) == 0 {
					addErr(q.ID, "select at least one option")
					continue
				}
			} else if len(choices) == 0 {
				continue
			}
			answers[q.ID] = model.ChoicesAnswer(choices)

		case model.ShortText, model.LongText:
			text, ok := decodeText(raw, present)
			if !ok {
				addErr(q.ID, "answer must be text")
				continue
			}
			if q.Required {
				if !present || text == "" {
					addErr(q.ID, "this field is required")
					continue
				}
			} else if !present || text == "" {
				continue
			}
			answers[q.ID] = model.TextAnswer(text)

		default:
			addErr(q.ID, fmt.Sprintf("unsupported question type %q", q.Type))
		}
	}

	respondentEmail, emailErr := v.checkRespondentEmail(payload)
	if emailErr != nil {
		errs = append(errs, *emailErr)
	}

	if len(errs) > 0 {
		return nil, nil, errs
	}
	return answers, respondentEmail, nil
}

// checkRespondentEmail accepts an absent key, an empty string, or a valid
// email; the latter is the only case that yields a non-nil result.
func (v *Validator) checkRespondentEmail(payload map[string]json.RawMessage) (*string, *fault.FieldError) {
	raw, present := payload[RespondentEmailField]
	if !present {
		return nil, nil
	}
	text, ok := decodeText(raw, present)
	if !ok {
		return nil, &fault.FieldError{Field: RespondentEmailField, Message: "answer must be text"}
	}
	if text == "" {
		return nil, nil
	}
	if !isEmail(text) {
		return nil, &fault.FieldError{Field: RespondentEmailField, Message: "must be a valid email address"}
	}
	return &text, nil
}

func isEmail(s string) bool {
	return validate.Var(s, "email") == nil
}

// decodeText returns ("", true) for an absent key so requiredness can be
// decided by the caller; a present non-string value fails.
func decodeText(raw json.RawMessage, present bool) (string, bool) {
	if !present {
		return "", true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func decodeChoices(raw json.RawMessage, present bool) ([]string, bool) {
	if !present {
		return nil, true
	}
	var opts []string
	if err := json.Unmarshal(raw, &opts); err != nil {
		return nil, false
	}
	return opts, true
}
