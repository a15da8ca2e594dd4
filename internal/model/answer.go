package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// AnswerKind tags the shape of an answer value.
type AnswerKind int

const (
	AnswerText AnswerKind = iota
	AnswerChoices
)

// AnswerValue is one answer to one question: free text for
// SHORT_TEXT/LONG_TEXT/EMAIL/NUMBER questions, a list of selected option
// strings for MULTIPLE_CHOICE. On the wire it is a plain JSON string or a
// JSON array of strings.
type AnswerValue struct {
	Kind    AnswerKind
	Text    string
	Choices []string
}

func TextAnswer(s string) AnswerValue {
	return AnswerValue{Kind: AnswerText, Text: s}
}

func ChoicesAnswer(opts []string) AnswerValue {
	return AnswerValue{Kind: AnswerChoices, Choices: opts}
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.Kind == AnswerChoices {
		if v.Choices == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(v.Choices)
	}
	return json.Marshal(v.Text)
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*v = TextAnswer(text)
		return nil
	}
	var choices []string
	if err := json.Unmarshal(data, &choices); err == nil {
		*v = ChoicesAnswer(choices)
		return nil
	}
	return fmt.Errorf("answer value must be a string or an array of strings")
}

// AnswerMap maps Question.ID to its answer. Stored as a single jsonb column.
type AnswerMap map[string]AnswerValue

func (m AnswerMap) Value() (driver.Value, error) {
	if m == nil {
		m = AnswerMap{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *AnswerMap) Scan(src any) error {
	return scanJSON(src, m)
}

// StringList is an ordered list of option strings stored as a jsonb column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	return scanJSON(src, l)
}

func scanJSON(src, dst any) error {
	switch raw := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(raw, dst)
	case string:
		return json.Unmarshal([]byte(raw), dst)
	default:
		return fmt.Errorf("unsupported column type %T for JSON scan", src)
	}
}
