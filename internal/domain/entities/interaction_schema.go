package entities

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

// Validation rule names reported in FieldError.Rule
const (
	RuleRequired = "required"
	RuleType     = "type"
	RuleBlank    = "blank"
	RuleMax      = "max"
	RuleEnum     = "enum"
	RuleDatetime = "datetime"
)

const (
	maxHCPNameLength         = 255
	maxInteractionTypeLength = 100
)

// FieldError is one violated constraint on one field
type FieldError struct {
	Field   string
	Rule    string
	Message string
}

// ValidationError lists every violation found in a payload
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidRecord, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRecord
}

func (e *ValidationError) add(field, rule, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Rule: rule, Message: message})
}

// datetimeLayouts are tried in order. Layouts without a zone are read as UTC.
var datetimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Stored datetimes must render as RFC3339, which only has four-digit years
var (
	minTimestamp = time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	maxTimestamp = time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC)
)

// ParseTimestamp reads the accepted datetime spellings
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range datetimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return checkRange(t.UTC())
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised datetime %q", s)
}

func checkRange(t time.Time) (time.Time, error) {
	if t.Before(minTimestamp) || t.After(maxTimestamp) {
		return time.Time{}, fmt.Errorf("datetime %s outside years 1-9999", t.Format(time.RFC3339))
	}
	return t, nil
}

// ParseInteractionRecord validates an untyped payload and builds the record.
// It checks every field and reports all violations at once, in field order.
// Keys it does not know are ignored.
func ParseInteractionRecord(raw map[string]any) (InteractionRecord, error) {
	var (
		rec  InteractionRecord
		verr ValidationError
	)

	if v, ok := present(raw, "hcp_name"); !ok {
		verr.add("hcp_name", RuleRequired, "Field required")
	} else if s, isStr := v.(string); !isStr {
		verr.add("hcp_name", RuleType, "Input should be a valid string")
	} else if strings.TrimSpace(s) == "" {
		verr.add("hcp_name", RuleBlank, "Field must not be blank")
	} else if utf8.RuneCountInString(s) > maxHCPNameLength {
		verr.add("hcp_name", RuleMax, fmt.Sprintf("String should have at most %d characters", maxHCPNameLength))
	} else {
		rec.HCPName = s
	}

	rec.InteractionType = optionalText(raw, "interaction_type", maxInteractionTypeLength, &verr)

	if v, ok := present(raw, "interaction_datetime"); !ok {
		verr.add("interaction_datetime", RuleRequired, "Field required")
	} else if t, err := toTimestamp(v); err != nil {
		verr.add("interaction_datetime", RuleDatetime, "Input should be a valid datetime")
	} else {
		rec.InteractionDatetime = t
	}

	rec.Attendees = optionalText(raw, "attendees", 0, &verr)
	rec.TopicsDiscussed = optionalText(raw, "topics_discussed", 0, &verr)
	rec.Summary = optionalText(raw, "summary", 0, &verr)
	rec.MaterialsShared = optionalText(raw, "materials_shared", 0, &verr)

	rec.HCPSentiment = SentimentUnknown
	if v, ok := present(raw, "hcp_sentiment"); ok {
		s, isStr := v.(string)
		parsed, err := ParseSentiment(s)
		if !isStr || err != nil {
			verr.add("hcp_sentiment", RuleEnum, "Input should be 'Positive', 'Neutral', 'Negative' or 'Unknown'")
		} else {
			rec.HCPSentiment = parsed
		}
	}

	rec.Outcomes = optionalText(raw, "outcomes", 0, &verr)
	rec.FollowUpActions = optionalText(raw, "follow_up_actions", 0, &verr)
	rec.AISuggestedFollowUps = optionalText(raw, "ai_suggested_follow_ups", 0, &verr)

	if len(verr.Fields) > 0 {
		return InteractionRecord{}, &verr
	}
	return rec, nil
}

// present returns the value for key unless it is absent or JSON null
func present(raw map[string]any, key string) (any, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func optionalText(raw map[string]any, key string, maxLen int, verr *ValidationError) *string {
	v, ok := present(raw, key)
	if !ok {
		return nil
	}
	s, isStr := v.(string)
	if !isStr {
		verr.add(key, RuleType, "Input should be a valid string")
		return nil
	}
	if maxLen > 0 && utf8.RuneCountInString(s) > maxLen {
		verr.add(key, RuleMax, fmt.Sprintf("String should have at most %d characters", maxLen))
		return nil
	}
	return &s
}

// toTimestamp accepts a datetime string or a number of Unix seconds
func toTimestamp(v any) (time.Time, error) {
	var secs float64
	switch x := v.(type) {
	case string:
		return ParseTimestamp(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return time.Time{}, err
		}
		secs = f
	case float64:
		secs = x
	case int:
		secs = float64(x)
	case int64:
		secs = float64(x)
	default:
		return time.Time{}, fmt.Errorf("unsupported datetime type %T", v)
	}
	if math.IsNaN(secs) || secs < float64(minTimestamp.Unix()) || secs >= float64(maxTimestamp.Unix()+1) {
		return time.Time{}, fmt.Errorf("datetime out of range")
	}
	whole, frac := math.Modf(secs)
	return checkRange(time.Unix(int64(whole), int64(frac*1e9)).UTC())
}
