package entities

import (
	"encoding/json"
	"fmt"
)

// Sentiment is the HCP's attitude during an interaction
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
	SentimentUnknown  Sentiment = "Unknown"
)

// Sentiments lists every valid value in wire order
func Sentiments() []Sentiment {
	return []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative, SentimentUnknown}
}

// ParseSentiment maps a wire string to a Sentiment. Matching is exact.
func ParseSentiment(s string) (Sentiment, error) {
	switch Sentiment(s) {
	case SentimentPositive, SentimentNeutral, SentimentNegative, SentimentUnknown:
		return Sentiment(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSentiment, s)
}

// IsValid reports whether s is one of the four known values
func (s Sentiment) IsValid() bool {
	_, err := ParseSentiment(string(s))
	return err == nil
}

// String returns the wire representation
func (s Sentiment) String() string {
	return string(s)
}

// UnmarshalJSON rejects anything outside the closed set
func (s *Sentiment) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: not a string", ErrInvalidSentiment)
	}
	parsed, err := ParseSentiment(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
