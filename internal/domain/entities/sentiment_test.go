package entities

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSentiment(t *testing.T) {
	for _, s := range Sentiments() {
		got, err := ParseSentiment(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
		assert.True(t, got.IsValid())
	}

	for _, bad := range []string{"", "positive", "POSITIVE", "Happy", " Neutral"} {
		_, err := ParseSentiment(bad)
		assert.True(t, errors.Is(err, ErrInvalidSentiment), "value %q", bad)
	}
}

func TestSentiment_JSON(t *testing.T) {
	var holder struct {
		S *Sentiment `json:"s"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"s":"Negative"}`), &holder))
	require.NotNil(t, holder.S)
	assert.Equal(t, SentimentNegative, *holder.S)

	holder.S = nil
	require.NoError(t, json.Unmarshal([]byte(`{"s":null}`), &holder))
	assert.Nil(t, holder.S)

	assert.Error(t, json.Unmarshal([]byte(`{"s":"Ecstatic"}`), &holder))
	assert.Error(t, json.Unmarshal([]byte(`{"s":3}`), &holder))

	out, err := json.Marshal(SentimentPositive)
	require.NoError(t, err)
	assert.JSONEq(t, `"Positive"`, string(out))
}
