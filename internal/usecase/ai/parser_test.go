package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/hcp-crm/internal/domain/entities"
)

func TestParseExtraction(t *testing.T) {
	p := NewParser()

	t.Run("full object", func(t *testing.T) {
		info, err := p.ParseExtraction(`{"hcp_name":"Dr. Smith","interaction_type":"Meeting","summary":"Discussed Drug X","hcp_sentiment":"Positive"}`)
		require.NoError(t, err)
		require.NotNil(t, info.HCPName)
		assert.Equal(t, "Dr. Smith", *info.HCPName)
		require.NotNil(t, info.HCPSentiment)
		assert.Equal(t, entities.SentimentPositive, *info.HCPSentiment)
	})

	t.Run("partial with nulls", func(t *testing.T) {
		info, err := p.ParseExtraction(`{"hcp_name":"Dr. Lee","interaction_type":null,"summary":null,"hcp_sentiment":null}`)
		require.NoError(t, err)
		assert.Equal(t, "Dr. Lee", *info.HCPName)
		assert.Nil(t, info.InteractionType)
		assert.Nil(t, info.Summary)
		assert.Nil(t, info.HCPSentiment)
	})

	t.Run("code fence and extra keys", func(t *testing.T) {
		info, err := p.ParseExtraction("```json\n{\"hcp_name\":\"Dr. Ng\",\"confidence\":0.9}\n```")
		require.NoError(t, err)
		assert.Equal(t, "Dr. Ng", *info.HCPName)
	})

	t.Run("empty object", func(t *testing.T) {
		info, err := p.ParseExtraction(`{}`)
		require.NoError(t, err)
		assert.Equal(t, &entities.ExtractedInfo{}, info)
	})

	failures := map[string]string{
		"prose":                 "Sure! Dr. Smith seemed happy.",
		"array":                 `[{"hcp_name":"Dr. Smith"}]`,
		"null literal":          `null`,
		"truncated":             `{"hcp_name":"Dr. Sm`,
		"wrong type":            `{"hcp_name":42}`,
		"unknown sentiment":     `{"hcp_sentiment":"Happy"}`,
		"lowercase enum":        `{"hcp_sentiment":"positive"}`,
		"trailing data":         `{"hcp_name":"A"} {"hcp_name":"B"}`,
		"stray closing brace":   `{"hcp_name":"x"}}`,
		"stray closing bracket": `{"hcp_name":"x"}]`,
		"trailing prose":        `{"hcp_name":"x"} hope this helps`,
	}
	for name, raw := range failures {
		t.Run(name, func(t *testing.T) {
			info, err := p.ParseExtraction(raw)
			assert.Error(t, err)
			assert.Nil(t, info)
		})
	}
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, extractJSON("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, extractJSON("  {\"a\":1}  "))
}
