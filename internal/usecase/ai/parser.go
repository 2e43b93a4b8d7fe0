package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/johnquangdev/hcp-crm/internal/domain/entities"
)

// Parser handles parsing and validation of model responses
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ParseExtraction decodes the model output into an ExtractedInfo.
// Fields may be null or missing; unknown keys are ignored.
func (p *Parser) ParseExtraction(content string) (*entities.ExtractedInfo, error) {
	// Extract JSON from response (the model might wrap it in markdown code blocks)
	content = extractJSON(content)

	if !strings.HasPrefix(content, "{") {
		return nil, fmt.Errorf("response is not a JSON object")
	}

	var info entities.ExtractedInfo
	dec := json.NewDecoder(bytes.NewReader([]byte(content)))
	if err := dec.Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after JSON object")
	}

	if info.HCPSentiment != nil && !info.HCPSentiment.IsValid() {
		return nil, fmt.Errorf("invalid hcp_sentiment %q", *info.HCPSentiment)
	}
	return &info, nil
}

func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	// Check if wrapped in markdown code block
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
