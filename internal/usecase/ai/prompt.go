package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/johnquangdev/hcp-crm/internal/domain/entities"
	pkgai "github.com/johnquangdev/hcp-crm/pkg/ai"
)

const systemPrompt = "You are an expert assistant analyzing notes about interactions with Healthcare Professionals (HCPs) " +
	"in the life sciences field. Extract the HCP name, the interaction type, a concise summary and the HCP sentiment " +
	"(valid sentiments: %s). Respond ONLY with the JSON object described in the format instructions."

const userPrompt = "Please extract the relevant details from the following interaction notes:\n\n---\n%s\n---\n\n%s"

// ExtractionSchema describes ExtractedInfo to the model
func ExtractionSchema() jsonschema.Definition {
	sentiments := make([]string, 0, len(entities.Sentiments()))
	for _, s := range entities.Sentiments() {
		sentiments = append(sentiments, s.String())
	}

	return jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"hcp_name": {
				Type:        jsonschema.String,
				Description: "Name of the Healthcare Professional, or null if not mentioned",
			},
			"interaction_type": {
				Type:        jsonschema.String,
				Description: "Type of interaction such as Meeting, Call or Email, or null if unclear",
			},
			"summary": {
				Type:        jsonschema.String,
				Description: "Concise summary of the interaction, or null",
			},
			"hcp_sentiment": {
				Type:        jsonschema.String,
				Enum:        sentiments,
				Description: "Sentiment expressed by the HCP; Unknown or null when there are no cues",
			},
		},
	}
}

// FormatInstructions renders the schema as instructions appended to the user turn
func FormatInstructions() string {
	schema, _ := json.Marshal(ExtractionSchema())
	return "The output should be formatted as a JSON object that conforms to the JSON schema below. " +
		"Every field is optional: use null for anything the notes do not state. Do not invent values.\n\n" +
		"Here is the output schema:\n```\n" + string(schema) + "\n```"
}

// BuildExtractionPrompt composes the system directive, the notes and the format instructions
func BuildExtractionPrompt(text string) []pkgai.Message {
	names := make([]string, 0, len(entities.Sentiments()))
	for _, s := range entities.Sentiments() {
		names = append(names, s.String())
	}
	return []pkgai.Message{
		{Role: pkgai.RoleSystem, Content: fmt.Sprintf(systemPrompt, strings.Join(names, ", "))},
		{Role: pkgai.RoleUser, Content: fmt.Sprintf(userPrompt, text, FormatInstructions())},
	}
}
