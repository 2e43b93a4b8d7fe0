package interaction

// CreateInteractionRequest documents the create payload. The handler decodes
// the body into a generic map first so every field error can be reported.
type CreateInteractionRequest struct {
	HCPName              string  `json:"hcp_name" example:"Dr. Jane Doe"`
	InteractionType      *string `json:"interaction_type,omitempty" example:"Meeting"`
	InteractionDatetime  string  `json:"interaction_datetime" example:"2025-05-03T19:30:00"`
	Attendees            *string `json:"attendees,omitempty"`
	TopicsDiscussed      *string `json:"topics_discussed,omitempty"`
	Summary              *string `json:"summary,omitempty"`
	MaterialsShared      *string `json:"materials_shared,omitempty"`
	HCPSentiment         *string `json:"hcp_sentiment,omitempty" enums:"Positive,Neutral,Negative,Unknown"`
	Outcomes             *string `json:"outcomes,omitempty"`
	FollowUpActions      *string `json:"follow_up_actions,omitempty"`
	AISuggestedFollowUps *string `json:"ai_suggested_follow_ups,omitempty"`
}

// ListInteractionsRequest holds pagination query parameters
type ListInteractionsRequest struct {
	Skip  int `query:"skip"`
	Limit int `query:"limit"`
}

// ProcessTextRequest is the body of POST /interactions/process-text
type ProcessTextRequest struct {
	Text *string `json:"text" validate:"required" example:"Met Dr. Smith today. Positive sentiment regarding Drug X results."`
}
