package interaction

import "time"

// InteractionRecordResponse is the record as submitted
type InteractionRecordResponse struct {
	HCPName              string    `json:"hcp_name"`
	InteractionType      *string   `json:"interaction_type"`
	InteractionDatetime  time.Time `json:"interaction_datetime"`
	Attendees            *string   `json:"attendees"`
	TopicsDiscussed      *string   `json:"topics_discussed"`
	Summary              *string   `json:"summary"`
	MaterialsShared      *string   `json:"materials_shared"`
	HCPSentiment         string    `json:"hcp_sentiment"`
	Outcomes             *string   `json:"outcomes"`
	FollowUpActions      *string   `json:"follow_up_actions"`
	AISuggestedFollowUps *string   `json:"ai_suggested_follow_ups"`
}

// InteractionResponse is a stored interaction
type InteractionResponse struct {
	ID int64 `json:"id"`
	InteractionRecordResponse
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateInteractionResponse is returned with 201 after a successful insert
type CreateInteractionResponse struct {
	Message       string                    `json:"message"`
	InteractionID int64                     `json:"interaction_id"`
	Data          InteractionRecordResponse `json:"data"`
}

// ExtractedInfoResponse is the partial record derived from free text.
// Absent fields are rendered as null.
type ExtractedInfoResponse struct {
	HCPName         *string `json:"hcp_name"`
	InteractionType *string `json:"interaction_type"`
	Summary         *string `json:"summary"`
	HCPSentiment    *string `json:"hcp_sentiment"`
}
