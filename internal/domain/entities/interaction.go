package entities

import (
	"time"
)

// InteractionRecord is the client-submitted description of one encounter with an HCP.
// It is a value object; only HCPName and InteractionDatetime are mandatory.
type InteractionRecord struct {
	HCPName              string    `gorm:"column:hcp_name;type:varchar(255);not null" json:"hcp_name" validate:"required,max=255"`
	InteractionType      *string   `gorm:"column:interaction_type;type:varchar(100)" json:"interaction_type" validate:"omitempty,max=100"`
	InteractionDatetime  time.Time `gorm:"column:interaction_datetime;not null;index" json:"interaction_datetime" validate:"required"`
	Attendees            *string   `gorm:"column:attendees;type:text" json:"attendees"`
	TopicsDiscussed      *string   `gorm:"column:topics_discussed;type:text" json:"topics_discussed"`
	Summary              *string   `gorm:"column:summary;type:text" json:"summary"`
	MaterialsShared      *string   `gorm:"column:materials_shared;type:text" json:"materials_shared"`
	HCPSentiment         Sentiment `gorm:"column:hcp_sentiment;type:varchar(10);not null;default:Unknown" json:"hcp_sentiment" validate:"sentiment"`
	Outcomes             *string   `gorm:"column:outcomes;type:text" json:"outcomes"`
	FollowUpActions      *string   `gorm:"column:follow_up_actions;type:text" json:"follow_up_actions"`
	AISuggestedFollowUps *string   `gorm:"column:ai_suggested_follow_ups;type:text" json:"ai_suggested_follow_ups"`
}

// Interaction is a stored InteractionRecord plus the fields the store assigns
type Interaction struct {
	ID                int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	InteractionRecord `gorm:"embedded"`
	CreatedAt         time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for Interaction
func (Interaction) TableName() string {
	return "hcp_interactions"
}

// NewInteraction wraps a validated record for insertion; the store assigns
// the ID and timestamps.
func NewInteraction(record InteractionRecord) *Interaction {
	if record.HCPSentiment == "" {
		record.HCPSentiment = SentimentUnknown
	}
	return &Interaction{InteractionRecord: record}
}

// ExtractedInfo is the partial record a language model derives from free text.
// Every field is independently optional and it is never persisted directly.
type ExtractedInfo struct {
	HCPName         *string    `json:"hcp_name"`
	InteractionType *string    `json:"interaction_type"`
	Summary         *string    `json:"summary"`
	HCPSentiment    *Sentiment `json:"hcp_sentiment"`
}
