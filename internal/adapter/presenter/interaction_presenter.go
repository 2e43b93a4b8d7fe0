package presenter

import (
	"github.com/johnquangdev/hcp-crm/internal/adapter/dto/interaction"
	"github.com/johnquangdev/hcp-crm/internal/domain/entities"
)

// ToInteractionRecordResponse converts a record to its wire shape
func ToInteractionRecordResponse(r entities.InteractionRecord) interaction.InteractionRecordResponse {
	return interaction.InteractionRecordResponse{
		HCPName:              r.HCPName,
		InteractionType:      r.InteractionType,
		InteractionDatetime:  r.InteractionDatetime,
		Attendees:            r.Attendees,
		TopicsDiscussed:      r.TopicsDiscussed,
		Summary:              r.Summary,
		MaterialsShared:      r.MaterialsShared,
		HCPSentiment:         r.HCPSentiment.String(),
		Outcomes:             r.Outcomes,
		FollowUpActions:      r.FollowUpActions,
		AISuggestedFollowUps: r.AISuggestedFollowUps,
	}
}

// ToInteractionResponse converts an Interaction entity to InteractionResponse DTO
func ToInteractionResponse(i *entities.Interaction) *interaction.InteractionResponse {
	if i == nil {
		return nil
	}
	return &interaction.InteractionResponse{
		ID:                        i.ID,
		InteractionRecordResponse: ToInteractionRecordResponse(i.InteractionRecord),
		CreatedAt:                 i.CreatedAt,
		UpdatedAt:                 i.UpdatedAt,
	}
}

// ToInteractionListResponse converts a page of interactions. It never returns nil.
func ToInteractionListResponse(items []*entities.Interaction) []*interaction.InteractionResponse {
	out := make([]*interaction.InteractionResponse, 0, len(items))
	for _, i := range items {
		out = append(out, ToInteractionResponse(i))
	}
	return out
}

// ToCreateInteractionResponse builds the body returned after a successful insert
func ToCreateInteractionResponse(i *entities.Interaction) *interaction.CreateInteractionResponse {
	return &interaction.CreateInteractionResponse{
		Message:       "Interaction logged successfully",
		InteractionID: i.ID,
		Data:          ToInteractionRecordResponse(i.InteractionRecord),
	}
}

// ToExtractedInfoResponse converts an extraction result
func ToExtractedInfoResponse(info *entities.ExtractedInfo) *interaction.ExtractedInfoResponse {
	if info == nil {
		return nil
	}
	resp := &interaction.ExtractedInfoResponse{
		HCPName:         info.HCPName,
		InteractionType: info.InteractionType,
		Summary:         info.Summary,
	}
	if info.HCPSentiment != nil {
		s := info.HCPSentiment.String()
		resp.HCPSentiment = &s
	}
	return resp
}
