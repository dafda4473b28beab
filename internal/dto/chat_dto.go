package dto

// ChatTurnDTO is one prior conversation turn as resent by the caller.
type ChatTurnDTO struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content"`
}

type SupportChatRequest struct {
	Message string        `json:"message" validate:"required"`
	History []ChatTurnDTO `json:"history" validate:"dive"`
}

type SupportChatResponse struct {
	Reply string `json:"reply"`
}

type RecommendRequest struct {
	Message string        `json:"message" validate:"required"`
	History []ChatTurnDTO `json:"history" validate:"dive"`
}

type ProductDTO struct {
	Id         string `json:"id"`
	Name       string `json:"name"`
	Price      int    `json:"price"`
	ProductURL string `json:"product_url"`
	ImageURL   string `json:"image_url"`
}

type RecommendResponse struct {
	Reply string `json:"reply"`

	// Dialogue-controller verdict for this turn, so the UI can render the
	// canonical choice buttons without parsing the reply text.
	State   string   `json:"state"`
	Choices []string `json:"choices,omitempty"`

	// Bounded ranked candidates; empty means no eligible stock.
	Products []ProductDTO `json:"products,omitempty"`
}
