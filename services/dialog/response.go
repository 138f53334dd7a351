package dialog

import "salonbot/models"

// FormatResponse wraps plain text messages in the fulfillment envelope. Each
// message becomes its own text block; contexts may be nil for terminal turns.
func FormatResponse(messages []string, contexts []models.Context) *models.WebhookResponse {
	resp := &models.WebhookResponse{OutputContexts: contexts}
	for _, m := range messages {
		resp.FulfillmentMessages = append(resp.FulfillmentMessages, models.FulfillmentMessage{
			Text: &models.TextMessage{Text: []string{m}},
		})
	}
	return resp
}

// FormatResponseWithChips appends a chips payload after the text messages.
// An empty chip list produces no payload block at all.
func FormatResponseWithChips(messages []string, chips []string, contexts []models.Context) *models.WebhookResponse {
	resp := FormatResponse(messages, contexts)
	if block := chipsBlock(chips); block != nil {
		resp.FulfillmentMessages = append(resp.FulfillmentMessages, models.FulfillmentMessage{
			Payload: &models.RichPayload{RichContent: [][]models.RichBlock{{*block}}},
		})
	}
	return resp
}

// FormatResponseWithImageAndChips renders a rich card: image, descriptive
// text, an optional link button and a chip row, all in one payload column.
func FormatResponseWithImageAndChips(messages []string, imageURL, imageAlt, title, description, buttonText, buttonLink string, chips []string, contexts []models.Context) *models.WebhookResponse {
	resp := FormatResponse(messages, contexts)

	var blocks []models.RichBlock
	if imageURL != "" {
		blocks = append(blocks, models.RichBlock{
			Type:              "image",
			RawURL:            imageURL,
			AccessibilityText: imageAlt,
		})
	}
	if description != "" {
		blocks = append(blocks, models.RichBlock{
			Type:  "description",
			Title: title,
			Text:  []string{description},
		})
	}
	if buttonText != "" {
		blocks = append(blocks, models.RichBlock{
			Type: "button",
			Icon: &models.ButtonIcon{Type: "chevron_right", Color: "#FF5733"},
			Text: buttonText,
			Link: buttonLink,
		})
	}
	if block := chipsBlock(chips); block != nil {
		blocks = append(blocks, *block)
	}

	if len(blocks) > 0 {
		resp.FulfillmentMessages = append(resp.FulfillmentMessages, models.FulfillmentMessage{
			Payload: &models.RichPayload{RichContent: [][]models.RichBlock{blocks}},
		})
	}
	return resp
}

func chipsBlock(chips []string) *models.RichBlock {
	if len(chips) == 0 {
		return nil
	}
	options := make([]models.ChipOption, 0, len(chips))
	for _, c := range chips {
		options = append(options, models.ChipOption{Text: c})
	}
	return &models.RichBlock{Type: "chips", Options: options}
}
