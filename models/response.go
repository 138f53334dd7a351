package models

// WebhookResponse is the fulfillment envelope returned to Dialogflow.
// OutputContexts is omitted entirely when empty.
type WebhookResponse struct {
	FulfillmentMessages []FulfillmentMessage `json:"fulfillmentMessages"`
	OutputContexts      []Context            `json:"outputContexts,omitempty"`
}

// FulfillmentMessage is either a plain text segment or a rich-content payload.
type FulfillmentMessage struct {
	Text    *TextMessage `json:"text,omitempty"`
	Payload *RichPayload `json:"payload,omitempty"`
}

type TextMessage struct {
	Text []string `json:"text"`
}

type RichPayload struct {
	RichContent [][]RichBlock `json:"richContent"`
}

// RichBlock is one block inside a rich-content column. The Type field selects
// which of the remaining fields apply: "chips" uses Options, "image" uses
// RawURL and AccessibilityText, "description" uses Title and Text, "button"
// uses Text fields plus Link and Icon.
type RichBlock struct {
	Type              string       `json:"type"`
	RawURL            string       `json:"rawUrl,omitempty"`
	AccessibilityText string       `json:"accessibilityText,omitempty"`
	Title             string       `json:"title,omitempty"`
	Text              any          `json:"text,omitempty"`
	Link              string       `json:"link,omitempty"`
	Icon              *ButtonIcon  `json:"icon,omitempty"`
	Options           []ChipOption `json:"options,omitempty"`
}

type ButtonIcon struct {
	Type  string `json:"type"`
	Color string `json:"color"`
}

type ChipOption struct {
	Text string `json:"text"`
}
