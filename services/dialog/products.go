package dialog

import (
	"context"

	"salonbot/models"
	"salonbot/utils"

	"go.uber.org/zap"
)

var productNavChips = []string{"View Other Products", "Schedule Appointment", "Restart Chat"}

func (s *DefaultDialogService) handleProductList(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	session, err := ExtractSession(req)
	if err != nil {
		utils.GetLogger().Warn("Product list with invalid session", zap.Error(err))
		return FormatResponse(
			[]string{"Something went wrong while processing your request. Please try again later."},
			nil,
		)
	}

	return FormatResponseWithChips(
		[]string{
			"✨ **Our Product Range**",
			"",
			"1️⃣ **Tea Tree Shampoo**\nRefreshes and cleanses your scalp, leaving it invigorated.",
			"",
			"2️⃣ **Shampoo One**\nA gentle shampoo, perfect for everyday use.",
			"",
			"3️⃣ **Double Hitter**\nA convenient shampoo-and-conditioner combo for your busy schedule.",
			"",
			"💡 **Select a product to learn more!**",
		},
		[]string{"Tea Tree Shampoo", "Shampoo One", "Double Hitter", "Restart Chat"},
		[]models.Context{
			{Name: session + "/contexts/" + ctxAwaitProductList, LifespanCount: stateLifespan},
		},
	)
}

// productCard renders a single product's rich response: image, description,
// a Buy Now button and the navigation chips, tracked by its own context.
func (s *DefaultDialogService) productCard(req *models.WebhookRequest, contextName, image, title, buyLink string, description []string) *models.WebhookResponse {
	session, err := ExtractSession(req)
	if err != nil {
		utils.GetLogger().Warn("Product card with invalid session",
			zap.String("context", contextName), zap.Error(err))
		return FormatResponse(
			[]string{"Something went wrong while processing your request. Please try again."},
			nil,
		)
	}

	blocks := []models.RichBlock{
		{
			Type:              "image",
			RawURL:            s.Opts.StaticBaseURL + "/static/" + image,
			AccessibilityText: title,
		},
		{
			Type:  "description",
			Title: title,
			Text:  description,
		},
		{
			Type: "button",
			Icon: &models.ButtonIcon{Type: "chevron_right", Color: "#FF5733"},
			Text: "Buy Now",
			Link: buyLink,
		},
		*chipsBlock(productNavChips),
	}

	return &models.WebhookResponse{
		FulfillmentMessages: []models.FulfillmentMessage{
			{Payload: &models.RichPayload{RichContent: [][]models.RichBlock{blocks}}},
		},
		OutputContexts: []models.Context{
			{Name: session + "/contexts/" + contextName, LifespanCount: stateLifespan},
		},
	}
}

func (s *DefaultDialogService) handleTeaTreeShampoo(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	return s.productCard(req, ctxAwaitTeaTreeShampoo,
		"tea-tree-shampoo.jpg",
		"Paul Mitchell Tea Tree Special Shampoo",
		"https://example.com/tea_tree_shampoo",
		[]string{
			"**Description**: An invigorating cleanser that washes away impurities, leaving the scalp feeling fresh and clean.",
			"**Key Benefits**:",
			"- Deep cleanses the scalp and hair.",
			"- Provides an invigorating sensation.",
			"- Leaves hair full of vitality and luster.",
			"**Usage Instructions**: Apply a small amount to damp hair. Lather and massage into the scalp for a few minutes. Rinse thoroughly. Suitable for all hair types.",
			"**Availability**: Available at Supercuts salons and authorized retailers.",
		})
}

func (s *DefaultDialogService) handleShampooOne(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	return s.productCard(req, ctxAwaitOneShampoo,
		"shampoo-one.jpg",
		"Paul Mitchell Shampoo One",
		"https://example.com/shampoo_one",
		[]string{
			"**Description**: A gentle shampoo designed to cleanse hair without stripping away essential moisture. Ideal for color-treated, fine, and medium hair types, it enhances manageability and adds deep shine.",
			"**Key Benefits**:",
			"- Gently cleanses and improves manageability.",
			"- Adds deep shine.",
			"- Suitable for color-treated hair.",
			"**Usage Instructions**: Apply a small amount to wet hair. Lather and rinse completely. Gentle enough for daily use.",
			"**Availability**: Available at Supercuts salons and authorized retailers.",
		})
}

func (s *DefaultDialogService) handleDoubleHitterShampoo(ctx context.Context, req *models.WebhookRequest) *models.WebhookResponse {
	return s.productCard(req, ctxAwaitDoubleHitterShampoo,
		"double-hitter.jpg",
		"MITCH by Paul Mitchell Double Hitter 2-in-1 Shampoo & Conditioner",
		"https://example.com/double_hitter",
		[]string{
			"**Description**: A sulfate-free formula that combines shampoo and conditioner in one step. It cleanses and conditions, leaving hair full and healthy-looking. Suitable for all hair types, especially fine to medium hair.",
			"**Key Benefits**:",
			"- Cleanses and conditions in one step.",
			"- Leaves hair with a healthy appearance.",
			"- Sulfate-free formula.",
			"**Usage Instructions**: Lather into damp hair and rinse. Ideal for daily use.",
			"**Availability**: Available at Supercuts salons and authorized retailers.",
		})
}
