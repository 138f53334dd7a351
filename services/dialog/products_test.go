package dialog

import (
	"context"
	"strings"
	"testing"

	"salonbot/models"
)

func TestProductList(t *testing.T) {
	s := newTestService(nil, nil, nil)

	resp := s.Dispatch(context.Background(), newReq("userWantsProducts", nil))

	msgs := textMessages(resp)
	if len(msgs) == 0 || !strings.Contains(msgs[0], "Our Product Range") {
		t.Errorf("messages = %v", msgs)
	}
	chips := chipTexts(resp)
	if len(chips) != 4 || chips[0] != "Tea Tree Shampoo" || chips[3] != "Restart Chat" {
		t.Errorf("chips = %v", chips)
	}
	awaitContext(t, resp, ctxAwaitProductList)
}

func TestProductCards(t *testing.T) {
	s := newTestService(nil, nil, nil)

	tests := []struct {
		action  string
		context string
		title   string
		image   string
		link    string
	}{
		{"userWantsTeaTreeShampoo", ctxAwaitTeaTreeShampoo,
			"Paul Mitchell Tea Tree Special Shampoo",
			"http://localhost:8080/static/tea-tree-shampoo.jpg",
			"https://example.com/tea_tree_shampoo"},
		{"userWantsShampooOne", ctxAwaitOneShampoo,
			"Paul Mitchell Shampoo One",
			"http://localhost:8080/static/shampoo-one.jpg",
			"https://example.com/shampoo_one"},
		{"userWantsDoubleHitterShampoo", ctxAwaitDoubleHitterShampoo,
			"MITCH by Paul Mitchell Double Hitter 2-in-1 Shampoo & Conditioner",
			"http://localhost:8080/static/double-hitter.jpg",
			"https://example.com/double_hitter"},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			resp := s.Dispatch(context.Background(), newReq(tt.action, nil))
			awaitContext(t, resp, tt.context)

			blocks := richBlocks(t, resp)
			if len(blocks) != 4 {
				t.Fatalf("expected image, description, button and chips blocks, got %d", len(blocks))
			}
			if blocks[0].Type != "image" || blocks[0].RawURL != tt.image {
				t.Errorf("image block = %+v", blocks[0])
			}
			if blocks[1].Type != "description" || blocks[1].Title != tt.title {
				t.Errorf("description block = %+v", blocks[1])
			}
			if blocks[2].Type != "button" || blocks[2].Link != tt.link {
				t.Errorf("button block = %+v", blocks[2])
			}
			if blocks[3].Type != "chips" || len(blocks[3].Options) != 3 {
				t.Errorf("chips block = %+v", blocks[3])
			}
		})
	}
}

func richBlocks(t *testing.T, resp *models.WebhookResponse) []models.RichBlock {
	t.Helper()
	for _, m := range resp.FulfillmentMessages {
		if m.Payload != nil && len(m.Payload.RichContent) > 0 {
			return m.Payload.RichContent[0]
		}
	}
	t.Fatal("response has no rich payload")
	return nil
}

func TestFormatResponseWithChipsOmitsEmptyChips(t *testing.T) {
	resp := FormatResponseWithChips([]string{"hello"}, nil, nil)
	for _, m := range resp.FulfillmentMessages {
		if m.Payload != nil {
			t.Fatal("empty chip list must not produce a payload block")
		}
	}
}

func TestFormatResponseWithImageAndChips(t *testing.T) {
	resp := FormatResponseWithImageAndChips(
		[]string{"take a look"},
		"http://localhost:8080/static/shampoo-one.jpg", "Shampoo One bottle",
		"Shampoo One", "A gentle everyday shampoo.",
		"Buy Now", "https://example.com/shampoo_one",
		[]string{"Back"},
		nil,
	)

	blocks := richBlocks(t, resp)
	if len(blocks) != 4 {
		t.Fatalf("expected 4 blocks, got %d", len(blocks))
	}
	if blocks[0].Type != "image" || blocks[3].Type != "chips" {
		t.Errorf("block order = %v, %v, %v, %v", blocks[0].Type, blocks[1].Type, blocks[2].Type, blocks[3].Type)
	}
}
