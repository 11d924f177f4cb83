package billplz

import (
	"context"
)

const payoutCollectionsPath = "/api/v4/mass_payment_instruction_collections"

type PayoutCollection struct {
	Title string `json:"title"`
}

func (c *Client) GetPayoutCollection(ctx context.Context, payoutCollectionID string) (string, error) {
	resp, err := c.get(ctx, resourcePath(payoutCollectionsPath, payoutCollectionID))
	if err != nil {
		return "", err
	}
	return passthrough(resp), nil
}

func (c *Client) CreatePayoutCollection(title string) *CreatePayoutCollectionBuilder {
	return &CreatePayoutCollectionBuilder{client: c, collection: PayoutCollection{Title: title}}
}

type CreatePayoutCollectionBuilder struct {
	client     *Client
	collection PayoutCollection
	sent       bool
}

func (b *CreatePayoutCollectionBuilder) Send(ctx context.Context) (string, error) {
	if b.sent {
		return "", ErrBuilderConsumed
	}
	b.sent = true

	resp, err := b.client.post(ctx, payoutCollectionsPath, b.collection)
	if err != nil {
		return "", err
	}
	return passthrough(resp), nil
}
