package billplz

import (
	"context"
)

const collectionsPath = "/api/v4/collections"

// SplitPayment routes part of a bill's proceeds to another Billplz account.
// Only one of FixedCut and VariableCut is expected to be set.
type SplitPayment struct {
	Email       string  `json:"email"`
	FixedCut    *int64  `json:"fixed_cut,omitempty"`
	VariableCut *string `json:"variable_cut,omitempty"`
	StackOrder  int     `json:"stack_order"`
}

type Collection struct {
	Title         string         `json:"title"`
	SplitHeader   *bool          `json:"split_header,omitempty"`
	SplitPayments []SplitPayment `json:"split_payments,omitempty"`
}

type Logo struct {
	ThumbURL  *string `json:"thumb_url,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

type CollectionResponse struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	SplitHeader   *bool          `json:"split_header,omitempty"`
	SplitPayments []SplitPayment `json:"split_payments,omitempty"`
	Logo          *Logo          `json:"logo,omitempty"`
	Status        string         `json:"status"`
}

func (c *Client) GetCollection(ctx context.Context, collectionID string) (*CollectionResponse, error) {
	resp, err := c.get(ctx, resourcePath(collectionsPath, collectionID))
	if err != nil {
		return nil, err
	}
	return decodeResponse[CollectionResponse](resp)
}

func (c *Client) CreateCollection(title string) *CreateCollectionBuilder {
	return &CreateCollectionBuilder{client: c, collection: Collection{Title: title}}
}

type CreateCollectionBuilder struct {
	client     *Client
	collection Collection
	sent       bool
}

func (b *CreateCollectionBuilder) SplitHeader(splitHeader bool) *CreateCollectionBuilder {
	b.collection.SplitHeader = &splitHeader
	return b
}

func (b *CreateCollectionBuilder) SplitPayment(email string, stackOrder int) *CreateCollectionBuilder {
	b.collection.SplitPayments = append(b.collection.SplitPayments, SplitPayment{
		Email:      email,
		StackOrder: stackOrder,
	})
	return b
}

func (b *CreateCollectionBuilder) SplitPaymentWithFixedCut(email string, fixedCut int64, stackOrder int) *CreateCollectionBuilder {
	b.collection.SplitPayments = append(b.collection.SplitPayments, SplitPayment{
		Email:      email,
		FixedCut:   &fixedCut,
		StackOrder: stackOrder,
	})
	return b
}

func (b *CreateCollectionBuilder) SplitPaymentWithVariableCut(email, variableCut string, stackOrder int) *CreateCollectionBuilder {
	b.collection.SplitPayments = append(b.collection.SplitPayments, SplitPayment{
		Email:       email,
		VariableCut: &variableCut,
		StackOrder:  stackOrder,
	})
	return b
}

// Payload returns a copy of the body Send would post.
func (b *CreateCollectionBuilder) Payload() Collection {
	out := b.collection
	if len(out.SplitPayments) > 0 {
		out.SplitPayments = append([]SplitPayment(nil), out.SplitPayments...)
	}
	return out
}

func (b *CreateCollectionBuilder) Send(ctx context.Context) (*CollectionResponse, error) {
	if b.sent {
		return nil, ErrBuilderConsumed
	}
	b.sent = true

	resp, err := b.client.post(ctx, collectionsPath, b.collection)
	if err != nil {
		return nil, err
	}
	return decodeResponse[CollectionResponse](resp)
}
