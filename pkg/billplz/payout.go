package billplz

import (
	"context"
)

const payoutsPath = "/api/v4/mass_payment_instructions"

// Payout is a mass payment instruction: one disbursement to a verified bank
// account, grouped under a payout collection. Total is in minor units.
type Payout struct {
	CollectionID      string `json:"mass_payment_instruction_collection_id"`
	BankCode          string `json:"bank_code"`
	BankAccountNumber string `json:"bank_account_number"`
	IdentityNumber    string `json:"identity_number"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	Total             int64  `json:"total"`
}

func (c *Client) GetPayout(ctx context.Context, payoutID string) (string, error) {
	resp, err := c.get(ctx, resourcePath(payoutsPath, payoutID))
	if err != nil {
		return "", err
	}
	return passthrough(resp), nil
}

func (c *Client) CreatePayout(collectionID, bankCode, bankAccountNumber, identityNumber, name, description string, total int64) *CreatePayoutBuilder {
	return &CreatePayoutBuilder{
		client: c,
		payout: Payout{
			CollectionID:      collectionID,
			BankCode:          bankCode,
			BankAccountNumber: bankAccountNumber,
			IdentityNumber:    identityNumber,
			Name:              name,
			Description:       description,
			Total:             total,
		},
	}
}

type CreatePayoutBuilder struct {
	client *Client
	payout Payout
	sent   bool
}

func (b *CreatePayoutBuilder) Payload() Payout {
	return b.payout
}

func (b *CreatePayoutBuilder) Send(ctx context.Context) (string, error) {
	if b.sent {
		return "", ErrBuilderConsumed
	}
	b.sent = true

	resp, err := b.client.post(ctx, payoutsPath, b.payout)
	if err != nil {
		return "", err
	}
	return passthrough(resp), nil
}
