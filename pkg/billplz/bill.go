package billplz

import (
	"context"
)

const billsPath = "/api/v3/bills"

// Bill is the create-bill payload. Pointer fields are optional and omitted
// from the JSON body while nil.
type Bill struct {
	CollectionID    string  `json:"collection_id"`
	Email           string  `json:"email"`
	Mobile          *string `json:"mobile,omitempty"`
	Name            string  `json:"name"`
	Amount          int64   `json:"amount"`
	CallbackURL     string  `json:"callback_url"`
	Description     string  `json:"description"`
	DueAt           string  `json:"due_at"`
	RedirectURL     *string `json:"redirect_url,omitempty"`
	Deliver         *bool   `json:"deliver,omitempty"`
	Reference1Label *string `json:"reference_1_label,omitempty"`
	Reference1      *string `json:"reference_1,omitempty"`
	Reference2Label *string `json:"reference_2_label,omitempty"`
	Reference2      *string `json:"reference_2,omitempty"`
}

type BillResponse struct {
	ID              string  `json:"id"`
	CollectionID    string  `json:"collection_id"`
	Paid            bool    `json:"paid"`
	State           string  `json:"state"`
	Amount          int64   `json:"amount"`
	PaidAmount      int64   `json:"paid_amount"`
	DueAt           string  `json:"due_at"`
	Email           string  `json:"email"`
	Mobile          *string `json:"mobile,omitempty"`
	Name            string  `json:"name"`
	URL             *string `json:"url,omitempty"`
	Reference1Label *string `json:"reference_1_label,omitempty"`
	Reference1      *string `json:"reference_1,omitempty"`
	Reference2Label *string `json:"reference_2_label,omitempty"`
	Reference2      *string `json:"reference_2,omitempty"`
	RedirectURL     *string `json:"redirect_url,omitempty"`
	CallbackURL     string  `json:"callback_url"`
	Description     string  `json:"description"`
	Deliver         *bool   `json:"deliver,omitempty"`
	PaidAt          *string `json:"paid_at,omitempty"`
}

func (c *Client) GetBill(ctx context.Context, billID string) (*BillResponse, error) {
	resp, err := c.get(ctx, resourcePath(billsPath, billID))
	if err != nil {
		return nil, err
	}
	return decodeResponse[BillResponse](resp)
}

// CreateBill starts a bill with its required fields. amount is in minor
// currency units (sen).
func (c *Client) CreateBill(collectionID, email, name string, amount int64, callbackURL, description, dueAt string) *CreateBillBuilder {
	return &CreateBillBuilder{
		client: c,
		bill: Bill{
			CollectionID: collectionID,
			Email:        email,
			Name:         name,
			Amount:       amount,
			CallbackURL:  callbackURL,
			Description:  description,
			DueAt:        dueAt,
		},
	}
}

type CreateBillBuilder struct {
	client *Client
	bill   Bill
	sent   bool
}

func (b *CreateBillBuilder) Mobile(mobile string) *CreateBillBuilder {
	b.bill.Mobile = &mobile
	return b
}

func (b *CreateBillBuilder) RedirectURL(redirectURL string) *CreateBillBuilder {
	b.bill.RedirectURL = &redirectURL
	return b
}

func (b *CreateBillBuilder) Deliver(deliver bool) *CreateBillBuilder {
	b.bill.Deliver = &deliver
	return b
}

func (b *CreateBillBuilder) Reference1Label(label string) *CreateBillBuilder {
	b.bill.Reference1Label = &label
	return b
}

func (b *CreateBillBuilder) Reference1(reference string) *CreateBillBuilder {
	b.bill.Reference1 = &reference
	return b
}

func (b *CreateBillBuilder) Reference2Label(label string) *CreateBillBuilder {
	b.bill.Reference2Label = &label
	return b
}

func (b *CreateBillBuilder) Reference2(reference string) *CreateBillBuilder {
	b.bill.Reference2 = &reference
	return b
}

// Payload returns a copy of the body Send would post.
func (b *CreateBillBuilder) Payload() Bill {
	return b.bill
}

func (b *CreateBillBuilder) Send(ctx context.Context) (*BillResponse, error) {
	if b.sent {
		return nil, ErrBuilderConsumed
	}
	b.sent = true

	resp, err := b.client.post(ctx, billsPath, b.bill)
	if err != nil {
		return nil, err
	}
	return decodeResponse[BillResponse](resp)
}
