package billplz

import (
	"context"
)

const bankVerificationPath = "/api/v3/bank_verification_services"

// Bank is a bank account verification request.
type Bank struct {
	Name         string `json:"name"`
	IDNo         string `json:"id_no"`
	AccNo        string `json:"acc_no"`
	Code         string `json:"code"`
	Organization bool   `json:"organization"`
}

// GetBankVerification returns the raw response body for the account.
func (c *Client) GetBankVerification(ctx context.Context, bankAccountNumber string) (string, error) {
	resp, err := c.get(ctx, resourcePath(bankVerificationPath, bankAccountNumber))
	if err != nil {
		return "", err
	}
	return passthrough(resp), nil
}

func (c *Client) CreateBankVerification(name, idNo, accNo, code string) *CreateBankVerificationBuilder {
	return &CreateBankVerificationBuilder{
		client: c,
		bank: Bank{
			Name:  name,
			IDNo:  idNo,
			AccNo: accNo,
			Code:  code,
		},
	}
}

type CreateBankVerificationBuilder struct {
	client *Client
	bank   Bank
	sent   bool
}

func (b *CreateBankVerificationBuilder) Organization(organization bool) *CreateBankVerificationBuilder {
	b.bank.Organization = organization
	return b
}

func (b *CreateBankVerificationBuilder) Payload() Bank {
	return b.bank
}

func (b *CreateBankVerificationBuilder) Send(ctx context.Context) (string, error) {
	if b.sent {
		return "", ErrBuilderConsumed
	}
	b.sent = true

	resp, err := b.client.post(ctx, bankVerificationPath, b.bank)
	if err != nil {
		return "", err
	}
	return passthrough(resp), nil
}
