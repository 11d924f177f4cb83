package service

import (
	"context"
	"fmt"

	"github.com/anyulbade/billplz/internal/dto"
	"github.com/anyulbade/billplz/internal/money"
	"github.com/anyulbade/billplz/pkg/billplz"
)

func idParam(description string) []Param {
	return []Param{{Name: "id", Type: ParamString, Description: description, Required: true}}
}

var sampleAmount = fmt.Sprintf("e.g. 10000 = RM %s", money.FormatMinor(10000))

func catalog() []*Tool {
	return []*Tool{
		newTool("get_collection", "Get a Billplz collection by ID", idParam("The collection ID"),
			func(ctx context.Context, c *billplz.Client, in *dto.GetByIDInput) (*Result, error) {
				col, err := c.GetCollection(ctx, in.ID)
				if err != nil {
					return nil, err
				}
				return typedResult(col, col.ID), nil
			}),

		newTool("create_collection", "Create a new Billplz collection",
			[]Param{
				{Name: "title", Type: ParamString, Description: "Collection title", Required: true},
				{Name: "split_header", Type: ParamBoolean, Description: "Enable split header"},
				{Name: "split_payments", Type: ParamArray, Description: "Split payment recipients: objects with email, stack_order and optionally fixed_cut (sen) or variable_cut (percent)"},
			},
			func(ctx context.Context, c *billplz.Client, in *dto.CreateCollectionInput) (*Result, error) {
				b := c.CreateCollection(in.Title)
				if in.SplitHeader != nil {
					b.SplitHeader(*in.SplitHeader)
				}
				for _, sp := range in.SplitPayments {
					switch {
					case sp.FixedCut != nil:
						b.SplitPaymentWithFixedCut(sp.Email, *sp.FixedCut, sp.StackOrder)
					case sp.VariableCut != nil:
						b.SplitPaymentWithVariableCut(sp.Email, *sp.VariableCut, sp.StackOrder)
					default:
						b.SplitPayment(sp.Email, sp.StackOrder)
					}
				}
				col, err := b.Send(ctx)
				if err != nil {
					return nil, err
				}
				return typedResult(col, col.ID), nil
			}),

		newTool("get_bill", "Get a Billplz bill by ID", idParam("The bill ID"),
			func(ctx context.Context, c *billplz.Client, in *dto.GetByIDInput) (*Result, error) {
				bill, err := c.GetBill(ctx, in.ID)
				if err != nil {
					return nil, err
				}
				return typedResult(bill, bill.ID), nil
			}),

		newTool("create_bill", "Create a new Billplz bill for payment collection. Amount is in sen ("+sampleAmount+")",
			[]Param{
				{Name: "collection_id", Type: ParamString, Description: "Collection ID to create the bill under", Required: true},
				{Name: "email", Type: ParamString, Description: "Customer email", Required: true},
				{Name: "name", Type: ParamString, Description: "Customer name", Required: true},
				{Name: "amount", Type: ParamInteger, Description: "Amount in sen (" + sampleAmount + ")", Required: true},
				{Name: "callback_url", Type: ParamString, Description: "Callback URL for payment notifications", Required: true},
				{Name: "description", Type: ParamString, Description: "Bill description", Required: true},
				{Name: "due_at", Type: ParamString, Description: "Due date (YYYY-MM-DD)", Required: true},
				{Name: "mobile", Type: ParamString, Description: "Customer mobile number"},
				{Name: "redirect_url", Type: ParamString, Description: "Redirect URL after payment"},
				{Name: "deliver", Type: ParamBoolean, Description: "Have Billplz send the bill by email/SMS"},
				{Name: "reference_1_label", Type: ParamString, Description: "Reference 1 label"},
				{Name: "reference_1", Type: ParamString, Description: "Reference 1 value"},
				{Name: "reference_2_label", Type: ParamString, Description: "Reference 2 label"},
				{Name: "reference_2", Type: ParamString, Description: "Reference 2 value"},
			},
			func(ctx context.Context, c *billplz.Client, in *dto.CreateBillInput) (*Result, error) {
				b := c.CreateBill(in.CollectionID, in.Email, in.Name, in.Amount, in.CallbackURL, in.Description, in.DueAt)
				if in.Mobile != nil {
					b.Mobile(*in.Mobile)
				}
				if in.RedirectURL != nil {
					b.RedirectURL(*in.RedirectURL)
				}
				if in.Deliver != nil {
					b.Deliver(*in.Deliver)
				}
				if in.Reference1Label != nil {
					b.Reference1Label(*in.Reference1Label)
				}
				if in.Reference1 != nil {
					b.Reference1(*in.Reference1)
				}
				if in.Reference2Label != nil {
					b.Reference2Label(*in.Reference2Label)
				}
				if in.Reference2 != nil {
					b.Reference2(*in.Reference2)
				}
				bill, err := b.Send(ctx)
				if err != nil {
					return nil, err
				}
				return typedResult(bill, bill.ID), nil
			}),

		newTool("get_fpx_banks", "List all Malaysian FPX banks available for online payment", nil,
			func(_ context.Context, c *billplz.Client, _ *dto.EmptyInput) (*Result, error) {
				return typedResult(c.FpxBanks(), ""), nil
			}),

		newTool("get_bank_verification", "Get bank account verification status by account number",
			[]Param{{Name: "account_number", Type: ParamString, Description: "Bank account number", Required: true}},
			func(ctx context.Context, c *billplz.Client, in *dto.GetBankVerificationInput) (*Result, error) {
				body, err := c.GetBankVerification(ctx, in.AccountNumber)
				if err != nil {
					return nil, err
				}
				res := rawResult(body)
				res.ResourceID = in.AccountNumber
				return res, nil
			}),

		newTool("create_bank_verification", "Create a bank account verification for payout eligibility",
			[]Param{
				{Name: "name", Type: ParamString, Description: "Account holder name", Required: true},
				{Name: "id_no", Type: ParamString, Description: "Identity number (IC/passport)", Required: true},
				{Name: "acc_no", Type: ParamString, Description: "Bank account number", Required: true},
				{Name: "code", Type: ParamString, Description: "Bank SWIFT code", Required: true},
				{Name: "organization", Type: ParamBoolean, Description: "Is this an organization account"},
			},
			func(ctx context.Context, c *billplz.Client, in *dto.CreateBankVerificationInput) (*Result, error) {
				body, err := c.CreateBankVerification(in.Name, in.IDNo, in.AccNo, in.Code).
					Organization(in.Organization).
					Send(ctx)
				if err != nil {
					return nil, err
				}
				res := rawResult(body)
				res.ResourceID = in.AccNo
				return res, nil
			}),

		newTool("get_payout", "Get a mass payment instruction (payout) by ID", idParam("The payout ID"),
			func(ctx context.Context, c *billplz.Client, in *dto.GetByIDInput) (*Result, error) {
				body, err := c.GetPayout(ctx, in.ID)
				if err != nil {
					return nil, err
				}
				res := rawResult(body)
				res.ResourceID = in.ID
				return res, nil
			}),

		newTool("create_payout", "Create a mass payment instruction (payout). Total is in sen ("+sampleAmount+")",
			[]Param{
				{Name: "collection_id", Type: ParamString, Description: "Payout collection ID", Required: true},
				{Name: "bank_code", Type: ParamString, Description: "Bank SWIFT code", Required: true},
				{Name: "acc_no", Type: ParamString, Description: "Recipient bank account number", Required: true},
				{Name: "id_no", Type: ParamString, Description: "Recipient identity number", Required: true},
				{Name: "name", Type: ParamString, Description: "Recipient name", Required: true},
				{Name: "description", Type: ParamString, Description: "Payout description", Required: true},
				{Name: "total", Type: ParamInteger, Description: "Total amount in sen", Required: true},
			},
			func(ctx context.Context, c *billplz.Client, in *dto.CreatePayoutInput) (*Result, error) {
				body, err := c.CreatePayout(in.CollectionID, in.BankCode, in.AccNo, in.IDNo, in.Name, in.Description, in.Total).
					Send(ctx)
				if err != nil {
					return nil, err
				}
				return rawResult(body), nil
			}),

		newTool("get_payout_collection", "Get a payout collection by ID", idParam("The payout collection ID"),
			func(ctx context.Context, c *billplz.Client, in *dto.GetByIDInput) (*Result, error) {
				body, err := c.GetPayoutCollection(ctx, in.ID)
				if err != nil {
					return nil, err
				}
				res := rawResult(body)
				res.ResourceID = in.ID
				return res, nil
			}),

		newTool("create_payout_collection", "Create a new payout collection",
			[]Param{{Name: "title", Type: ParamString, Description: "Payout collection title", Required: true}},
			func(ctx context.Context, c *billplz.Client, in *dto.CreatePayoutCollectionInput) (*Result, error) {
				body, err := c.CreatePayoutCollection(in.Title).Send(ctx)
				if err != nil {
					return nil, err
				}
				return rawResult(body), nil
			}),
	}
}
