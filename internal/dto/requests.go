package dto

type GetByIDInput struct {
	ID string `json:"id" validate:"required"`
}

func (in *GetByIDInput) ResourceID() string { return in.ID }

type EmptyInput struct{}

type SplitPaymentInput struct {
	Email       string  `json:"email" validate:"required,email"`
	FixedCut    *int64  `json:"fixed_cut,omitempty" validate:"omitempty,gte=0,excluded_with=VariableCut"`
	VariableCut *string `json:"variable_cut,omitempty" validate:"omitempty,numeric"`
	StackOrder  int     `json:"stack_order" validate:"gte=0"`
}

type CreateCollectionInput struct {
	Title         string              `json:"title" validate:"required"`
	SplitHeader   *bool               `json:"split_header,omitempty"`
	SplitPayments []SplitPaymentInput `json:"split_payments,omitempty" validate:"omitempty,dive"`
}

type CreateBillInput struct {
	CollectionID    string  `json:"collection_id" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Name            string  `json:"name" validate:"required"`
	Amount          int64   `json:"amount" validate:"gt=0"`
	CallbackURL     string  `json:"callback_url" validate:"required,url"`
	Description     string  `json:"description" validate:"required"`
	DueAt           string  `json:"due_at" validate:"required,datetime=2006-01-02"`
	Mobile          *string `json:"mobile,omitempty"`
	RedirectURL     *string `json:"redirect_url,omitempty" validate:"omitempty,url"`
	Deliver         *bool   `json:"deliver,omitempty"`
	Reference1Label *string `json:"reference_1_label,omitempty"`
	Reference1      *string `json:"reference_1,omitempty"`
	Reference2Label *string `json:"reference_2_label,omitempty"`
	Reference2      *string `json:"reference_2,omitempty"`
}

type GetBankVerificationInput struct {
	AccountNumber string `json:"account_number" validate:"required"`
}

func (in *GetBankVerificationInput) ResourceID() string { return in.AccountNumber }

type CreateBankVerificationInput struct {
	Name         string `json:"name" validate:"required"`
	IDNo         string `json:"id_no" validate:"required"`
	AccNo        string `json:"acc_no" validate:"required"`
	Code         string `json:"code" validate:"required"`
	Organization bool   `json:"organization"`
}

type CreatePayoutInput struct {
	CollectionID string `json:"collection_id" validate:"required"`
	BankCode     string `json:"bank_code" validate:"required"`
	AccNo        string `json:"acc_no" validate:"required"`
	IDNo         string `json:"id_no" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Total        int64  `json:"total" validate:"gt=0"`
}

type CreatePayoutCollectionInput struct {
	Title string `json:"title" validate:"required"`
}
