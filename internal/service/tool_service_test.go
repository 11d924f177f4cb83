package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyulbade/billplz/internal/dto"
	"github.com/anyulbade/billplz/internal/model"
	"github.com/anyulbade/billplz/pkg/billplz"
)

const billBody = `{
	"id": "8X0Iyzaw",
	"collection_id": "inbmmepb",
	"paid": false,
	"state": "due",
	"amount": 10000,
	"paid_amount": 0,
	"due_at": "2025-12-31",
	"email": "api@billplz.com",
	"name": "Michael",
	"url": "https://www.billplz.com/bills/8X0Iyzaw",
	"callback_url": "http://example.com/webhook/",
	"description": "Maecenas eu placerat ante."
}`

func validBillInput() *dto.CreateBillInput {
	return &dto.CreateBillInput{
		CollectionID: "inbmmepb",
		Email:        "api@billplz.com",
		Name:         "Michael",
		Amount:       10000,
		CallbackURL:  "http://example.com/webhook/",
		Description:  "Maecenas eu placerat ante.",
		DueAt:        "2025-12-31",
	}
}

func TestToolService_Catalog(t *testing.T) {
	svc := NewToolService(billplz.New(billplz.Staging, "k"), nil)

	var names []string
	for _, tool := range svc.Tools() {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, tool.Name)
	}
	assert.Equal(t, []string{
		"get_collection", "create_collection",
		"get_bill", "create_bill",
		"get_fpx_banks", "get_bank_verification", "create_bank_verification",
		"get_payout", "create_payout",
		"get_payout_collection", "create_payout_collection",
	}, names)

	t.Run("required params match the input struct", func(t *testing.T) {
		tool, err := svc.Tool("create_bill")
		require.NoError(t, err)

		var required []string
		for _, p := range tool.Params {
			if p.Required {
				required = append(required, p.Name)
			}
		}
		assert.ElementsMatch(t, []string{"collection_id", "email", "name", "amount", "callback_url", "description", "due_at"}, required)
		assert.IsType(t, &dto.CreateBillInput{}, tool.NewInput())
	})

	t.Run("money example in descriptions", func(t *testing.T) {
		tool, err := svc.Tool("create_bill")
		require.NoError(t, err)
		assert.Contains(t, tool.Description, "10000 = RM 100.00")
	})

	t.Run("bad: unknown tool", func(t *testing.T) {
		_, err := svc.Tool("delete_bill")
		assert.ErrorIs(t, err, ErrUnknownTool)
	})
}

func TestToolService_Decode(t *testing.T) {
	svc := NewToolService(billplz.New(billplz.Staging, "k"), nil)

	t.Run("happy: decodes into the tool input", func(t *testing.T) {
		in, err := svc.Decode("get_bill", []byte(`{"id":"8X0Iyzaw"}`))
		require.NoError(t, err)
		assert.Equal(t, &dto.GetByIDInput{ID: "8X0Iyzaw"}, in)
	})

	t.Run("edge: empty body is an empty input", func(t *testing.T) {
		in, err := svc.Decode("get_fpx_banks", nil)
		require.NoError(t, err)
		assert.Equal(t, &dto.EmptyInput{}, in)
	})

	t.Run("bad: malformed json", func(t *testing.T) {
		_, err := svc.Decode("create_bill", []byte(`{"amount":"ten"}`))
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Contains(t, err.Error(), "malformed input")
	})

	t.Run("bad: unknown tool", func(t *testing.T) {
		_, err := svc.Decode("nope", []byte(`{}`))
		assert.ErrorIs(t, err, ErrUnknownTool)
	})
}

func TestToolService_InvokeTyped(t *testing.T) {
	t.Run("happy: get bill", func(t *testing.T) {
		client, up := newUpstream(t, http.StatusOK, billBody)
		journal := &fakeJournal{}
		svc := NewToolService(client, journal)

		res, err := svc.Invoke(context.Background(), "get_bill", &dto.GetByIDInput{ID: "8X0Iyzaw"})
		require.NoError(t, err)
		assert.False(t, res.IsRaw())

		bill, ok := res.Value.(*billplz.BillResponse)
		require.True(t, ok)
		assert.Equal(t, int64(10000), bill.Amount)
		assert.Equal(t, "/api/v3/bills/8X0Iyzaw", up.path)

		entry := journal.last(t)
		assert.Equal(t, "get_bill", entry.Tool)
		assert.Equal(t, model.OutcomeOK, entry.Outcome)
		assert.Equal(t, "8X0Iyzaw", entry.ResourceID)
		assert.Empty(t, entry.ErrorMessage)
	})

	t.Run("happy: create bill sends only given optionals", func(t *testing.T) {
		client, up := newUpstream(t, http.StatusOK, billBody)
		svc := NewToolService(client, nil)

		in := validBillInput()
		in.Deliver = boolPtr(false)
		in.Reference1 = strPtr("")

		res, err := svc.Invoke(context.Background(), "create_bill", in)
		require.NoError(t, err)
		assert.Equal(t, "8X0Iyzaw", res.ResourceID)
		assert.Equal(t, http.MethodPost, up.method)

		fields := up.fields(t)
		assert.Equal(t, false, fields["deliver"])
		assert.Equal(t, "", fields["reference_1"])
		assert.Equal(t, float64(10000), fields["amount"])
		for _, key := range []string{"mobile", "redirect_url", "reference_1_label", "reference_2_label", "reference_2"} {
			assert.NotContains(t, fields, key)
		}
	})

	t.Run("happy: create collection maps split payments", func(t *testing.T) {
		client, up := newUpstream(t, http.StatusOK, `{"id":"col1","title":"Split","status":"active"}`)
		svc := NewToolService(client, nil)

		_, err := svc.Invoke(context.Background(), "create_collection", &dto.CreateCollectionInput{
			Title:       "Split",
			SplitHeader: boolPtr(true),
			SplitPayments: []dto.SplitPaymentInput{
				{Email: "a@example.com", FixedCut: int64Ptr(100), StackOrder: 0},
				{Email: "b@example.com", VariableCut: strPtr("20"), StackOrder: 1},
				{Email: "c@example.com", StackOrder: 2},
			},
		})
		require.NoError(t, err)

		fields := up.fields(t)
		assert.Equal(t, true, fields["split_header"])
		splits, ok := fields["split_payments"].([]any)
		require.True(t, ok)
		require.Len(t, splits, 3)

		first := splits[0].(map[string]any)
		assert.Equal(t, float64(100), first["fixed_cut"])
		assert.NotContains(t, first, "variable_cut")

		second := splits[1].(map[string]any)
		assert.Equal(t, "20", second["variable_cut"])
		assert.NotContains(t, second, "fixed_cut")

		third := splits[2].(map[string]any)
		assert.NotContains(t, third, "fixed_cut")
		assert.NotContains(t, third, "variable_cut")
		assert.Equal(t, float64(2), third["stack_order"])
	})

	t.Run("happy: fpx banks never calls upstream", func(t *testing.T) {
		client, up := newUpstream(t, http.StatusInternalServerError, ``)
		svc := NewToolService(client, nil)

		res, err := svc.Invoke(context.Background(), "get_fpx_banks", &dto.EmptyInput{})
		require.NoError(t, err)
		banks, ok := res.Value.([]billplz.FpxBank)
		require.True(t, ok)
		assert.NotEmpty(t, banks)
		assert.Zero(t, up.callCount())
	})
}

func TestToolService_InvokePassthrough(t *testing.T) {
	t.Run("happy: body is returned verbatim", func(t *testing.T) {
		body := `{"id": "afae4bqf", "status": "processing"}`
		client, up := newUpstream(t, http.StatusOK, body)
		journal := &fakeJournal{}
		svc := NewToolService(client, journal)

		res, err := svc.Invoke(context.Background(), "get_payout", &dto.GetByIDInput{ID: "afae4bqf"})
		require.NoError(t, err)
		assert.True(t, res.IsRaw())
		assert.Equal(t, body, res.Raw)
		assert.Equal(t, "/api/v4/mass_payment_instructions/afae4bqf", up.path)
		assert.Equal(t, "afae4bqf", journal.last(t).ResourceID)
	})

	t.Run("happy: created id is picked up for the journal", func(t *testing.T) {
		client, _ := newUpstream(t, http.StatusOK, `{"id":"pc_123","title":"Payroll"}`)
		journal := &fakeJournal{}
		svc := NewToolService(client, journal)

		_, err := svc.Invoke(context.Background(), "create_payout_collection", &dto.CreatePayoutCollectionInput{Title: "Payroll"})
		require.NoError(t, err)
		assert.Equal(t, "pc_123", journal.last(t).ResourceID)
	})

	t.Run("edge: error status still succeeds", func(t *testing.T) {
		body := `{"error":{"type":"RecordNotFound","message":"Not found"}}`
		client, _ := newUpstream(t, http.StatusNotFound, body)
		svc := NewToolService(client, nil)

		res, err := svc.Invoke(context.Background(), "get_bank_verification", &dto.GetBankVerificationInput{AccountNumber: "1234567890"})
		require.NoError(t, err)
		assert.Equal(t, body, res.Raw)
	})

	t.Run("happy: organization false is sent", func(t *testing.T) {
		client, up := newUpstream(t, http.StatusOK, `{}`)
		svc := NewToolService(client, nil)

		_, err := svc.Invoke(context.Background(), "create_bank_verification", &dto.CreateBankVerificationInput{
			Name: "Insan", IDNo: "91234567890", AccNo: "999988887777", Code: "MBBEMYKL",
		})
		require.NoError(t, err)
		assert.Equal(t, false, up.fields(t)["organization"])
		assert.Equal(t, "/api/v3/bank_verification_services", up.path)
	})
}

func TestToolService_InvokeErrors(t *testing.T) {
	t.Run("bad: api error is recorded with its type", func(t *testing.T) {
		client, _ := newUpstream(t, http.StatusUnauthorized, `{"error":{"type":"Unauthorized","message":"Invalid API key"}}`)
		journal := &fakeJournal{}
		svc := NewToolService(client, journal)

		_, err := svc.Invoke(context.Background(), "get_collection", &dto.GetByIDInput{ID: "col1"})
		require.Error(t, err)
		assert.Equal(t, "API error (Unauthorized): Invalid API key", err.Error())

		entry := journal.last(t)
		assert.Equal(t, model.OutcomeAPIError, entry.Outcome)
		assert.Equal(t, http.StatusUnauthorized, entry.StatusCode)
		assert.Equal(t, "Unauthorized", entry.ErrorType)
		assert.Equal(t, "col1", entry.ResourceID)
	})

	t.Run("bad: parse error", func(t *testing.T) {
		client, _ := newUpstream(t, http.StatusOK, `not json`)
		journal := &fakeJournal{}
		svc := NewToolService(client, journal)

		_, err := svc.Invoke(context.Background(), "get_bill", &dto.GetByIDInput{ID: "b1"})
		assert.True(t, billplz.IsKind(err, billplz.KindParse))
		assert.Equal(t, model.OutcomeParseError, journal.last(t).Outcome)
	})

	t.Run("bad: transport error", func(t *testing.T) {
		journal := &fakeJournal{}
		svc := NewToolService(billplz.NewWithBaseURL("http://127.0.0.1:1", "k"), journal)

		_, err := svc.Invoke(context.Background(), "get_payout", &dto.GetByIDInput{ID: "p1"})
		assert.True(t, billplz.IsKind(err, billplz.KindTransport))
		assert.Equal(t, model.OutcomeTransportError, journal.last(t).Outcome)
	})

	t.Run("bad: invalid input never reaches upstream", func(t *testing.T) {
		client, up := newUpstream(t, http.StatusOK, billBody)
		journal := &fakeJournal{}
		svc := NewToolService(client, journal)

		in := validBillInput()
		in.Email = "not-an-email"
		in.Amount = 0
		in.DueAt = "31/12/2025"

		_, err := svc.Invoke(context.Background(), "create_bill", in)
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))

		fields := map[string]string{}
		for _, f := range vErr.Fields {
			fields[f.Field] = f.Message
		}
		assert.Equal(t, "must be a valid email address", fields["email"])
		assert.Equal(t, "must be greater than 0", fields["amount"])
		assert.Contains(t, fields["due_at"], "2006-01-02")

		assert.Zero(t, up.callCount())
		assert.Equal(t, model.OutcomeInvalid, journal.last(t).Outcome)
	})

	t.Run("bad: nested split payment field path", func(t *testing.T) {
		client, up := newUpstream(t, http.StatusOK, `{}`)
		svc := NewToolService(client, nil)

		_, err := svc.Invoke(context.Background(), "create_collection", &dto.CreateCollectionInput{
			Title: "Split",
			SplitPayments: []dto.SplitPaymentInput{
				{Email: "a@example.com", FixedCut: int64Ptr(100), VariableCut: strPtr("20")},
			},
		})
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		require.Len(t, vErr.Fields, 1)
		assert.Equal(t, "split_payments[0].fixed_cut", vErr.Fields[0].Field)
		assert.Zero(t, up.callCount())
	})

	t.Run("bad: wrong input type", func(t *testing.T) {
		client, up := newUpstream(t, http.StatusOK, `{}`)
		svc := NewToolService(client, nil)

		_, err := svc.Invoke(context.Background(), "get_payout", &dto.CreatePayoutCollectionInput{Title: "x"})
		assert.ErrorIs(t, err, ErrInputType)
		assert.Zero(t, up.callCount())
	})

	t.Run("bad: unknown tool is not recorded", func(t *testing.T) {
		journal := &fakeJournal{}
		svc := NewToolService(billplz.New(billplz.Staging, "k"), journal)

		_, err := svc.Invoke(context.Background(), "refund_bill", &dto.EmptyInput{})
		assert.ErrorIs(t, err, ErrUnknownTool)
		assert.Empty(t, journal.entries)
	})

	t.Run("edge: journal failure does not fail the call", func(t *testing.T) {
		client, _ := newUpstream(t, http.StatusOK, `{"id":"col1","title":"t","status":"active"}`)
		svc := NewToolService(client, &fakeJournal{fail: true})

		res, err := svc.Invoke(context.Background(), "get_collection", &dto.GetByIDInput{ID: "col1"})
		require.NoError(t, err)
		assert.Equal(t, "col1", res.ResourceID)
	})
}
