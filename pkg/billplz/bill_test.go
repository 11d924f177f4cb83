package billplz

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const billBody = `{
	"id": "8X0Iyzaw",
	"collection_id": "inbmmepb",
	"paid": false,
	"state": "due",
	"amount": 20000,
	"paid_amount": 0,
	"due_at": "2025-12-31",
	"email": "api@billplz.com",
	"mobile": "+60112223333",
	"name": "MICHAEL API",
	"url": "https://www.billplz.com/bills/8X0Iyzaw",
	"reference_1_label": "First Name",
	"reference_1": "Jordan",
	"redirect_url": "http://example.com/redirect/",
	"callback_url": "http://example.com/webhook/",
	"description": "Maecenas eu placerat ante.",
	"paid_at": null
}`

func newBill(c *Client) *CreateBillBuilder {
	return c.CreateBill("inbmmepb", "api@billplz.com", "MICHAEL API", 20000,
		"http://example.com/webhook/", "Maecenas eu placerat ante.", "2025-12-31")
}

func TestClient_GetBill(t *testing.T) {
	t.Run("happy: decodes bill", func(t *testing.T) {
		client, captured := newTestClient(t, http.StatusOK, billBody)

		resp, err := client.GetBill(context.Background(), "8X0Iyzaw")
		require.NoError(t, err)
		assert.Equal(t, "/api/v3/bills/8X0Iyzaw", captured.Path)

		assert.Equal(t, "8X0Iyzaw", resp.ID)
		assert.Equal(t, int64(20000), resp.Amount)
		assert.Equal(t, "due", resp.State)
		assert.False(t, resp.Paid)
		require.NotNil(t, resp.URL)
		assert.Equal(t, "https://www.billplz.com/bills/8X0Iyzaw", *resp.URL)
		assert.Nil(t, resp.PaidAt)
		assert.Nil(t, resp.Reference2)
	})

	t.Run("bad: invalid json on success is a parse error", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusOK, `not json`)

		_, err := client.GetBill(context.Background(), "b1")
		require.Error(t, err)
		assert.True(t, IsKind(err, KindParse))
	})

	t.Run("bad: null body is a parse error", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusOK, `null`)

		resp, err := client.GetBill(context.Background(), "b1")
		assert.Nil(t, resp)
		var bErr *Error
		require.ErrorAs(t, err, &bErr)
		assert.Equal(t, KindParse, bErr.Kind)
		assert.ErrorIs(t, err, ErrNullBody)

		col, err := client.GetCollection(context.Background(), "c1")
		assert.Nil(t, col)
		assert.True(t, IsKind(err, KindParse))
	})

	t.Run("bad: wrong shape on success is a parse error", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusOK, `{"amount":"lots"}`)

		_, err := client.GetBill(context.Background(), "b1")
		assert.True(t, IsKind(err, KindParse))
	})

	t.Run("edge: non-success without envelope keeps the status", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusBadGateway, `<html>bad gateway</html>`)

		_, err := client.GetBill(context.Background(), "b1")
		var bErr *Error
		require.ErrorAs(t, err, &bErr)
		assert.Equal(t, KindParse, bErr.Kind)
		assert.Equal(t, http.StatusBadGateway, bErr.StatusCode)
		assert.Contains(t, err.Error(), "status 502")
	})

	t.Run("edge: envelope on success status is not an api error", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusOK, `{"error":{"type":"x","message":"y"}}`)

		resp, err := client.GetBill(context.Background(), "b1")
		require.NoError(t, err)
		assert.Empty(t, resp.ID)
	})
}

func TestCreateBillBuilder(t *testing.T) {
	required := []string{"collection_id", "email", "name", "amount", "callback_url", "description", "due_at"}
	optional := []string{"mobile", "redirect_url", "deliver", "reference_1_label", "reference_1", "reference_2_label", "reference_2"}

	t.Run("happy: required fields only", func(t *testing.T) {
		client, captured := newTestClient(t, http.StatusOK, billBody)

		resp, err := newBill(client).Send(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "8X0Iyzaw", resp.ID)
		assert.Equal(t, "/api/v3/bills", captured.Path)

		fields := captured.Fields(t)
		for _, key := range required {
			assert.Contains(t, fields, key)
		}
		for _, key := range optional {
			assert.NotContains(t, fields, key)
		}
		assert.Equal(t, float64(20000), fields["amount"])
	})

	setters := map[string]func(*CreateBillBuilder) *CreateBillBuilder{
		"mobile":            func(b *CreateBillBuilder) *CreateBillBuilder { return b.Mobile("+60112223333") },
		"redirect_url":      func(b *CreateBillBuilder) *CreateBillBuilder { return b.RedirectURL("http://example.com/redirect/") },
		"deliver":           func(b *CreateBillBuilder) *CreateBillBuilder { return b.Deliver(false) },
		"reference_1_label": func(b *CreateBillBuilder) *CreateBillBuilder { return b.Reference1Label("First Name") },
		"reference_1":       func(b *CreateBillBuilder) *CreateBillBuilder { return b.Reference1("Jordan") },
		"reference_2_label": func(b *CreateBillBuilder) *CreateBillBuilder { return b.Reference2Label("Last Name") },
		"reference_2":       func(b *CreateBillBuilder) *CreateBillBuilder { return b.Reference2("Lee") },
	}

	for key, set := range setters {
		t.Run("happy: only "+key+" is added", func(t *testing.T) {
			b := set(newBill(NewWithBaseURL("http://unused", "key")))

			data, err := json.Marshal(b.Payload())
			require.NoError(t, err)

			var fields map[string]any
			require.NoError(t, json.Unmarshal(data, &fields))
			for _, other := range optional {
				if other == key {
					assert.Contains(t, fields, other)
				} else {
					assert.NotContains(t, fields, other)
				}
			}
		})
	}

	t.Run("happy: all optional fields keep exact values", func(t *testing.T) {
		client, captured := newTestClient(t, http.StatusOK, billBody)

		_, err := newBill(client).
			Mobile("+60112223333").
			RedirectURL("http://example.com/redirect/").
			Deliver(true).
			Reference1Label("First Name").
			Reference1("Jordan").
			Reference2Label("").
			Reference2("").
			Send(context.Background())
		require.NoError(t, err)

		fields := captured.Fields(t)
		assert.Equal(t, "+60112223333", fields["mobile"])
		assert.Equal(t, true, fields["deliver"])
		assert.Equal(t, "Jordan", fields["reference_1"])
		// empty strings are values, not absence
		assert.Contains(t, fields, "reference_2_label")
		assert.Equal(t, "", fields["reference_2"])
	})

	t.Run("edge: last write wins", func(t *testing.T) {
		b := newBill(NewWithBaseURL("http://unused", "key")).Mobile("1").Mobile("2")
		require.NotNil(t, b.Payload().Mobile)
		assert.Equal(t, "2", *b.Payload().Mobile)
	})

	t.Run("edge: round trip of scalar values", func(t *testing.T) {
		b := newBill(NewWithBaseURL("http://unused", "key")).Mobile("+60112223333").Deliver(true)
		data, err := json.Marshal(b.Payload())
		require.NoError(t, err)

		client, _ := newTestClient(t, http.StatusOK, string(data))
		resp, err := client.GetBill(context.Background(), "x")
		require.NoError(t, err)

		assert.Equal(t, "inbmmepb", resp.CollectionID)
		assert.Equal(t, "api@billplz.com", resp.Email)
		assert.Equal(t, "MICHAEL API", resp.Name)
		assert.Equal(t, int64(20000), resp.Amount)
		assert.Equal(t, "http://example.com/webhook/", resp.CallbackURL)
		assert.Equal(t, "Maecenas eu placerat ante.", resp.Description)
		assert.Equal(t, "2025-12-31", resp.DueAt)
		require.NotNil(t, resp.Mobile)
		assert.Equal(t, "+60112223333", *resp.Mobile)
		require.NotNil(t, resp.Deliver)
		assert.True(t, *resp.Deliver)
	})

	t.Run("bad: validation messages are joined", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusUnprocessableEntity,
			`{"error":{"type":"RecordInvalid","message":["Email is invalid","Name is too long"]}}`)

		_, err := newBill(client).Send(context.Background())
		var bErr *Error
		require.ErrorAs(t, err, &bErr)
		assert.Equal(t, KindAPI, bErr.Kind)
		assert.Equal(t, "RecordInvalid", bErr.Type)
		assert.Equal(t, "Email is invalid, Name is too long", bErr.Message)
	})

	t.Run("bad: error status with an object body never yields a bill", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusNotFound, `{"id":"ghost"}`)

		resp, err := newBill(client).Send(context.Background())
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.True(t, IsKind(err, KindParse))
	})
}
