package mail

import (
	"html/template"
	"testing"
	"time"

	"campuskart/internal/domain/entity"
	"campuskart/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmailData(t *testing.T) *service.OrderEmailData {
	t.Helper()

	orderID := uuid.New()

	return &service.OrderEmailData{
		Order: &entity.Order{
			ID:        orderID,
			Email:     "jane.doe@walchandsangli.ac.in",
			PaymentID: "pi_123",
			Amount:    decimal.RequireFromString("19.99"),
			Status:    "succeeded",
			Phone:     "9876543210",
			Address:   "Hostel B, Room 214",
			CreatedAt: time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC),
		},
		Buyer: &entity.Buyer{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane.doe@walchandsangli.ac.in",
		},
		Item: &entity.Item{
			Title:       "Data Structures Textbook",
			Description: "Lightly used, 3rd edition",
			Price:       decimal.RequireFromString("19.99"),
			Image:       entity.ItemImage{URL: "https://img.example.com/items/abc.png"},
		},
		Admin: &entity.Admin{
			FirstName: "Sam",
			LastName:  "Seller",
			Email:     "sam.seller@walchandsangli.ac.in",
		},
	}
}

func TestPurchaseConfirmationTemplateRenders(t *testing.T) {
	tmpl, err := template.New("purchase_confirmation").Parse(purchaseConfirmationHTML)
	require.NoError(t, err)

	data := testEmailData(t)
	data.PickupCode = []byte{0x89, 0x50, 0x4e, 0x47}

	body, err := renderTemplate(tmpl, data)
	require.NoError(t, err)

	assert.Contains(t, body, "Jane Doe")
	assert.Contains(t, body, data.Order.ID.String())
	assert.Contains(t, body, "Data Structures Textbook")
	assert.Contains(t, body, "$19.99")
	assert.Contains(t, body, "Hostel B, Room 214")
	assert.Contains(t, body, "Processing")
	assert.Contains(t, body, "Pickup Code")
}

func TestPurchaseConfirmationTemplateOmitsPickupSectionWithoutCode(t *testing.T) {
	tmpl, err := template.New("purchase_confirmation").Parse(purchaseConfirmationHTML)
	require.NoError(t, err)

	body, err := renderTemplate(tmpl, testEmailData(t))
	require.NoError(t, err)

	assert.NotContains(t, body, "Pickup Code")
}

func TestOrderNotificationTemplateRenders(t *testing.T) {
	tmpl, err := template.New("order_notification").Parse(orderNotificationHTML)
	require.NoError(t, err)

	data := testEmailData(t)
	data.Order.Delivered = true

	body, err := renderTemplate(tmpl, data)
	require.NoError(t, err)

	assert.Contains(t, body, "New Order Alert!")
	assert.Contains(t, body, "pi_123")
	assert.Contains(t, body, "Jane Doe")
	assert.Contains(t, body, "jane.doe@walchandsangli.ac.in")
	assert.Contains(t, body, "Data Structures Textbook")
}
