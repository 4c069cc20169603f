package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bkstore/pkg/store"
)

func sampleOrder() store.Order {
	return store.Order{
		ID:          "order-1749988800000",
		OrderNumber: "BK001001",
		Type:        store.TypePO,
		Status:      store.StatusPending,
		Items: []store.OrderItem{
			{Name: "Premium White Sugar", Price: 45.50, Quantity: 10},
		},
		Totals:       store.Totals{Subtotal: 455.00, Tax: 36.40, Shipping: 25.00, Total: 516.40},
		CustomerInfo: store.Contact{Name: "John Baker"},
		CreatedAt:    time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestOrderPDF(t *testing.T) {
	pdf, err := OrderPDF(sampleOrder(), "BK Distribution")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "output is not a PDF")
}

func TestFilename(t *testing.T) {
	o := sampleOrder()
	assert.Equal(t, "PO-BK001001.pdf", Filename(o))

	o.Type = store.TypeInvoice
	o.InvoiceNumber = "INV-BK001001"
	assert.Equal(t, "INV-BK001001.pdf", Filename(o))
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink(sampleOrder(), "BK Distribution")
	assert.Equal(t, "https://wa.me/?text=Purchase+Order+%23BK001001+from+BK+Distribution.+Total%3A+%24516.40", link)
}
