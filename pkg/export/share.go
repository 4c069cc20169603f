package export

import (
	"fmt"
	"net/url"

	"bkstore/pkg/store"
)

// WhatsAppLink builds a wa.me share URL announcing the order.
func WhatsAppLink(o store.Order, company string) string {
	message := fmt.Sprintf("Purchase Order #%s from %s. Total: $%.2f", o.OrderNumber, company, o.Totals.Total)
	return "https://wa.me/?text=" + url.QueryEscape(message)
}
