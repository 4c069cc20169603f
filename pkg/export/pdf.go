// Package export formats orders into shareable documents: a printable PDF
// and a WhatsApp share link.
package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"bkstore/pkg/store"
)

// OrderPDF renders an order into a printable document and returns the PDF
// bytes. The layout follows the storefront's purchase-order form: company
// header, order number, date and customer block, then item lines and the
// totals block.
func OrderPDF(o store.Order, company string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(20, 30, company)
	pdf.SetFont("Helvetica", "B", 16)
	title := "Purchase Order #" + o.OrderNumber
	if o.Type == store.TypeInvoice {
		title = "Invoice " + o.InvoiceNumber
	}
	pdf.Text(20, 42, title)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, 54, "Date: "+o.CreatedAt.Format("Jan 2, 2006"))
	pdf.Text(20, 62, "Customer: "+o.CustomerInfo.Name)
	pdf.Text(20, 70, "Company: "+company)

	y := 84.0
	pdf.Text(20, y, "Items:")
	y += 8
	for _, item := range o.Items {
		pdf.Text(20, y, fmt.Sprintf("%s - %d x $%.2f", item.Name, item.Quantity, item.Price))
		y += 7
	}

	y += 10
	pdf.Text(20, y, fmt.Sprintf("Subtotal: $%.2f", o.Totals.Subtotal))
	pdf.Text(20, y+8, fmt.Sprintf("Tax: $%.2f", o.Totals.Tax))
	pdf.Text(20, y+16, fmt.Sprintf("Shipping: $%.2f", o.Totals.Shipping))
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(20, y+24, fmt.Sprintf("Total: $%.2f", o.Totals.Total))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename returns the suggested download name for an order's PDF.
func Filename(o store.Order) string {
	if o.Type == store.TypeInvoice {
		return o.InvoiceNumber + ".pdf"
	}
	return "PO-" + o.OrderNumber + ".pdf"
}
