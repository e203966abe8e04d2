package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andy/billfold/internal/calc"
	"github.com/andy/billfold/internal/format"
)

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Manage saved invoices",
	Long:  `List, inspect, export, and delete saved invoices.`,
}

var invoicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved invoices",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		invoices, err := appInstance.InvoiceService.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list invoices: %w", err)
		}

		if len(invoices) == 0 {
			fmt.Println("No invoices found")
			return nil
		}

		// Print table header
		fmt.Printf("%-24s %-24s %-12s %-12s %12s\n", "Number", "Client", "Date", "Due", "Total")
		fmt.Println(strings.Repeat("-", 90))

		for _, invoice := range invoices {
			totals := calc.Compute(invoice)
			clientName := invoice.ClientName
			if clientName == "" {
				clientName = "(no client)"
			}

			fmt.Printf("%-24s %-24s %-12s %-12s %12s\n",
				truncate(invoice.InvoiceNumber, 24),
				truncate(clientName, 24),
				invoice.InvoiceDate,
				invoice.DueDate,
				format.Currency(totals.Total, invoice.Currency),
			)
		}

		fmt.Printf("\nTotal: %d invoice(s)\n", len(invoices))
		return nil
	},
}

var invoicesShowCmd = &cobra.Command{
	Use:   "show [id_or_number]",
	Short: "Show invoice details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		invoice, err := resolveInvoice(ctx, args[0])
		if err != nil {
			return err
		}

		totals := calc.Compute(invoice)

		fmt.Println(strings.Repeat("=", 72))
		fmt.Printf("Invoice: %s\n", invoice.InvoiceNumber)
		fmt.Println(strings.Repeat("=", 72))
		fmt.Printf("From:   %s\n", invoice.CompanyName)
		fmt.Printf("To:     %s <%s>\n", invoice.ClientName, invoice.ClientEmail)
		fmt.Printf("Date:   %s    Due: %s\n", format.Date(invoice.InvoiceDate), format.Date(invoice.DueDate))
		fmt.Println()

		fmt.Println("Items:")
		fmt.Println(strings.Repeat("-", 72))
		fmt.Printf("%-40s %8s %10s %12s\n", "Description", "Qty", "Price", "Total")
		fmt.Println(strings.Repeat("-", 72))
		for _, item := range invoice.Items {
			fmt.Printf("%-40s %8d %10s %12s\n",
				truncate(item.Name, 40),
				item.Quantity,
				format.Currency(item.UnitPrice, invoice.Currency),
				format.Currency(calc.ItemTotal(item), invoice.Currency),
			)
		}
		fmt.Println(strings.Repeat("-", 72))

		fmt.Println()
		fmt.Printf("Subtotal:   %s\n", format.Currency(totals.Subtotal, invoice.Currency))
		fmt.Printf("Tax (%g%%):  %s\n", invoice.TaxRate, format.Currency(totals.Tax, invoice.Currency))
		fmt.Printf("Total:      %s\n", format.Currency(totals.Total, invoice.Currency))
		if invoice.IsAdvancePayment {
			fmt.Printf("Advance:    %s\n", format.Currency(invoice.AdvancePaymentAmount, invoice.Currency))
			fmt.Printf("Amount Due: %s\n", format.Currency(totals.AmountDue, invoice.Currency))
		}
		if invoice.Notes != "" {
			fmt.Printf("\nNotes: %s\n", invoice.Notes)
		}
		fmt.Println(strings.Repeat("=", 72))

		return nil
	},
}

var invoicesExportCmd = &cobra.Command{
	Use:   "export [id_or_number]",
	Short: "Export a saved invoice as a PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		invoice, err := resolveInvoice(ctx, args[0])
		if err != nil {
			return err
		}

		path, err := appInstance.InvoiceService.ExportPDF(ctx, invoice)
		if err != nil {
			return fmt.Errorf("failed to export invoice: %w", err)
		}

		fmt.Printf("✓ PDF saved: %s\n", path)
		return nil
	},
}

var invoicesDeleteCmd = &cobra.Command{
	Use:   "delete [id_or_number]",
	Short: "Delete a saved invoice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		invoice, err := resolveInvoice(ctx, args[0])
		if err != nil {
			return err
		}

		if err := appInstance.InvoiceService.Delete(ctx, invoice.ID); err != nil {
			return fmt.Errorf("failed to delete invoice: %w", err)
		}

		fmt.Printf("✓ Deleted invoice %s\n", invoice.InvoiceNumber)
		return nil
	},
}

func init() {
	invoicesCmd.AddCommand(invoicesListCmd)
	invoicesCmd.AddCommand(invoicesShowCmd)
	invoicesCmd.AddCommand(invoicesExportCmd)
	invoicesCmd.AddCommand(invoicesDeleteCmd)
}
