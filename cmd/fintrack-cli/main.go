package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"fintrack/internal/core"
	"fintrack/internal/ledger"
	"fintrack/internal/report"
)

var ledgerFile string

func main() {
	rootCmd := &cobra.Command{
		Use:   "fintrack-cli",
		Short: "Fintrack CLI tool",
		Long:  `A command line interface for the fintrack ledger file.`,
	}

	rootCmd.PersistentFlags().StringVar(&ledgerFile, "file", "finance_data.csv", "Path to the ledger file")

	var (
		addDate     string
		addAmount   string
		addCategory string
		addDesc     string
	)
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Append a transaction to the ledger",
		Run: func(cmd *cobra.Command, args []string) {
			addTransaction(addDate, addAmount, addCategory, addDesc)
		},
	}
	addCmd.Flags().StringVar(&addDate, "date", "", "Transaction date (DD.MM.YYYY, default today)")
	addCmd.Flags().StringVar(&addAmount, "amount", "", "Positive amount (required)")
	addCmd.Flags().StringVar(&addCategory, "category", "", "Income or Expense (required)")
	addCmd.Flags().StringVar(&addDesc, "description", "", "Free-text description")
	_ = addCmd.MarkFlagRequired("amount")
	_ = addCmd.MarkFlagRequired("category")

	var startFlag, endFlag string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions in a date range",
		Run: func(cmd *cobra.Command, args []string) {
			txs := retrieve(startFlag, endFlag)
			printTransactions(txs)
		},
	}
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show totals and expense breakdown for a date range",
		Run: func(cmd *cobra.Command, args []string) {
			txs := retrieve(startFlag, endFlag)
			printSummary(txs)
		},
	}
	for _, c := range []*cobra.Command{listCmd, summaryCmd} {
		c.Flags().StringVar(&startFlag, "start", "", "Start date (DD.MM.YYYY, default first of month)")
		c.Flags().StringVar(&endFlag, "end", "", "End date (DD.MM.YYYY, default today)")
	}

	rootCmd.AddCommand(addCmd, listCmd, summaryCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func addTransaction(dateStr, amountStr, categoryStr, desc string) {
	date := core.DateOf(time.Now())
	if dateStr != "" {
		var err error
		date, err = core.ParseDate(dateStr)
		if err != nil {
			fail("Invalid date %q: expected %s", dateStr, "DD.MM.YYYY")
		}
	}
	amount, err := core.ParseAmount(amountStr)
	if err != nil {
		fail("Invalid amount %q: must be a positive number", amountStr)
	}
	category, err := core.ParseCategory(categoryStr)
	if err != nil {
		fail("Invalid category %q: must be Income or Expense", categoryStr)
	}

	tx := core.Transaction{Date: date, Amount: amount, Category: category, Description: desc}
	if err := tx.Validate(); err != nil {
		fail("Invalid transaction: %v", err)
	}

	ctx := context.Background()
	store := ledger.NewStore(ledgerFile)
	if err := store.Initialize(ctx); err != nil {
		fail("Could not initialize ledger: %v", err)
	}
	if err := store.Append(ctx, tx); err != nil {
		fail("Could not append transaction: %v", err)
	}
	fmt.Printf("Added: %s %s %s %q\n", tx.Date, tx.Amount, tx.Category, tx.Description)
}

func retrieve(startStr, endStr string) []core.Transaction {
	now := time.Now()
	start := core.NewDate(now.Year(), int(now.Month()), 1)
	end := core.DateOf(now)
	var err error
	if startStr != "" {
		if start, err = core.ParseDate(startStr); err != nil {
			fail("Invalid start date %q", startStr)
		}
	}
	if endStr != "" {
		if end, err = core.ParseDate(endStr); err != nil {
			fail("Invalid end date %q", endStr)
		}
	}
	if err := core.ValidateRange(start, end); err != nil {
		fail("Error: start date cannot be after end date")
	}

	store := ledger.NewStore(ledgerFile)
	txs, err := store.Between(context.Background(), start, end)
	if err != nil {
		fail("Could not read ledger: %v", err)
	}
	return txs
}

func printTransactions(txs []core.Transaction) {
	if len(txs) == 0 {
		fmt.Println("No transactions found in the selected date range.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tAMOUNT\tCATEGORY\tDESCRIPTION")
	for _, t := range txs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.Date, t.Amount, t.Category, t.Description)
	}
	w.Flush()
}

func printSummary(txs []core.Transaction) {
	sum := report.Summarize(txs)
	fmt.Printf("Total Income:  %s\n", sum.TotalIncome.StringFixed(2))
	fmt.Printf("Total Expense: %s\n", sum.TotalExpense.StringFixed(2))
	fmt.Printf("Net Savings:   %s\n", sum.NetSavings.StringFixed(2))

	breakdown := report.CategoryBreakdown(txs)
	if len(breakdown) == 0 {
		fmt.Println("No expenses to analyze.")
		return
	}
	names := make([]string, 0, len(breakdown))
	for name := range breakdown {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println("Expenses by description:")
	for _, name := range names {
		fmt.Printf("  %s: %s\n", name, breakdown[name].StringFixed(2))
	}
}
