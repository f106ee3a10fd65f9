package chart

import "github.com/SscSPs/roundup_ledger/internal/core/domain"

func acct(code, name string, t domain.AccountType, description string) domain.Account {
	return domain.Account{
		Code:          code,
		Name:          name,
		Type:          t,
		NormalBalance: domain.ConventionalNormalBalance(t),
		Description:   description,
		IsActive:      true,
		Version:       1,
	}
}

// DefaultAccounts returns a fresh copy of the seed chart of accounts.
// Codes are unique and are never reused for a different account.
func DefaultAccounts() []domain.Account {
	return []domain.Account{
		// Assets
		acct("1000", "Cash", domain.Asset, "Cash on hand"),
		acct("1010", "Operating Bank Account", domain.Asset, "Primary operating account"),
		acct("1100", "Accounts Receivable", domain.Asset, ""),
		acct("1200", "Stripe Clearing", domain.Asset, "Card funds in transit from Stripe"),
		acct("1210", "ACH Clearing", domain.Asset, "ACH funds in transit from Plaid and Dwolla"),
		acct("1300", "Prepaid Expenses", domain.Asset, ""),
		acct("1500", "Brokerage Settlement", domain.Asset, "Funds awaiting settlement at Alpaca"),

		// Liabilities
		acct("2000", "Accounts Payable", domain.Liability, ""),
		acct("2100", "Customer Round-Up Deposits Payable", domain.Liability, "Round-ups owed to customer brokerage accounts"),
		acct("2200", "Accrued Expenses", domain.Liability, ""),
		acct("2300", "Deferred Revenue", domain.Liability, "Subscriptions billed in advance"),

		// Equity
		acct("3000", "Owner's Equity", domain.Equity, ""),
		acct("3100", "Retained Earnings", domain.Equity, ""),

		// Revenue
		acct("4000", "Subscription Revenue", domain.Revenue, "Revenue not attributed to a tier"),
		acct("4060", "Individual Users", domain.Revenue, "Revenue from individual accounts"),
		acct("4070", "Family Users", domain.Revenue, "Revenue from family accounts"),
		acct("4080", "Business Users", domain.Revenue, "Revenue from business accounts"),
		acct("4090", "Interest Income", domain.Revenue, ""),

		// Cost of services
		acct("5000", "Cost of Services", domain.COGS, ""),

		// Expenses
		acct("5010", "Payment Processor Fees", domain.Expense, "Stripe, Plaid and Dwolla fees"),
		acct("5020", "Cloud Hosting", domain.Expense, ""),
		acct("5030", "Software Subscriptions", domain.Expense, ""),
		acct("5040", "Transaction Settlement Fees", domain.Expense, "Fees from processors without a dedicated account"),
		acct("5050", "Marketing & Advertising", domain.Expense, ""),
		acct("5060", "Salaries & Wages", domain.Expense, ""),
		acct("5070", "Alpaca Trading Fees", domain.Expense, "Brokerage fees charged by Alpaca"),
		acct("5080", "Professional Services", domain.Expense, "Legal and accounting"),
	}
}
