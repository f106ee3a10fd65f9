package models

// Account is a row of gl_accounts.
type Account struct {
	Code          string `db:"code"`
	Name          string `db:"name"`
	AccountType   string `db:"account_type"`
	NormalBalance string `db:"normal_balance"`
	Description   string `db:"description"`
	IsActive      bool   `db:"is_active"`
	Version       int64  `db:"version"`
	AuditFields
}
