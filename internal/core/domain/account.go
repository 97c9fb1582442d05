package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// Account represents one account of the chart of accounts (PCM).
// ClassCode is the single leading digit '1'..'8' of the PCM class the
// account belongs to; reports aggregate by it.
type Account struct {
	AccountID   string      `json:"accountID"` // Primary Key (UUID)
	Code        string      `json:"code"`      // Unique PCM code, e.g. "5141"
	Name        string      `json:"name"`
	ClassCode   string      `json:"classCode"`
	AccountType AccountType `json:"accountType"`
	Timestamps
}
