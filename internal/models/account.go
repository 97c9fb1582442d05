package models

import "time"

// Account mirrors the accounts table.
type Account struct {
	AccountID   string    `db:"account_id"`
	Code        string    `db:"code"`
	Name        string    `db:"name"`
	ClassCode   string    `db:"class_code"`
	AccountType string    `db:"account_type"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
