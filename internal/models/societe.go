package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cabinet mirrors the cabinets table.
type Cabinet struct {
	CabinetID string    `db:"cabinet_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Societe mirrors the societes table.
type Societe struct {
	SocieteID     string           `db:"societe_id"`
	Name          string           `db:"name"`
	TypeJuridique *string          `db:"type_juridique"`
	Capital       *decimal.Decimal `db:"capital"`
	Gerant        *string          `db:"gerant"`
	RC            *string          `db:"rc"`
	CabinetID     *string          `db:"cabinet_id"`
	CreatedAt     time.Time        `db:"created_at"`
	UpdatedAt     time.Time        `db:"updated_at"`
}

// Associate mirrors the associates table.
type Associate struct {
	AssociateID string    `db:"associate_id"`
	SocieteID   string    `db:"societe_id"`
	Name        string    `db:"name"`
	Address     *string   `db:"address"`
	PartsCount  int64     `db:"parts_count"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Cession mirrors the cessions table.
type Cession struct {
	CessionID           string           `db:"cession_id"`
	SocieteID           string           `db:"societe_id"`
	CessionDate         time.Time        `db:"cession_date"`
	Cedant              string           `db:"cedant"`
	CedantAddress       *string          `db:"cedant_address"`
	Cessionnaire        string           `db:"cessionnaire"`
	CessionnaireAddress *string          `db:"cessionnaire_address"`
	PartsCount          int64            `db:"parts_count"`
	Price               *decimal.Decimal `db:"price"`
	PaymentMode         *string          `db:"payment_mode"`
	Conditions          *string          `db:"conditions"`
	CreatedAt           time.Time        `db:"created_at"`
	UpdatedAt           time.Time        `db:"updated_at"`
}

// DocTemplate mirrors the doc_templates table.
type DocTemplate struct {
	TemplateID string    `db:"template_id"`
	Title      string    `db:"title"`
	DocType    string    `db:"doc_type"`
	Content    string    `db:"content"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// User mirrors the users table.
type User struct {
	UserID       string    `db:"user_id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
