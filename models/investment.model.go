package models

import "gorm.io/gorm"

// InvestmentStatus defines the status of a donor contribution
type InvestmentStatus string

const (
	InvestmentStatusPending   InvestmentStatus = "pending"
	InvestmentStatusConfirmed InvestmentStatus = "confirmed"
	InvestmentStatusFailed    InvestmentStatus = "failed"
)

// Investment is one row of the append-only donor contribution ledger,
// independent of student activity
type Investment struct {
	gorm.Model
	InvestorID    uint             `json:"investorId" gorm:"index;not null"`
	Amount        float64          `json:"amount" gorm:"not null"`
	Currency      string           `json:"currency" gorm:"type:varchar(10);default:'USD'"`
	Status        InvestmentStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	TransactionID string           `json:"transactionId" gorm:"type:varchar(100)"`
	Purpose       string           `json:"purpose"`
	Message       string           `json:"message" gorm:"type:text"`
	IsDeleted     bool             `json:"-" gorm:"default:false"`

	Investor User `json:"investor" gorm:"foreignKey:InvestorID"`
}

func (Investment) TableName() string {
	return "investments"
}
