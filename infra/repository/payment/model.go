package payment

import (
	"time"

	"github.com/njagi/paylens/pkg/domain"
	"github.com/njagi/paylens/pkg/dto"
	"github.com/shopspring/decimal"
)

// Payment represents one consumer payment row. Rows are created by an
// external ingestion process; this service only reads them.
type Payment struct {
	ID                  int64            `gorm:"primaryKey;autoIncrement"`
	ConsumerUID         string           `gorm:"size:255;not null;index"`
	TransactionID       string           `gorm:"size:255;not null;uniqueIndex:idx_phone_txn"`
	Name                *string          `gorm:"size:255;index"`
	IsBusiness          bool             `gorm:"not null;default:false"`
	Direction           domain.Direction `gorm:"type:varchar(10);not null"`
	Amount              decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	SenderID            string           `gorm:"size:50;not null;index"`
	CountryCode         string           `gorm:"type:varchar(2);not null;default:'KE'"`
	ConsumerPhoneNumber string           `gorm:"size:15;not null;uniqueIndex:idx_phone_txn;index"`
	PaidAt              *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName specifies the table name for the Payment model.
func (Payment) TableName() string {
	return "end_user_payments"
}

func mapModelToReadDTO(p *Payment) dto.PaymentRead {
	return dto.PaymentRead{
		ID:                  p.ID,
		ConsumerUID:         p.ConsumerUID,
		TransactionID:       p.TransactionID,
		Name:                p.Name,
		IsBusiness:          p.IsBusiness,
		Direction:           p.Direction,
		Amount:              p.Amount,
		SenderID:            p.SenderID,
		CountryCode:         domain.CountryCode(p.CountryCode),
		ConsumerPhoneNumber: p.ConsumerPhoneNumber,
		PaidAt:              p.PaidAt,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}
