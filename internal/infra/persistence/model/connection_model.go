package model

import (
	"time"

	"github.com/google/uuid"
)

// ConnectionModel mirrors the 'connections' table. The composite primary key
// on (store_id, producer_id) is the single source of truth for pair
// uniqueness.
type ConnectionModel struct {
	StoreID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProducerID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status      string    `gorm:"type:varchar(16);not null;default:'pending';index"`
	Type        string    `gorm:"type:varchar(16);not null;default:'regular'"`
	InitiatedBy string    `gorm:"type:varchar(16);not null"`
	Note        string    `gorm:"type:text"`
	RequestedAt time.Time `gorm:"not null"`
	ConnectedAt *time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConnectionModel) TableName() string {
	return "connections"
}
