package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tenant is part of the schema but not exposed by any endpoint.
type Tenant struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name      *string    `json:"name"`
	Created   time.Time  `json:"created" gorm:"autoCreateTime;not null"`
	Updated   time.Time  `json:"updated" gorm:"autoUpdateTime;not null"`
	Deleted   *time.Time `json:"deleted"`
	ComputeID *uuid.UUID `json:"compute_id" gorm:"type:uuid"`
}

func (Tenant) TableName() string {
	return "tenants"
}

// BeforeCreate assigns a time-ordered id when none is set.
func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID != uuid.Nil {
		return nil
	}
	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	t.ID = id
	return nil
}
