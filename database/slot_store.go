package database

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Fixed slot keys. Every durable value of the application lives in one of
// these independently-overwritten slots.
const (
	KeyCustomProjects       = "customProjects"
	KeyCustomCertifications = "customCertifications"
	KeyChatMessages         = "chatMessages"
	KeyAdminAuthenticated   = "adminAuthenticated"
)

// SlotStore is the durable key-value boundary. Each slot holds one JSON
// document; writes replace the previous value entirely (no partial update,
// no merge at the storage layer).
type SlotStore interface {
	// Load returns the raw JSON stored under key, or nil if the slot is empty.
	Load(key string) ([]byte, error)
	// Save overwrites the slot with value.
	Save(key string, value []byte) error
	// Delete clears the slot. Deleting an absent slot is not an error.
	Delete(key string) error
}

// StorageSlot is the persistence model backing GormSlotStore.
type StorageSlot struct {
	Key   string         `json:"key" gorm:"type:text;primaryKey;not null"`
	Value datatypes.JSON `json:"value" gorm:"not null"`
}

// GormSlotStore persists slots in a single table.
type GormSlotStore struct {
	db *gorm.DB
}

func NewGormSlotStore(db *gorm.DB) (*GormSlotStore, error) {
	if err := db.AutoMigrate(&StorageSlot{}); err != nil {
		return nil, err
	}
	return &GormSlotStore{db: db}, nil
}

func (s *GormSlotStore) Load(key string) ([]byte, error) {
	var slot StorageSlot
	err := s.db.First(&slot, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(slot.Value), nil
}

func (s *GormSlotStore) Save(key string, value []byte) error {
	slot := StorageSlot{Key: key, Value: datatypes.JSON(value)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&slot).Error
}

func (s *GormSlotStore) Delete(key string) error {
	return s.db.Delete(&StorageSlot{}, "key = ?", key).Error
}
