package repositories

import (
	"fmt"

	"userdir/internal/models"

	"gorm.io/gorm"
)

// userRow is the table layout used by GORMStorage. Position keeps the
// collection order stable across Save/Load.
type userRow struct {
	ID        int `gorm:"primaryKey;autoIncrement:false"`
	Position  int `gorm:"index"`
	FirstName string
	LastName  string
	Height    float64
	Weight    float64
	Gender    string
	Location  string
	Photo     *string
}

func (userRow) TableName() string { return "users" }

// GORMStorage is a GORM implementation of Storage. It lets the same CRUD
// operations run on sqlite or postgres instead of a flat file.
type GORMStorage struct {
	db *gorm.DB
}

// NewGORMStorage creates a new instance of GORMStorage.
func NewGORMStorage(db *gorm.DB) *GORMStorage {
	return &GORMStorage{
		db: db,
	}
}

// Initialize creates the users table if it is missing.
func (s *GORMStorage) Initialize() error {
	if err := s.db.AutoMigrate(&userRow{}); err != nil {
		return storageErr("initialize", fmt.Errorf("failed to migrate users table: %w", err))
	}
	return nil
}

// Load retrieves the whole collection ordered by position.
func (s *GORMStorage) Load() ([]models.User, error) {
	var rows []userRow
	if err := s.db.Order("position").Find(&rows).Error; err != nil {
		return nil, storageErr("load", fmt.Errorf("failed to get users: %w", err))
	}
	users := make([]models.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, models.User{
			ID:        row.ID,
			FirstName: row.FirstName,
			LastName:  row.LastName,
			Height:    row.Height,
			Weight:    row.Weight,
			Gender:    row.Gender,
			Location:  row.Location,
			Photo:     row.Photo,
		})
	}
	return users, nil
}

// Save replaces the table contents with users in a single transaction.
func (s *GORMStorage) Save(users []models.User) error {
	rows := make([]userRow, 0, len(users))
	for i, u := range users {
		rows = append(rows, userRow{
			ID:        u.ID,
			Position:  i,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Height:    u.Height,
			Weight:    u.Weight,
			Gender:    u.Gender,
			Location:  u.Location,
			Photo:     u.Photo,
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&userRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear users: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, 100).Error; err != nil {
			return fmt.Errorf("failed to insert users: %w", err)
		}
		return nil
	})
	if err != nil {
		return storageErr("save", err)
	}
	return nil
}
