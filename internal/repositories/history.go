package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// HistoryRepository is the append-only store of analysis results.
type HistoryRepository interface {
	Create(record *models.HistoryRecord) error
	FindAll() ([]models.HistoryRecord, error)
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

// Create implements HistoryRepository. The record is written as one row.
func (r *historyRepository) Create(record *models.HistoryRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("%w: failed to create history record: %v", models.ErrStorage, err)
	}
	return nil
}

// FindAll implements HistoryRepository, most recent first.
func (r *historyRepository) FindAll() ([]models.HistoryRecord, error) {
	records := []models.HistoryRecord{}
	if err := r.db.Order("id DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to list history: %v", models.ErrStorage, err)
	}
	return records, nil
}
