package recommendation

import (
	"GameVault-Backend/entities"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type (
	// RecommendationRepository is an append-only store: every generation
	// writes a new row and reads always select the most recent one. Rows are
	// never updated or deleted here.
	RecommendationRepository interface {
		CreateLog(ctx context.Context, log *entities.RecommendationLog) error
		GetLatestLog(ctx context.Context, userID string) (*entities.RecommendationLog, error)
	}

	recommendationRepository struct {
		db *gorm.DB
	}
)

func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) CreateLog(ctx context.Context, log *entities.RecommendationLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *recommendationRepository) GetLatestLog(ctx context.Context, userID string) (*entities.RecommendationLog, error) {
	var log entities.RecommendationLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		First(&log).Error
	if err != nil {
		// A missing recommendation_logs table means the same thing as no
		// rows: nothing has been generated yet.
		if errors.Is(err, gorm.ErrRecordNotFound) || isUndefinedTable(err) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &log, nil
}

func isUndefinedTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "does not exist")
}
