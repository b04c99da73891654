package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/devlinks/api/internal/models"
	appErr "github.com/devlinks/api/pkg/errors"
	"gorm.io/gorm"
)

type LinkRepository interface {
	BaseRepository[models.Link]
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Link, error)
	UpdateOwned(ctx context.Context, linkID, userID uuid.UUID, fields map[string]any) error
	DeleteOwned(ctx context.Context, linkID, userID uuid.UUID) error
}

type linkRepository struct {
	BaseRepository[models.Link]
	db *gorm.DB
}

func NewLinkRepository(db *gorm.DB) LinkRepository {
	return &linkRepository{BaseRepository: NewBaseRepository[models.Link](db), db: db}
}

func (r *linkRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Link, error) {
	var out []models.Link
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list links by user failed")
	}
	return out, nil
}

// UpdateOwned applies a partial patch scoped to (linkID, userID). A row that
// exists but belongs to another user reports not_found, same as a missing row.
func (r *linkRepository) UpdateOwned(ctx context.Context, linkID, userID uuid.UUID, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&models.Link{}).
		Where("id = ? AND user_id = ?", linkID, userID).
		Updates(fields)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "update link failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "link not found")
	}
	return nil
}

func (r *linkRepository) DeleteOwned(ctx context.Context, linkID, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", linkID, userID).Delete(&models.Link{})
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "delete link failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "link not found")
	}
	return nil
}
