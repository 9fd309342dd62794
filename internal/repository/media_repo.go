package repository

import (
	"Mediahub/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type MediaRepo interface {
	CreateMediaWithPaths(ctx context.Context, media *model.Media, buildPaths func(mediaID uint64) ([]*model.MediaPath, error)) error
	GetMediaWithPaths(ctx context.Context, id uint64) (*model.Media, error)
	ListByCreatedRange(ctx context.Context, start, end time.Time, categoryID *uint64, mediaType *model.MediaType) ([]*model.Media, error)
	CountByCategory(ctx context.Context, categoryID uint64, isActive *bool, mediaType *model.MediaType) (int64, error)
}

type MediaRepoImpl struct {
	db *gorm.DB
}

func NewMediaRepo(db *gorm.DB) MediaRepo {
	return &MediaRepoImpl{db: db}
}

// CreateMediaWithPaths 在单个事务内创建 Media 与全部路径记录。
// buildPaths 在拿到 Media ID 之后执行，落盘动作发生在其中；
// 返回错误时整个事务回滚，磁盘补偿由调用方完成。
func (s *MediaRepoImpl) CreateMediaWithPaths(ctx context.Context, media *model.Media, buildPaths func(mediaID uint64) ([]*model.MediaPath, error)) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(media).Error; err != nil {
			return err
		}

		paths, err := buildPaths(media.ID)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return errors.New("media requires at least one path")
		}

		if err = tx.Create(paths).Error; err != nil {
			return err
		}

		media.Paths = make([]model.MediaPath, 0, len(paths))
		for _, path := range paths {
			media.Paths = append(media.Paths, *path)
		}
		return nil
	})
}

func (s *MediaRepoImpl) GetMediaWithPaths(ctx context.Context, id uint64) (*model.Media, error) {
	media := &model.Media{}
	result := s.db.WithContext(ctx).
		Preload("Paths", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(media, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return media, nil
}

// ListByCreatedRange 返回时间窗口内的启用媒体，按创建时间倒序，路径按上传顺序预载
func (s *MediaRepoImpl) ListByCreatedRange(ctx context.Context, start, end time.Time, categoryID *uint64, mediaType *model.MediaType) ([]*model.Media, error) {
	tx := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("created_at >= ? AND created_at <= ?", start, end)

	if categoryID != nil {
		tx = tx.Where("category_id = ?", *categoryID)
	}
	if mediaType != nil {
		tx = tx.Where("media_type = ?", *mediaType)
	}

	mediaList := make([]*model.Media, 0)
	result := tx.
		Preload("Paths", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Order("created_at DESC").
		Find(&mediaList)
	if result.Error != nil {
		return nil, result.Error
	}

	return mediaList, nil
}

func (s *MediaRepoImpl) CountByCategory(ctx context.Context, categoryID uint64, isActive *bool, mediaType *model.MediaType) (int64, error) {
	tx := s.db.WithContext(ctx).
		Model(&model.Media{}).
		Where("category_id = ?", categoryID)

	if isActive != nil {
		tx = tx.Where("is_active = ?", *isActive)
	}
	if mediaType != nil {
		tx = tx.Where("media_type = ?", *mediaType)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
