package repository

import (
	"Mediahub/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CategoryRepo interface {
	CreateCategory(ctx context.Context, category *model.Category) error
	GetCategoryById(ctx context.Context, id uint64) (*model.Category, error)
	GetCategoryByName(ctx context.Context, name string, excludeID uint64) (*model.Category, error)
	ListCategories(ctx context.Context, skip, limit int, isActive *bool, search string) ([]*model.Category, int64, error)
	ListActiveCategories(ctx context.Context) ([]*model.Category, error)
	GetCategoryNameByIds(ctx context.Context, ids []uint64) (map[uint64]string, error)
	UpdateCategory(ctx context.Context, category *model.Category, fields ...string) error
	DeleteCategory(ctx context.Context, id uint64) error
}

type CategoryRepoImpl struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepo {
	return &CategoryRepoImpl{db: db}
}

func (s *CategoryRepoImpl) CreateCategory(ctx context.Context, category *model.Category) error {
	return s.db.WithContext(ctx).Create(category).Error
}

func (s *CategoryRepoImpl) GetCategoryById(ctx context.Context, id uint64) (*model.Category, error) {
	category := &model.Category{}
	result := s.db.WithContext(ctx).First(category, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return category, nil
}

// GetCategoryByName 名称查找，不区分大小写；excludeID 非零时排除该记录
func (s *CategoryRepoImpl) GetCategoryByName(ctx context.Context, name string, excludeID uint64) (*model.Category, error) {
	category := &model.Category{}
	tx := s.db.WithContext(ctx).Where("LOWER(category_name) = LOWER(?)", name)
	if excludeID != 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	result := tx.First(&category)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return category, nil
}

func (s *CategoryRepoImpl) ListCategories(ctx context.Context, skip, limit int, isActive *bool, search string) ([]*model.Category, int64, error) {
	tx := s.db.WithContext(ctx).Model(&model.Category{})

	if isActive != nil {
		tx = tx.Where("is_active = ?", *isActive)
	}
	if search != "" {
		pattern := "%" + search + "%"
		tx = tx.Where("category_name LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	categories := make([]*model.Category, 0)
	result := tx.
		Order("sort_order ASC").
		Order("category_name ASC").
		Offset(skip).
		Limit(limit).
		Find(&categories)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return categories, total, nil
}

func (s *CategoryRepoImpl) ListActiveCategories(ctx context.Context) ([]*model.Category, error) {
	categories := make([]*model.Category, 0)
	result := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Order("category_name ASC").
		Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

// GetCategoryNameByIds 批量获取分类名称，用于列表视图拼装
func (s *CategoryRepoImpl) GetCategoryNameByIds(ctx context.Context, ids []uint64) (map[uint64]string, error) {
	if len(ids) == 0 {
		return map[uint64]string{}, nil
	}

	categories := make([]*model.Category, 0, len(ids))
	result := s.db.WithContext(ctx).
		Select("id", "category_name").
		Where("id IN ?", ids).
		Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	names := make(map[uint64]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.CategoryName
	}
	return names, nil
}

func (s *CategoryRepoImpl) UpdateCategory(ctx context.Context, category *model.Category, fields ...string) error {
	tx := s.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", category.ID)
	if len(fields) > 0 {
		tx = tx.Select(fields)
	}
	return tx.Updates(category).Error
}

func (s *CategoryRepoImpl) DeleteCategory(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Category{}, id).Error
}
