package service

import (
	"Mediahub/internal/api/dto"
	"Mediahub/internal/model"
	"Mediahub/internal/pkg/util"
	"Mediahub/internal/repository"
	"context"
	"errors"
	log "log/slog"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, userID uint64, d *dto.CategoryCreateDTO) (*dto.CategoryDTO, error)
	GetCategoryById(ctx context.Context, id uint64, includeCreator bool) (*dto.CategoryDTO, error)
	ListCategories(ctx context.Context, skip, limit int, isActive *bool, search string) (*dto.CategoryListDTO, error)
	ListActiveCategories(ctx context.Context) ([]*dto.CategoryDTO, error)
	UpdateCategory(ctx context.Context, id uint64, d *dto.CategoryUpdateDTO) (*dto.CategoryDTO, error)
	DeleteCategory(ctx context.Context, id uint64, hard bool) error
	ToggleCategory(ctx context.Context, id uint64) (*dto.CategoryDTO, error)
	GetCategoryStats(ctx context.Context, id uint64) (*dto.CategoryStatsDTO, error)
}

type CategoryServiceImpl struct {
	categoryRepo repository.CategoryRepo
	mediaRepo    repository.MediaRepo
	userRepo     repository.UserRepo
}

func NewCategoryService(categoryRepo repository.CategoryRepo, mediaRepo repository.MediaRepo, userRepo repository.UserRepo) CategoryService {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
		mediaRepo:    mediaRepo,
		userRepo:     userRepo,
	}
}

// CreateCategory 创建分类，名称不区分大小写唯一
func (s *CategoryServiceImpl) CreateCategory(ctx context.Context, userID uint64, d *dto.CategoryCreateDTO) (*dto.CategoryDTO, error) {
	if err := util.ValidateDTO(d); err != nil {
		return nil, ErrParamInvalid
	}

	existing, err := s.categoryRepo.GetCategoryByName(ctx, d.CategoryName, 0)
	if err != nil {
		log.Error("查询分类失败", "err", err)
		return nil, UnExpectedError
	}
	if existing != nil {
		return nil, ErrCategoryNameExist
	}

	isActive := true
	if d.IsActive != nil {
		isActive = *d.IsActive
	}

	category := &model.Category{
		CategoryName: d.CategoryName,
		Description:  d.Description,
		Icon:         d.Icon,
		ColorCode:    d.ColorCode,
		SortOrder:    d.SortOrder,
		IsActive:     isActive,
		CreatedBy:    userID,
	}

	if err = s.categoryRepo.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCategoryNameExist
		}
		log.Error("创建分类失败", "err", err)
		return nil, UnExpectedError
	}

	return toCategoryDTO(category), nil
}

func (s *CategoryServiceImpl) GetCategoryById(ctx context.Context, id uint64, includeCreator bool) (*dto.CategoryDTO, error) {
	category, err := s.categoryRepo.GetCategoryById(ctx, id)
	if err != nil {
		log.Error("查询分类失败", "err", err)
		return nil, UnExpectedError
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	categoryDTO := toCategoryDTO(category)

	if includeCreator {
		creator, userErr := s.userRepo.GetUserById(ctx, category.CreatedBy)
		if userErr != nil {
			log.Warn("查询创建者失败", "user_id", category.CreatedBy, "err", userErr)
		} else if creator != nil {
			categoryDTO.CreatorName = &creator.Username
		}
	}

	return categoryDTO, nil
}

func (s *CategoryServiceImpl) ListCategories(ctx context.Context, skip, limit int, isActive *bool, search string) (*dto.CategoryListDTO, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	categories, total, err := s.categoryRepo.ListCategories(ctx, skip, limit, isActive, search)
	if err != nil {
		log.Error("查询分类列表失败", "err", err)
		return nil, UnExpectedError
	}

	list := make([]*dto.CategoryDTO, 0, len(categories))
	for _, category := range categories {
		list = append(list, toCategoryDTO(category))
	}

	return &dto.CategoryListDTO{List: list, Total: total}, nil
}

func (s *CategoryServiceImpl) ListActiveCategories(ctx context.Context) ([]*dto.CategoryDTO, error) {
	categories, err := s.categoryRepo.ListActiveCategories(ctx)
	if err != nil {
		log.Error("查询启用分类失败", "err", err)
		return nil, UnExpectedError
	}

	list := make([]*dto.CategoryDTO, 0, len(categories))
	for _, category := range categories {
		list = append(list, toCategoryDTO(category))
	}
	return list, nil
}

// UpdateCategory 部分更新；改名时重新做唯一性检查
func (s *CategoryServiceImpl) UpdateCategory(ctx context.Context, id uint64, d *dto.CategoryUpdateDTO) (*dto.CategoryDTO, error) {
	if err := util.ValidateDTO(d); err != nil {
		return nil, ErrParamInvalid
	}

	category, err := s.categoryRepo.GetCategoryById(ctx, id)
	if err != nil {
		log.Error("查询分类失败", "err", err)
		return nil, UnExpectedError
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	fields := make([]string, 0, 6)

	if d.CategoryName != nil && *d.CategoryName != category.CategoryName {
		conflict, nameErr := s.categoryRepo.GetCategoryByName(ctx, *d.CategoryName, id)
		if nameErr != nil {
			log.Error("查询分类失败", "err", nameErr)
			return nil, UnExpectedError
		}
		if conflict != nil {
			return nil, ErrCategoryNameExist
		}
		category.CategoryName = *d.CategoryName
		fields = append(fields, "category_name")
	}
	if d.Description != nil {
		category.Description = d.Description
		fields = append(fields, "description")
	}
	if d.Icon != nil {
		category.Icon = d.Icon
		fields = append(fields, "icon")
	}
	if d.ColorCode != nil {
		category.ColorCode = d.ColorCode
		fields = append(fields, "color_code")
	}
	if d.SortOrder != nil {
		category.SortOrder = *d.SortOrder
		fields = append(fields, "sort_order")
	}
	if d.IsActive != nil {
		category.IsActive = *d.IsActive
		fields = append(fields, "is_active")
	}

	if len(fields) == 0 {
		return toCategoryDTO(category), nil
	}

	if err = s.categoryRepo.UpdateCategory(ctx, category, fields...); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCategoryNameExist
		}
		log.Error("更新分类失败", "category_id", id, "err", err)
		return nil, UnExpectedError
	}

	return toCategoryDTO(category), nil
}

// DeleteCategory hard 为真时物理删除，分类下存在媒体则拒绝；否则仅停用
func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, id uint64, hard bool) error {
	category, err := s.categoryRepo.GetCategoryById(ctx, id)
	if err != nil {
		log.Error("查询分类失败", "err", err)
		return UnExpectedError
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	if !hard {
		category.IsActive = false
		if err = s.categoryRepo.UpdateCategory(ctx, category, "is_active"); err != nil {
			log.Error("停用分类失败", "category_id", id, "err", err)
			return UnExpectedError
		}
		return nil
	}

	count, err := s.mediaRepo.CountByCategory(ctx, id, nil, nil)
	if err != nil {
		log.Error("统计分类媒体失败", "category_id", id, "err", err)
		return UnExpectedError
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	if err = s.categoryRepo.DeleteCategory(ctx, id); err != nil {
		// 与并发上传竞争时由外键约束兜底
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrCategoryInUse
		}
		log.Error("删除分类失败", "category_id", id, "err", err)
		return UnExpectedError
	}
	return nil
}

// ToggleCategory 翻转分类启用状态
func (s *CategoryServiceImpl) ToggleCategory(ctx context.Context, id uint64) (*dto.CategoryDTO, error) {
	category, err := s.categoryRepo.GetCategoryById(ctx, id)
	if err != nil {
		log.Error("查询分类失败", "err", err)
		return nil, UnExpectedError
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	category.IsActive = !category.IsActive
	if err = s.categoryRepo.UpdateCategory(ctx, category, "is_active"); err != nil {
		log.Error("更新分类失败", "category_id", id, "err", err)
		return nil, UnExpectedError
	}

	return toCategoryDTO(category), nil
}

// GetCategoryStats 汇总分类下的媒体数量
func (s *CategoryServiceImpl) GetCategoryStats(ctx context.Context, id uint64) (*dto.CategoryStatsDTO, error) {
	category, err := s.categoryRepo.GetCategoryById(ctx, id)
	if err != nil {
		log.Error("查询分类失败", "err", err)
		return nil, UnExpectedError
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	active := true
	imageType := model.MediaTypeImage
	videoType := model.MediaTypeVideo

	total, err := s.mediaRepo.CountByCategory(ctx, id, nil, nil)
	if err != nil {
		log.Error("统计分类媒体失败", "category_id", id, "err", err)
		return nil, UnExpectedError
	}
	activeCount, err := s.mediaRepo.CountByCategory(ctx, id, &active, nil)
	if err != nil {
		log.Error("统计分类媒体失败", "category_id", id, "err", err)
		return nil, UnExpectedError
	}
	imageCount, err := s.mediaRepo.CountByCategory(ctx, id, nil, &imageType)
	if err != nil {
		log.Error("统计分类媒体失败", "category_id", id, "err", err)
		return nil, UnExpectedError
	}
	videoCount, err := s.mediaRepo.CountByCategory(ctx, id, nil, &videoType)
	if err != nil {
		log.Error("统计分类媒体失败", "category_id", id, "err", err)
		return nil, UnExpectedError
	}

	return &dto.CategoryStatsDTO{
		CategoryID:    category.ID,
		CategoryName:  category.CategoryName,
		TotalMedia:    total,
		ActiveMedia:   activeCount,
		InactiveMedia: total - activeCount,
		ImageCount:    imageCount,
		VideoCount:    videoCount,
	}, nil
}

func toCategoryDTO(category *model.Category) *dto.CategoryDTO {
	categoryDTO := &dto.CategoryDTO{}
	if err := copier.Copy(categoryDTO, category); err != nil {
		log.Warn("分类信息拷贝失败", "err", err)
	}
	return categoryDTO
}
