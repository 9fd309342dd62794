package service

import (
	"Mediahub/internal/api/dto"
	"Mediahub/internal/model"
	"Mediahub/internal/pkg/consts"
	"Mediahub/internal/pkg/storage"
	"Mediahub/internal/pkg/util"
	"Mediahub/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/gorm"
)

type MediaService interface {
	CreateMediaWithFiles(ctx context.Context, userID uint64, d *dto.MediaUploadDTO, files []*multipart.FileHeader) (*dto.MediaCreateDTO, error)
	GetMediaWithPaths(ctx context.Context, id uint64) (*dto.MediaDTO, error)
	GetMediaCurrentMonth(ctx context.Context, categoryID *uint64, mediaType *model.MediaType) (*dto.MediaMonthDTO, error)
}

type MediaServiceImpl struct {
	mediaRepo    repository.MediaRepo
	categoryRepo repository.CategoryRepo
	store        *storage.Storage

	// 注入时钟，便于固定时间窗口测试
	now func() time.Time
}

func NewMediaService(mediaRepo repository.MediaRepo, categoryRepo repository.CategoryRepo, store *storage.Storage) MediaService {
	return &MediaServiceImpl{
		mediaRepo:    mediaRepo,
		categoryRepo: categoryRepo,
		store:        store,
		now:          time.Now,
	}
}

// CreateMediaWithFiles 创建媒体记录并落盘全部文件。
// 数据库写入在单个事务内完成，事务回滚后补偿删除已写入的文件。
func (s *MediaServiceImpl) CreateMediaWithFiles(ctx context.Context, userID uint64, d *dto.MediaUploadDTO, files []*multipart.FileHeader) (*dto.MediaCreateDTO, error) {
	if err := util.ValidateDTO(d); err != nil {
		return nil, ErrParamInvalid
	}

	mediaType, ok := model.ParseMediaType(d.MediaType)
	if !ok {
		return nil, ErrParamInvalid
	}

	if len(files) == 0 {
		return nil, ErrNoFilesProvided
	}
	if len(files) > consts.MaxUploadFiles {
		return nil, ErrTooManyFiles
	}

	category, err := s.categoryRepo.GetCategoryById(ctx, d.CategoryID)
	if err != nil {
		log.Error("查询分类失败", "err", err)
		return nil, UnExpectedError
	}
	if category == nil || !category.IsActive {
		return nil, ErrCategoryNotFound
	}

	isActive := true
	if d.IsActive != nil {
		isActive = *d.IsActive
	}

	media := &model.Media{
		Title:       strings.TrimSpace(d.Title),
		Description: d.Description,
		CategoryID:  d.CategoryID,
		UserID:      userID,
		MediaType:   mediaType,
		IsActive:    isActive,
	}

	destDir := s.store.UploadDir(mediaType, userID, d.CategoryID)

	// 事务内落盘；任一文件失败则整体回滚，并删除已写入的文件
	written := make([]string, 0, len(files))
	err = s.mediaRepo.CreateMediaWithPaths(ctx, media, func(mediaID uint64) ([]*model.MediaPath, error) {
		paths := make([]*model.MediaPath, 0, len(files))
		for i, file := range files {
			savedPath, size, saveErr := s.store.SaveFile(file, mediaType, destDir)
			if saveErr != nil {
				return nil, saveErr
			}
			written = append(written, savedPath)

			var mimeType *string
			if ct := file.Header.Get("Content-Type"); ct != "" {
				mimeType = &ct
			}

			paths = append(paths, &model.MediaPath{
				MediaID:       mediaID,
				FilePath:      savedPath,
				FileName:      filepath.Base(savedPath),
				FileSize:      size,
				FileExtension: strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), "."),
				MimeType:      mimeType,
				IsPrimary:     i == 0,
				SortOrder:     i,
				CreatedBy:     userID,
			})
		}
		return paths, nil
	})

	if err != nil {
		for _, path := range written {
			if !s.store.DeleteFile(path) {
				log.Warn("补偿删除文件失败", "path", path)
			}
		}

		if _, known := ErrorMap[err]; known {
			return nil, err
		}
		// 分类与并发删除竞争时由外键约束兜底
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrCategoryNotFound
		}
		log.Error("创建媒体失败", "user_id", userID, "err", err)
		return nil, UnExpectedError
	}

	uploaded := make([]*dto.FileUploadDTO, 0, len(media.Paths))
	for _, path := range media.Paths {
		mimeType := ""
		if path.MimeType != nil {
			mimeType = *path.MimeType
		}
		uploaded = append(uploaded, &dto.FileUploadDTO{
			FileName:      path.FileName,
			FileSize:      path.FileSize,
			FileExtension: path.FileExtension,
			MimeType:      mimeType,
			FilePath:      path.FilePath,
		})
	}

	return &dto.MediaCreateDTO{
		MediaID:       media.ID,
		Title:         media.Title,
		Description:   media.Description,
		CategoryID:    media.CategoryID,
		MediaType:     string(media.MediaType),
		UploadedFiles: uploaded,
		TotalFiles:    len(uploaded),
	}, nil
}

func (s *MediaServiceImpl) GetMediaWithPaths(ctx context.Context, id uint64) (*dto.MediaDTO, error) {
	media, err := s.mediaRepo.GetMediaWithPaths(ctx, id)
	if err != nil {
		log.Error("查询媒体失败", "err", err)
		return nil, UnExpectedError
	}
	if media == nil {
		return nil, ErrMediaNotFound
	}

	names, err := s.categoryRepo.GetCategoryNameByIds(ctx, []uint64{media.CategoryID})
	if err != nil {
		log.Warn("查询分类名称失败", "err", err)
		names = map[uint64]string{}
	}

	return toMediaDTO(media, names), nil
}

// GetMediaCurrentMonth 查询当月启用媒体，窗口为本月1日零点至月末最后一微秒
func (s *MediaServiceImpl) GetMediaCurrentMonth(ctx context.Context, categoryID *uint64, mediaType *model.MediaType) (*dto.MediaMonthDTO, error) {
	today := s.now()
	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	endDate := start.AddDate(0, 1, -1)
	end := start.AddDate(0, 1, 0).Add(-time.Microsecond)

	mediaList, err := s.mediaRepo.ListByCreatedRange(ctx, start, end, categoryID, mediaType)
	if err != nil {
		log.Error("查询当月媒体失败", "err", err)
		return nil, UnExpectedError
	}

	categoryIds := make([]uint64, 0, len(mediaList))
	seen := make(map[uint64]struct{}, len(mediaList))
	for _, media := range mediaList {
		if _, ok := seen[media.CategoryID]; !ok {
			seen[media.CategoryID] = struct{}{}
			categoryIds = append(categoryIds, media.CategoryID)
		}
	}

	names, err := s.categoryRepo.GetCategoryNameByIds(ctx, categoryIds)
	if err != nil {
		log.Warn("查询分类名称失败", "err", err)
		names = map[uint64]string{}
	}

	data := make([]*dto.MediaDTO, 0, len(mediaList))
	for _, media := range mediaList {
		data = append(data, toMediaDTO(media, names))
	}

	return &dto.MediaMonthDTO{
		Success: true,
		Data:    data,
		Total:   len(data),
		DateRange: dto.DateRangeDTO{
			Start: start.Format("2006-01-02"),
			End:   endDate.Format("2006-01-02"),
		},
	}, nil
}

func toMediaDTO(media *model.Media, categoryNames map[uint64]string) *dto.MediaDTO {
	paths := make([]*dto.MediaPathDTO, 0, len(media.Paths))
	for _, path := range media.Paths {
		paths = append(paths, &dto.MediaPathDTO{
			ID:            path.ID,
			FilePath:      path.FilePath,
			FileName:      path.FileName,
			FileSize:      path.FileSize,
			FileExtension: path.FileExtension,
			MimeType:      path.MimeType,
			IsPrimary:     path.IsPrimary,
			SortOrder:     path.SortOrder,
			CreatedAt:     path.CreatedAt,
		})
	}

	var categoryName *string
	if name, ok := categoryNames[media.CategoryID]; ok {
		categoryName = &name
	}

	return &dto.MediaDTO{
		ID:           media.ID,
		Title:        media.Title,
		Description:  media.Description,
		CategoryID:   media.CategoryID,
		CategoryName: categoryName,
		UserID:       media.UserID,
		MediaType:    string(media.MediaType),
		IsActive:     media.IsActive,
		CreatedAt:    media.CreatedAt,
		UpdatedAt:    media.UpdatedAt,
		Paths:        paths,
	}
}
