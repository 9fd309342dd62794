package service

import (
	"Mediahub/internal/api/dto"
	"Mediahub/internal/model"
	"Mediahub/internal/pkg/storage"
	"Mediahub/internal/repository"
	"context"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMediaService(t *testing.T, db *gorm.DB, store *storage.Storage) *MediaServiceImpl {
	t.Helper()
	svc := NewMediaService(
		repository.NewMediaRepo(db),
		repository.NewCategoryRepo(db),
		store,
	)
	return svc.(*MediaServiceImpl)
}

// countFilesUnder 统计目录树下的普通文件数量
func countFilesUnder(t *testing.T, root string) int {
	t.Helper()
	count := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	if os.IsNotExist(err) {
		return 0
	}
	require.NoError(t, err)
	return count
}

func uploadDTO(categoryID uint64) *dto.MediaUploadDTO {
	return &dto.MediaUploadDTO{
		Title:      "春日相册",
		CategoryID: categoryID,
		MediaType:  "image",
	}
}

func TestCreateMediaWithFiles(t *testing.T) {
	db := newTestDB(t)
	store := newTestStorage(t)
	svc := newMediaService(t, db, store)

	user := seedUser(t, db, "uploader", model.PermissionUser)
	category := seedCategory(t, db, "风景", true)

	files := []*multipart.FileHeader{
		makeFileHeader(t, "first.jpg", "image/jpeg", []byte("aaa")),
		makeFileHeader(t, "second.png", "image/png", []byte("bbbb")),
		makeFileHeader(t, "third.webp", "image/webp", []byte("ccccc")),
	}

	result, err := svc.CreateMediaWithFiles(context.Background(), user.ID, uploadDTO(category.ID), files)
	require.NoError(t, err)

	assert.NotZero(t, result.MediaID)
	assert.Equal(t, "春日相册", result.Title)
	assert.Equal(t, 3, result.TotalFiles)
	require.Len(t, result.UploadedFiles, 3)
	assert.Equal(t, "jpg", result.UploadedFiles[0].FileExtension)

	// 库内父子记录完整
	var pathRows []model.MediaPath
	require.NoError(t, db.Where("media_id = ?", result.MediaID).Order("sort_order ASC").Find(&pathRows).Error)
	require.Len(t, pathRows, 3)
	for i, row := range pathRows {
		assert.Equal(t, i, row.SortOrder)
		assert.Equal(t, i == 0, row.IsPrimary)
		assert.Equal(t, user.ID, row.CreatedBy)

		// 全部文件实际落盘
		_, statErr := os.Stat(row.FilePath)
		assert.NoError(t, statErr)
	}
}

func TestCreateMediaWithFilesRollsBackOnBadFile(t *testing.T) {
	db := newTestDB(t)
	store := newTestStorage(t)
	svc := newMediaService(t, db, store)

	user := seedUser(t, db, "uploader", model.PermissionUser)
	category := seedCategory(t, db, "风景", true)

	files := []*multipart.FileHeader{
		makeFileHeader(t, "ok1.jpg", "image/jpeg", []byte("aaa")),
		makeFileHeader(t, "ok2.png", "image/png", []byte("bbb")),
		makeFileHeader(t, "bad.mp4", "video/mp4", []byte("ccc")),
	}

	_, err := svc.CreateMediaWithFiles(context.Background(), user.ID, uploadDTO(category.ID), files)
	assert.ErrorIs(t, err, storage.ErrInvalidFileType)

	// 事务回滚后不留任何库内记录
	var mediaCount, pathCount int64
	require.NoError(t, db.Model(&model.Media{}).Count(&mediaCount).Error)
	require.NoError(t, db.Model(&model.MediaPath{}).Count(&pathCount).Error)
	assert.Zero(t, mediaCount)
	assert.Zero(t, pathCount)

	// 已写入的文件被补偿删除
	assert.Zero(t, countFilesUnder(t, store.UploadDir(model.MediaTypeImage, user.ID, category.ID)))
}

func TestCreateMediaWithFilesLimits(t *testing.T) {
	db := newTestDB(t)
	svc := newMediaService(t, db, newTestStorage(t))

	user := seedUser(t, db, "uploader", model.PermissionUser)
	category := seedCategory(t, db, "风景", true)

	_, err := svc.CreateMediaWithFiles(context.Background(), user.ID, uploadDTO(category.ID), nil)
	assert.ErrorIs(t, err, ErrNoFilesProvided)

	many := make([]*multipart.FileHeader, 0, 11)
	for i := 0; i < 11; i++ {
		many = append(many, makeFileHeader(t, "a.jpg", "image/jpeg", []byte("x")))
	}
	_, err = svc.CreateMediaWithFiles(context.Background(), user.ID, uploadDTO(category.ID), many)
	assert.ErrorIs(t, err, ErrTooManyFiles)
}

func TestCreateMediaWithFilesCategoryChecks(t *testing.T) {
	db := newTestDB(t)
	svc := newMediaService(t, db, newTestStorage(t))

	user := seedUser(t, db, "uploader", model.PermissionUser)
	inactive := seedCategory(t, db, "停用分类", false)

	files := []*multipart.FileHeader{makeFileHeader(t, "a.jpg", "image/jpeg", []byte("x"))}

	// 停用分类不可上传
	_, err := svc.CreateMediaWithFiles(context.Background(), user.ID, uploadDTO(inactive.ID), files)
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	// 不存在的分类
	_, err = svc.CreateMediaWithFiles(context.Background(), user.ID, uploadDTO(9999), files)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestGetMediaWithPaths(t *testing.T) {
	db := newTestDB(t)
	store := newTestStorage(t)
	svc := newMediaService(t, db, store)

	user := seedUser(t, db, "uploader", model.PermissionUser)
	category := seedCategory(t, db, "风景", true)

	files := []*multipart.FileHeader{
		makeFileHeader(t, "a.jpg", "image/jpeg", []byte("x")),
		makeFileHeader(t, "b.png", "image/png", []byte("y")),
	}
	created, err := svc.CreateMediaWithFiles(context.Background(), user.ID, uploadDTO(category.ID), files)
	require.NoError(t, err)

	media, err := svc.GetMediaWithPaths(context.Background(), created.MediaID)
	require.NoError(t, err)

	require.NotNil(t, media.CategoryName)
	assert.Equal(t, "风景", *media.CategoryName)
	require.Len(t, media.Paths, 2)
	assert.True(t, media.Paths[0].IsPrimary)
	assert.False(t, media.Paths[1].IsPrimary)

	_, err = svc.GetMediaWithPaths(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrMediaNotFound)
}

func TestGetMediaCurrentMonthWindow(t *testing.T) {
	db := newTestDB(t)
	svc := newMediaService(t, db, newTestStorage(t))

	// 固定时钟在月中
	svc.now = func() time.Time {
		return time.Date(2026, 1, 18, 12, 0, 0, 0, time.UTC)
	}

	category := seedCategory(t, db, "风景", true)

	seedMediaAt := func(title string, createdAt time.Time, isActive bool) {
		media := &model.Media{
			Title:      title,
			CategoryID: category.ID,
			UserID:     1,
			MediaType:  model.MediaTypeImage,
			IsActive:   isActive,
		}
		require.NoError(t, db.Create(media).Error)
		require.NoError(t, db.Model(&model.Media{}).
			Where("id = ?", media.ID).
			Update("created_at", createdAt).Error)
	}

	seedMediaAt("月初", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), true)
	seedMediaAt("月中", time.Date(2026, 1, 15, 8, 30, 0, 0, time.UTC), true)
	seedMediaAt("上月末", time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC), true)
	seedMediaAt("下月初", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), true)
	seedMediaAt("当月但已停用", time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), false)

	result, err := svc.GetMediaCurrentMonth(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, "2026-01-01", result.DateRange.Start)
	assert.Equal(t, "2026-01-31", result.DateRange.End)

	// 创建时间倒序
	require.Len(t, result.Data, 2)
	assert.Equal(t, "月中", result.Data[0].Title)
	assert.Equal(t, "月初", result.Data[1].Title)
	require.NotNil(t, result.Data[0].CategoryName)
	assert.Equal(t, "风景", *result.Data[0].CategoryName)
}

func TestGetMediaCurrentMonthFilters(t *testing.T) {
	db := newTestDB(t)
	svc := newMediaService(t, db, newTestStorage(t))

	svc.now = func() time.Time {
		return time.Date(2026, 1, 18, 12, 0, 0, 0, time.UTC)
	}

	scenery := seedCategory(t, db, "风景", true)
	travel := seedCategory(t, db, "旅行", true)

	inMonth := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	seed := func(categoryID uint64, mediaType model.MediaType) {
		media := &model.Media{
			Title:      "样例",
			CategoryID: categoryID,
			UserID:     1,
			MediaType:  mediaType,
			IsActive:   true,
		}
		require.NoError(t, db.Create(media).Error)
		require.NoError(t, db.Model(&model.Media{}).
			Where("id = ?", media.ID).
			Update("created_at", inMonth).Error)
	}

	seed(scenery.ID, model.MediaTypeImage)
	seed(scenery.ID, model.MediaTypeVideo)
	seed(travel.ID, model.MediaTypeImage)

	videoType := model.MediaTypeVideo
	result, err := svc.GetMediaCurrentMonth(context.Background(), nil, &videoType)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)

	result, err = svc.GetMediaCurrentMonth(context.Background(), &scenery.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)

	imageType := model.MediaTypeImage
	result, err = svc.GetMediaCurrentMonth(context.Background(), &travel.ID, &imageType)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
}
