package service

import (
	"Mediahub/internal/api/config"
	"Mediahub/internal/model"
	"Mediahub/internal/pkg/storage"
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB 每个测试一个独立的内存库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Media{},
		&model.MediaPath{},
	))
	return db
}

func newTestStorage(t *testing.T) *storage.Storage {
	t.Helper()
	store, err := storage.NewStorage(config.UploadConfig{Root: t.TempDir()})
	require.NoError(t, err)
	return store
}

func makeFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(int64(len(content)) + 4096)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["files"][0]
}

func seedUser(t *testing.T, db *gorm.DB, username string, permission model.Permission) *model.User {
	t.Helper()
	user := &model.User{
		Username:   username,
		Password:   "$2a$12$placeholderplaceholderplaceholderplaceholder",
		Permission: permission,
		Role:       "viewer",
		IsActive:   true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, name string, isActive bool) *model.Category {
	t.Helper()
	category := &model.Category{
		CategoryName: name,
		IsActive:     isActive,
		CreatedBy:    1,
	}
	require.NoError(t, db.Create(category).Error)
	return category
}
