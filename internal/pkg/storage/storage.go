package storage

import (
	"Mediahub/internal/api/config"
	"Mediahub/internal/model"
	"errors"
	"fmt"
	"io"
	log "log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidFileType = errors.New("文件类型与媒体类型不匹配")
	ErrFileTooLarge    = errors.New("文件大小超出限制")
)

const (
	// MaxImageSize 单张图片上限 10 MiB
	MaxImageSize = 10 * 1024 * 1024
	// MaxVideoSize 单个视频上限 100 MiB
	MaxVideoSize = 100 * 1024 * 1024

	// 清洗后文件名主干长度上限
	maxSafeNameLen = 50
)

var allowedImageExtensions = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {}, ".bmp": {},
}

var allowedVideoExtensions = map[string]struct{}{
	".mp4": {}, ".avi": {}, ".mov": {}, ".mkv": {}, ".webm": {}, ".flv": {},
}

var allowedImageMimes = map[string]struct{}{
	"image/jpeg": {}, "image/png": {}, "image/gif": {},
	"image/webp": {}, "image/bmp": {},
}

var allowedVideoMimes = map[string]struct{}{
	"video/mp4": {}, "video/x-msvideo": {}, "video/quicktime": {},
	"video/x-matroska": {}, "video/webm": {}, "video/x-flv": {},
}

// Storage 本地磁盘存储引擎，根目录来自配置注入
type Storage struct {
	root string
}

func NewStorage(cfg config.UploadConfig) (*Storage, error) {
	if cfg.Root == "" {
		return nil, errors.New("upload root is not configured")
	}
	if err := os.MkdirAll(cfg.Root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to prepare upload root: %w", err)
	}
	return &Storage{root: cfg.Root}, nil
}

// UploadDir 计算目标目录: {root}/{media_type}/user_{id}/category_{id}
func (s *Storage) UploadDir(mediaType model.MediaType, userID, categoryID uint64) string {
	return filepath.Join(
		s.root,
		string(mediaType),
		fmt.Sprintf("user_%d", userID),
		fmt.Sprintf("category_%d", categoryID),
	)
}

// ValidateFileType 依次校验扩展名与 MIME 类型是否符合声明的媒体类型
func ValidateFileType(filename, contentType string, mediaType model.MediaType) error {
	ext := strings.ToLower(filepath.Ext(filename))

	switch mediaType {
	case model.MediaTypeImage:
		if _, ok := allowedImageExtensions[ext]; !ok {
			return ErrInvalidFileType
		}
		if _, ok := allowedImageMimes[contentType]; !ok {
			return ErrInvalidFileType
		}
	case model.MediaTypeVideo:
		if _, ok := allowedVideoExtensions[ext]; !ok {
			return ErrInvalidFileType
		}
		if _, ok := allowedVideoMimes[contentType]; !ok {
			return ErrInvalidFileType
		}
	default:
		return ErrInvalidFileType
	}

	return nil
}

// SaveFile 校验并保存单个上传文件，返回落盘路径与字节数。
// 校验失败时不触盘；写入后的清理由调用方负责。
func (s *Storage) SaveFile(file *multipart.FileHeader, mediaType model.MediaType, destDir string) (string, int64, error) {
	contentType := file.Header.Get("Content-Type")
	if err := ValidateFileType(file.Filename, contentType, mediaType); err != nil {
		return "", 0, err
	}

	reader, err := file.Open()
	if err != nil {
		return "", 0, fmt.Errorf("failed to open upload: %w", err)
	}
	defer func() { _ = reader.Close() }()

	// 整体读入内存后再做大小校验与一次性写盘
	content, err := io.ReadAll(reader)
	if err != nil {
		return "", 0, fmt.Errorf("failed to read upload: %w", err)
	}

	fileSize := int64(len(content))
	if mediaType == model.MediaTypeImage && fileSize > MaxImageSize {
		return "", 0, ErrFileTooLarge
	}
	if mediaType == model.MediaTypeVideo && fileSize > MaxVideoSize {
		return "", 0, ErrFileTooLarge
	}

	fullPath := filepath.Join(destDir, GenerateFilename(file.Filename))

	if err = os.MkdirAll(destDir, 0o755); err != nil {
		return "", 0, fmt.Errorf("failed to create upload directory: %w", err)
	}

	if err = os.WriteFile(fullPath, content, 0o644); err != nil {
		return "", 0, fmt.Errorf("failed to write file: %w", err)
	}

	return fullPath, fileSize, nil
}

// DeleteFile 尽力删除文件，永不抛错
func (s *Storage) DeleteFile(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil || info.IsDir() {
		return false
	}
	if err = os.Remove(filePath); err != nil {
		log.Warn("failed to delete file", "path", filePath, "err", err)
		return false
	}
	return true
}

// GenerateFilename 生成防碰撞文件名: {yyyyMMdd_HHmmss}_{8位随机}_{清洗后原名}{扩展名}
func GenerateFilename(originalName string) string {
	timestamp := time.Now().Format("20060102_150405")
	uniqueID := uuid.NewString()[:8]
	ext := filepath.Ext(originalName)
	stem := strings.TrimSuffix(filepath.Base(originalName), ext)

	return fmt.Sprintf("%s_%s_%s%s", timestamp, uniqueID, sanitizeName(stem), ext)
}

// sanitizeName 仅保留字母数字、空格、连字符、下划线
func sanitizeName(name string) string {
	var b strings.Builder
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteRune(c)
		case c == ' ' || c == '-' || c == '_':
			b.WriteRune(c)
		}
	}
	safe := strings.TrimSpace(b.String())
	if len(safe) > maxSafeNameLen {
		safe = safe[:maxSafeNameLen]
	}
	return safe
}
