package service

import (
	"Mediahub/internal/pkg/storage"
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid        = errors.New("参数错误")
	ErrInvalidCredentials  = errors.New("认证失败")
	ErrUserInactive        = errors.New("账号已被停用")
	ErrPermissionDenied    = errors.New("权限不足")
	ErrUserNotFound        = errors.New("用户不存在")
	ErrUsernameExist       = errors.New("用户名已存在")
	ErrPasswordIncorrect   = errors.New("密码错误")
	ErrCategoryNotFound    = errors.New("分类不存在或已停用")
	ErrCategoryNameExist   = errors.New("分类名称已存在")
	ErrCategoryInUse       = errors.New("分类下存在媒体，无法删除")
	ErrMediaNotFound       = errors.New("媒体不存在")
	ErrNoFilesProvided     = errors.New("至少上传一个文件")
	ErrTooManyFiles        = errors.New("单次最多上传10个文件")
	UnExpectedError        = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:            BadRequest,
	ErrInvalidCredentials:      Unauthorized,
	ErrUserInactive:            Forbidden,
	ErrPermissionDenied:        Forbidden,
	ErrUserNotFound:            NotFound,
	ErrUsernameExist:           BadRequest,
	ErrPasswordIncorrect:       Unauthorized,
	ErrCategoryNotFound:        NotFound,
	ErrCategoryNameExist:       BadRequest,
	ErrCategoryInUse:           BadRequest,
	ErrMediaNotFound:           NotFound,
	ErrNoFilesProvided:         BadRequest,
	ErrTooManyFiles:            BadRequest,
	storage.ErrInvalidFileType: BadRequest,
	storage.ErrFileTooLarge:    BadRequest,
	UnExpectedError:            InternalServerError,
}
