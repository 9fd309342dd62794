package model

// MediaType 媒体类型，创建后不可变更
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// ParseMediaType 解析并校验媒体类型字符串
func ParseMediaType(s string) (MediaType, bool) {
	switch MediaType(s) {
	case MediaTypeImage, MediaTypeVideo:
		return MediaType(s), true
	}
	return "", false
}

// Permission 用户权限等级
type Permission string

const (
	PermissionUser  Permission = "user"
	PermissionAdmin Permission = "admin"
)

// ParsePermission 解析并校验权限字符串
func ParsePermission(s string) (Permission, bool) {
	switch Permission(s) {
	case PermissionUser, PermissionAdmin:
		return Permission(s), true
	}
	return "", false
}
