package consts

const (
	// MaxUploadFiles 单次上传文件数量上限
	MaxUploadFiles = 10

	// AuthCookieName 会话 Cookie 名称
	AuthCookieName = "jwt_auth_token"

	// DefaultRole 注册时的默认角色标签
	DefaultRole = "viewer"
)
