package consts

const (
	// TokenDenyKey 已注销 Token 签名黑名单
	TokenDenyKey = "auth:token:deny:"
)
