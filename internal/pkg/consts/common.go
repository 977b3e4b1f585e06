package consts

const (
	// PrincipalIDKey gin.Context 中保存登录用户 ID 的键
	PrincipalIDKey = "principal_id"
	RoleKey        = "role"
)
