package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims 外部身份服务签发的 Token，sub 为用户 UUID
type UserClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}
