package dto

// AccessScopeDTO 当前登录用户可查看的账户集合
type AccessScopeDTO struct {
	PrincipalID string   `json:"principalId"`
	OwnerIDs    []string `json:"ownerIds"`
}
