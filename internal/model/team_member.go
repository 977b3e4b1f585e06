package model

import "time"

const TeamMemberStatusActive = "active"

// TeamMember 团队成员授权记录：AdminUserID 授权 MemberUserID 查看其数据
type TeamMember struct {
	ID           string    `gorm:"primaryKey;type:char(36)" json:"id"`
	AdminUserID  string    `gorm:"not null;type:char(36);index" json:"admin_user_id"`
	MemberUserID *string   `gorm:"type:char(36);index:idx_member_status" json:"member_user_id"`
	InvitedEmail string    `gorm:"not null;type:varchar(255)" json:"invited_email"`
	Status       string    `gorm:"not null;type:varchar(16);index:idx_member_status" json:"status"`
	InvitedAt    time.Time `json:"invited_at"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
