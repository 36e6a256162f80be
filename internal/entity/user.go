package entity

import (
	"time"
)

// UserRole 用户角色
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleViewer   = "viewer"
)

// User 系统用户
type User struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Username     string     `json:"username" gorm:"size:80;not null;uniqueIndex"`
	Email        string     `json:"email" gorm:"size:120;not null;uniqueIndex"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"`
	FullName     string     `json:"full_name" gorm:"size:120"`
	Role         string     `json:"role" gorm:"size:20;not null;default:operator"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// IsOperator operator及以上可以执行变更操作
func (u *User) IsOperator() bool {
	return u.Role == RoleAdmin || u.Role == RoleOperator
}

// AuditLog 操作审计记录（只增不删）
type AuditLog struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID     string    `json:"user_id" gorm:"type:uuid;index"`
	Action     string    `json:"action" gorm:"size:50;not null"` // component.create, order.update, mrp.generate...
	EntityType string    `json:"entity_type" gorm:"size:50"`
	EntityID   string    `json:"entity_id" gorm:"size:64"`
	Changes    string    `json:"changes" gorm:"type:text"` // 变更内容JSON
	IPAddress  string    `json:"ip_address" gorm:"size:45"`
	UserAgent  string    `json:"user_agent" gorm:"size:500"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
