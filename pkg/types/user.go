package types

// User 后台管理员账号
type User struct {
	ID        string `json:"id" db:"id"`
	Appid     string `json:"appid" db:"appid"`
	Name      string `json:"name" db:"name"`
	Email     string `json:"email" db:"email"`
	Avatar    string `json:"avatar" db:"avatar"`
	Salt      string `json:"-" db:"salt"`
	Password  string `json:"-" db:"password"`
	Source    string `json:"-" db:"source"`
	UpdatedAt int64  `json:"updated_at" db:"updated_at"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
}

const (
	GlobalRoleAdmin  = "role-admin"
	GlobalRoleMember = "role-member"
)
