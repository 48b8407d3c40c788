package domain

// MaxUsernameLength matches the length of the auth user table
const MaxUsernameLength = 150

// User is an account that owns kanbans and tasks
type User struct {
	BaseModel
	Username     string `gorm:"type:varchar(150);not null;uniqueIndex:uq_users_username" json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
