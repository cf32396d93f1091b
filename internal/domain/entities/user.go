package entities

import "time"

// User is a known person tasks can be assigned to.
//
// Password is stored and compared in plain text and the username doubles as
// the bearer token. This is a placeholder identity scheme, not a security
// boundary.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Tasks []Task `json:"-" gorm:"foreignKey:AssigneeID"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}

// NewUser creates a user with the given credentials
func NewUser(username, password string) *User {
	return &User{
		Username: username,
		Password: password,
	}
}

// PasswordMatches compares the stored plain-text password
func (u *User) PasswordMatches(password string) bool {
	return u.Password == password
}

// Validate validates user data
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrInvalidUsername
	}
	if u.Password == "" {
		return ErrInvalidPassword
	}
	return nil
}

// PublicUser is the user shape returned to clients
type PublicUser struct {
	Username string `json:"username"`
	ID       uint   `json:"id"`
}

// ToPublic converts User to PublicUser
func (u *User) ToPublic() *PublicUser {
	return &PublicUser{
		Username: u.Username,
		ID:       u.ID,
	}
}
