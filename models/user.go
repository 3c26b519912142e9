package models

import (
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt cost used for hashes generated by this system.
const PasswordHashCost = 10

// User is an administrator account of the legacy 'users' table.
type User struct {
	UID  uint   `json:"uid" gorm:"column:uid;primaryKey"`
	Name string `json:"name" gorm:"column:name;uniqueIndex;not null"`
	Pass string `json:"-" gorm:"column:pass;not null"` // "-" means don't include in JSON responses
	Mail string `json:"mail" gorm:"column:mail"`
}

// TableName explicitly sets the table name for GORM.
func (User) TableName() string {
	return "users"
}

// HashPassword returns a bcrypt hash of password at PasswordHashCost.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// SetPassword hashes the given password and sets it on the user model.
func (u *User) SetPassword(password string) error {
	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}
	u.Pass = hashed
	return nil
}

// CheckPassword verifies if the given password matches the user's hashed password.
// Legacy (non-bcrypt) hashes never match.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Pass), []byte(password))
	return err == nil
}

// SessionUser is what a login session knows about the administrator.
type SessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SessionUser projects the account onto the session identity.
func (u *User) SessionUser() SessionUser {
	return SessionUser{
		ID:    strconv.FormatUint(uint64(u.UID), 10),
		Name:  u.Name,
		Email: u.Mail,
	}
}
