package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	ADMIN = iota
	AUTHOR
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"unique" binding:"required"`
	Nickname  string    `json:"nickname"`
	Email     string    `json:"email"`
	PwdHash   string    `json:"-"`
	Role      int       `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == ADMIN
}

// SetPassword stores the bcrypt hash of pwd.
func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PwdHash = string(hash)
	return nil
}

func (u *User) ValidatePassword(pwd string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PwdHash), []byte(pwd)) == nil
}
