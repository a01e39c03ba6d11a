package model

import "golang.org/x/crypto/bcrypt"

// User is an account that may own stores
type User struct {
	BaseModel
	Name     string `gorm:"type:varchar(255)" json:"name"`
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// HasHashedPassword reports whether the stored password is a bcrypt hash.
// Rows written before hashing was introduced hold plaintext.
func (u *User) HasHashedPassword() bool {
	_, err := bcrypt.Cost([]byte(u.Password))
	return err == nil
}
