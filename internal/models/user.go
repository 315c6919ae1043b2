package models

import (
	"errors"
	"regexp"
	"unicode/utf8"

	"gorm.io/gorm"
)

// MinPasswordLength is the minimum number of characters for a password.
const MinPasswordLength = 8

var loginPattern = regexp.MustCompile(`^[a-zA-Z0-9_]{5,20}$`)

// User is a person that can sign in. Each user owns exactly one Wallet,
// created together with the user.
type User struct {
	DefaultModel
	Name         string   `json:"name" example:"Jane Doe"`
	Login        string   `json:"login" gorm:"uniqueIndex:idx_users_login;not null" example:"jane_doe"`
	PasswordHash string   `json:"-"`
	Wallets      []Wallet `json:"-"`
}

func (User) Self() string {
	return "User"
}

// ValidateLogin checks the login format.
func ValidateLogin(login string) error {
	if !loginPattern.MatchString(login) {
		return ErrLoginFormat
	}

	return nil
}

// ValidatePassword checks the password length, counted in characters.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	return nil
}

// CheckSignUp verifies that a user with the login and password can be
// created. The checks run in a fixed order and the first failing one is
// returned: ErrLoginTaken, ErrLoginFormat, ErrPasswordTooShort.
func CheckSignUp(db *gorm.DB, login, password string) error {
	taken, err := LoginExists(db, login)
	if err != nil {
		return err
	}

	if taken {
		return ErrLoginTaken
	}

	err = ValidateLogin(login)
	if err != nil {
		return err
	}

	return ValidatePassword(password)
}

// LoginExists reports if a user with the login exists.
func LoginExists(db *gorm.DB, login string) (bool, error) {
	var count int64
	err := db.Model(&User{}).Where("login = ?", login).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// UserByLogin returns the user with the login.
func UserByLogin(db *gorm.DB, login string) (User, error) {
	var user User
	err := db.Where("login = ?", login).First(&user).Error
	return user, err
}

// CreateUserWithWallet creates the user and its wallet in one transaction.
//
// The wallet is inserted after the user so that it references the ID
// the database assigned to the user.
func CreateUserWithWallet(db *gorm.DB, name, login, passwordHash string) (User, Wallet, error) {
	user := User{
		Name:         name,
		Login:        login,
		PasswordHash: passwordHash,
	}
	var wallet Wallet

	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Create(&user).Error
		if err != nil {
			return err
		}

		wallet = Wallet{UserID: user.ID}
		return tx.Create(&wallet).Error
	})
	if err != nil {
		if errors.Is(err, ErrLoginTaken) {
			return User{}, Wallet{}, ErrLoginTaken
		}
		return User{}, Wallet{}, err
	}

	return user, wallet, nil
}
