package models

import (
	"github.com/golang-jwt/jwt/v4"
)

// AccountType is the single role flag the system carries.
type AccountType string

const (
	AccountTypeUser  AccountType = "user"
	AccountTypeAdmin AccountType = "admin"
)

// User represents a registered user (PostgreSQL)
type User struct {
	ID          string      `json:"id" gorm:"primaryKey;size:36"`
	Username    string      `json:"username" gorm:"size:50;uniqueIndex"`
	Email       string      `json:"email" gorm:"size:100;uniqueIndex"`
	PhoneNumber string      `json:"phone_number,omitempty" gorm:"size:30"`
	AccountType AccountType `json:"account_type" gorm:"size:20"`
	IsVerified  bool        `json:"is_verified" gorm:"default:false"`
	Password    string      `json:"-"` // bcrypt hash, never serialized
}

// IsAdmin reports whether the user carries the admin role flag.
func (u *User) IsAdmin() bool {
	return u.AccountType == AccountTypeAdmin
}

// SignupRequest defines the request body for local registration
type SignupRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=50"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number,omitempty" validate:"omitempty,min=7,max=30"`
	Password    string `json:"password" validate:"required,min=8"`
	AccountType string `json:"account_type,omitempty" validate:"omitempty,oneof=user admin"`
}

// SigninRequest defines the request body for login
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID      string      `json:"user_id"`
	Username    string      `json:"username"`
	AccountType AccountType `json:"account_type"`
	jwt.RegisteredClaims
}
