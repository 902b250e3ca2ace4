package dto

import (
	"rimbest/internal/domains/auth/model"
	"time"
)

type SignInRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required"`
}

type SignUpRequest struct {
	Username    string `json:"username"    validate:"required,min=3,max=50"`
	Email       string `json:"email"       validate:"required,email"`
	Password    string `json:"password"    validate:"required,min=6,max=100"`
	FullName    string `json:"fullName"    validate:"required,min=2,max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=8,max=20"`
}

func (r *SignUpRequest) ToModel() model.Registration {
	return model.Registration{
		Username:    r.Username,
		Email:       r.Email,
		Password:    r.Password,
		FullName:    r.FullName,
		PhoneNumber: r.PhoneNumber,
	}
}

type SessionResponse struct {
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsAdmin   bool   `json:"isAdmin"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

func (r *SessionResponse) FromModel(session model.Session) {
	r.UserID = session.UserID
	r.Username = session.Username
	r.Email = session.Email
	r.Role = session.Role
	r.IsAdmin = session.IsAdmin()

	if !session.ExpiresAt.IsZero() {
		r.ExpiresAt = session.ExpiresAt.Format(time.RFC3339)
	}
}

type SignInResponse struct {
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
}

func (r *SignInResponse) FromModel(session model.Session) {
	r.Token = session.Token
	r.Session.FromModel(session)
}
