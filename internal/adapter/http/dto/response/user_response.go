package response

import (
	"time"

	"freightmarket/internal/domain/entities"
)

type UserResponse struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	BirthDate    string    `json:"birth_date,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}

func FromUser(u entities.User) UserResponse {
	res := UserResponse{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Phone:        u.Phone,
		RegisteredAt: u.RegisteredAt,
	}
	if u.BirthDate != nil {
		res.BirthDate = u.BirthDate.Format("2006-01-02")
	}
	return res
}
