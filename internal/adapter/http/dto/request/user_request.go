package request

import (
	"time"

	"freightmarket/internal/usecase"
)

// UserRegisterRequest binds a marketplace profile to the authenticated
// identity. birth_date is YYYY-MM-DD.
type UserRegisterRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birth_date"`
}

func (r UserRegisterRequest) ToInput() (usecase.RegisterUserInput, error) {
	in := usecase.RegisterUserInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
	}
	if r.BirthDate != "" {
		t, err := time.Parse("2006-01-02", r.BirthDate)
		if err != nil {
			return usecase.RegisterUserInput{}, err
		}
		in.BirthDate = &t
	}
	return in, nil
}
