package contract

import "github.com/alexanderramin/styring/internal/domain"

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return domain.RequireFields(
		domain.Field{Name: "email", Value: r.Email},
		domain.Field{Name: "password", Value: r.Password},
	)
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (r RegisterRequest) Validate() error {
	return domain.RequireFields(
		domain.Field{Name: "name", Value: r.Name},
		domain.Field{Name: "email", Value: r.Email},
		domain.Field{Name: "password", Value: r.Password},
	)
}

// TokenResponse is the success body of both auth endpoints.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ErrorResponse is the error body the backend sends on non-2xx responses.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// CreateProjectRequest is the body of POST /projects.
type CreateProjectRequest struct {
	Name string `json:"name"`
}

func (r CreateProjectRequest) Validate() error {
	p := domain.Project{Name: r.Name}
	return p.Validate()
}
