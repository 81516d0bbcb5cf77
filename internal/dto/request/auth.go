package request

type RegisterRequest struct {
	FirstName string  `json:"firstName" validate:"required,min=1,max=100"`
	LastName  string  `json:"lastName" validate:"required,min=1,max=100"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=6"`
	Phone     *string `json:"phone,omitempty"`
	// Only customer-facing roles can be chosen at registration; privileged
	// roles are assigned by an admin afterwards.
	Role string `json:"role" validate:"omitempty,oneof=user hall-owner"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
