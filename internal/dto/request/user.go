package request

// UpdateUserRequest uses pointers so only supplied fields are overwritten
type UpdateUserRequest struct {
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,min=1,max=100"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	// Honored only when the caller is admin or super-admin
	Role *string `json:"role,omitempty" validate:"omitempty,oneof=user hall-owner admin super-admin"`
}

// ListUsersRequest is built by the handler from query parameters
type ListUsersRequest struct {
	Role   string
	Search string
	Sort   string
	Page   int
	Limit  int
}
