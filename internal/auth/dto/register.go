package dto

type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=150"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	CPF      string `json:"cpf" validate:"omitempty,len=11,numeric"`
	Password string `json:"password" validate:"required,min=6"`
	// Role is only honoured on the admin user-creation route.
	Role string `json:"role" validate:"omitempty,oneof=admin manager employee"`
}
