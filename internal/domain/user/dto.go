package user

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminUpdateUserInput carries the fields a platform admin may change on
// another account. Nil pointers leave the field untouched.
type AdminUpdateUserInput struct {
	Role       *string `json:"role"`
	IsVerified *bool   `json:"is_verified"`
}
