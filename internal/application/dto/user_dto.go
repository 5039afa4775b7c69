package dto

import "time"

// RegisterRequest entrada para registro: teléfono + código SMS + contraseña.
type RegisterRequest struct {
	Phone    string `json:"phone" validate:"required,len=11"`
	Code     string `json:"code" validate:"required,len=6"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=100"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ChangePasswordRequest entrada para cambiar la contraseña del usuario de la sesión.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// CreateUserRequest entrada para crear un usuario desde el back office.
type CreateUserRequest struct {
	Phone    string `json:"phone" validate:"required,len=11"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=SUPERADMIN VENDOR CUSTOMER"`
	Status   *bool  `json:"status"`
}

// UpdateUserRequest entrada para actualizar un usuario (campos opcionales).
// Password vacío no cambia la contraseña.
type UpdateUserRequest struct {
	Phone    *string `json:"phone" validate:"omitempty,len=11"`
	Name     *string `json:"name" validate:"omitempty,min=2,max=100"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	Role     *string `json:"role" validate:"omitempty,oneof=SUPERADMIN VENDOR CUSTOMER"`
	Status   *bool   `json:"status"`
}

// UserResponse salida de un usuario (sin hash de contraseña).
type UserResponse struct {
	ID        string    `json:"id"`
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Data       []UserResponse `json:"data"`
	Pagination PageResponse   `json:"pagination"`
}

// UserStatsResponse contadores de la pantalla "mi cuenta".
type UserStatsResponse struct {
	FavoriteCount int            `json:"favoriteCount"`
	OrderCounts   map[string]int `json:"orderCounts"`
}
