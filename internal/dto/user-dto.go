package dto

type GrantRoleDTO struct {
	Role string `json:"role" validate:"required,oneof=user writer admin super_admin"`
}
