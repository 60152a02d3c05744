package api

// LoginRequest carries credentials for /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest creates an account via /auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// GenerateRequest asks the server to produce content from a prompt.
type GenerateRequest struct {
	Prompt      string `json:"prompt" validate:"required"`
	Language    string `json:"language" validate:"required"`
	Tone        string `json:"tone" validate:"required"`
	SaveAsDraft bool   `json:"save_as_draft"`
}

// UpdateContentRequest edits an existing item. Status must be one of the
// known content statuses.
type UpdateContentRequest struct {
	Title  string `json:"title" validate:"required"`
	Body   string `json:"body" validate:"required"`
	Status string `json:"status" validate:"required,oneof=draft published"`
}

// CreateTemplateRequest adds a custom template owned by the caller.
type CreateTemplateRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
	Prompt   string `json:"prompt" validate:"required"`
	Language string `json:"language" validate:"required"`
}

// UpdateUserRequest is the admin edit-user payload.
type UpdateUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest is the admin password-reset payload.
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// BulkDeleteRequest carries the full selection for a bulk delete.
type BulkDeleteRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1,dive,gt=0"`
}
