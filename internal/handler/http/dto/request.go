package dto

// UpdateProfileRequest is the candidate field set for a profile update.
// Password is optional; omitting it keeps the current credential.
type UpdateProfileRequest struct {
	Name                 string `json:"name"`
	Surname              string `json:"surname"`
	Email                string `json:"email"`
	Password             string `json:"password,omitempty"`
	PasswordConfirmation string `json:"password_confirmation,omitempty"`
	Username             string `json:"username"`
	Locale               string `json:"locale,omitempty"`
}

// RegisterRequest carries the registration field set. Password is required.
type RegisterRequest struct {
	Name                 string `json:"name"`
	Surname              string `json:"surname"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Username             string `json:"username"`
	Locale               string `json:"locale,omitempty"`
}
