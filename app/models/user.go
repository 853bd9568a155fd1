package models

// Validate checks if the user record meets all validation requirements
func (u *User) Validate() error {
	return validate.Struct(u)
}
