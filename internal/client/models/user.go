package models

// User is the identity record issued by the backend after OTP
// verification. At minimum the email is present.
type User struct {
	ID    string `json:"_id,omitempty"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}
