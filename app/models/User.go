package models

// User is one registered account. Username is the display name shown at
// the table; Password holds the bcrypt hash, never plaintext.
type User struct {
	Id       string
	Email    string
	Username string
	Password string
}

type UserDto struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Pass     string `json:"pass"`
}
