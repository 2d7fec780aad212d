package models

// User is a row of the users table.
type User struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email"`
	Password string `db:"password" json:"-"`
}

// NewUserRequest is the body accepted when registering a user.
type NewUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r NewUserRequest) User() *User {
	return &User{Name: r.Name, Email: r.Email, Password: r.Password}
}
