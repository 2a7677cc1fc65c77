package entity

type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"-"` // bcrypt hash
}

// UserRequest is the payload accepted by POST /users and PUT /users/:id.
// Password holds the plain text value; services hash it before storage.
type UserRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
}

// NewUser builds an unsaved user. The password is expected to be hashed already.
func NewUser(req UserRequest, passwordHash string) *User {
	u := &User{}
	u.Replace(req, passwordHash)
	return u
}

// Replace overwrites every mutable field of the user.
func (u *User) Replace(req UserRequest, passwordHash string) {
	u.FirstName = req.FirstName
	u.LastName = req.LastName
	u.Email = req.Email
	u.Password = passwordHash
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

/*
Mysql Schema:

CREATE TABLE users (
	id INT AUTO_INCREMENT PRIMARY KEY,
	first_name VARCHAR(100) NOT NULL,
	last_name VARCHAR(100) NOT NULL,
	email VARCHAR(255) NOT NULL UNIQUE,
	password VARCHAR(255) NOT NULL
);
*/
