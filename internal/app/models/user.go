package models

// User defines an account that can sign in to the system. An account may be
// linked to a student; deleting that student cascades to the account.
type User struct {
	ID               int64   `json:"id" db:"id"`
	Username         string  `json:"username" db:"username"`
	PasswordHash     string  `json:"-" db:"password_hash"`
	Role             Role    `json:"role" db:"role"`
	StudentMatricule *string `json:"studentMatricule,omitempty" db:"student_matricule"`
}
