package model

import "time"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldPassword  = "password_hash"
	FieldRole      = "role"
	FieldIsActive  = "is_active"
	FieldCreatedAt = "created_at"
)

// User mirrors the users table. The password_hash column keeps its
// historical name but stores the credential as entered; comparison at login
// is plain equality.
type User struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     *string   `db:"phone"`
	Password  string    `db:"password_hash"`
	Role      string    `db:"role"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}
