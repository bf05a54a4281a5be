package entities

import "time"

// User is a profile bound to an external auth subject. Authentication
// itself is delegated; the service only maps the verified subject id
// (AuthUID) to this record.
//
// Storage model (DynamoDB, table users):
//   - PK: id
//   - GSI auth_uid-index: auth_uid (unique by construction)
type User struct {
	ID           string     `json:"id"`
	AuthUID      string     `json:"auth_uid"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone,omitempty"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	RegisteredAt time.Time  `json:"registered_at"`
}

// FullName is used in outbound notification emails.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
