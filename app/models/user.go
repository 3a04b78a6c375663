package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a record in the usersInfo collection. The frontend posts more
// fields than these on registration (photo URL etc.); they pass through to
// the document untouched, this struct only names the fields the server
// itself reads.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the stored role grants admin access.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}
