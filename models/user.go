package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const RoleAdmin Role = "admin"

// User is a patient or staff profile keyed by email. Profile fields without
// a typed counterpart live in Extra.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitzero"`
	Email string             `bson:"email" json:"email"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Role  Role               `bson:"role,omitempty" json:"role,omitempty"`

	Extra map[string]any `bson:",inline" json:"-"`
}

var userFields = []string{"_id", "email", "name", "role"}

type userJSON User

func (u *User) UnmarshalJSON(data []byte) error {
	var typed userJSON
	extra, err := decodeWithExtra(data, &typed, userFields)
	if err != nil {
		return err
	}
	typed.Extra = extra
	*u = User(typed)
	return nil
}

func (u User) MarshalJSON() ([]byte, error) {
	return encodeWithExtra(userJSON(u), u.Extra)
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserProfile is the free-form body a user saves on themselves.
type UserProfile map[string]any

// Sanitized returns the fields a user may set on themselves. The identity
// and role fields are dropped, as are operator and dotted-path keys.
func (p UserProfile) Sanitized() UserProfile {
	out := make(UserProfile, len(p))
	for k, v := range p {
		switch {
		case k == "_id", k == "email", k == "role":
		case k == "", strings.HasPrefix(k, "$"), strings.Contains(k, "."):
		default:
			out[k] = v
		}
	}
	return out
}

// UpsertUserResponse is returned when a profile is saved and a session issued.
type UpsertUserResponse struct {
	Result *WriteResult `json:"result"`
	Token  string       `json:"token"`
}
