package models

import "encoding/json"

// Officer holds the structure for an officer reference as served by the
// officers catalog and embedded in incident role fields
type Officer struct {
	ID            int  `json:"id" bson:"id"`
	OfficerNumber int  `json:"officer_number" bson:"officer_number"`
	User          User `json:"user" bson:"user"`
}

// UnmarshalJSON accepts either the full officer object or a bare numeric
// id. Clients submit incident role fields as bare ids; reads always carry
// the full object.
func (o *Officer) UnmarshalJSON(b []byte) error {
	var id int
	if err := json.Unmarshal(b, &id); err == nil {
		*o = Officer{ID: id}
		return nil
	}
	type officerAlias Officer
	var a officerAlias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*o = Officer(a)
	return nil
}

// User holds the inner account details attached to an officer
type User struct {
	ID        int    `json:"id,omitempty" bson:"id,omitempty"`
	FirstName string `json:"first_name,omitempty" bson:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty" bson:"last_name,omitempty"`
	Email     string `json:"email,omitempty" bson:"email,omitempty"`
}

// Equals reports whether two officers refer to the same person. Identity is
// carried by id and officer_number; the embedded user details are display
// data and do not participate.
func (o Officer) Equals(other Officer) bool {
	return o.ID == other.ID && o.OfficerNumber == other.OfficerNumber
}
