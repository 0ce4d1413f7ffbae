package models

// Address holds a street address broken into the components the report forms
// bind to
type Address struct {
	StreetNumber string `json:"street_number" bson:"street_number"`
	Route        string `json:"route" bson:"route"`
	City         string `json:"city" bson:"city"`
	State        string `json:"state" bson:"state"`
	PostalCode   string `json:"postal_code" bson:"postal_code"`
}

// Equals reports whether every component of both addresses matches
func (a Address) Equals(other Address) bool {
	return Equal(a, other)
}
