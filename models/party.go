package models

// PartyType discriminates the role an involved party plays in an incident
type PartyType string

// Party roles. The REST surface exposes victims and suspects as separate
// sub-resources but both are stored as involved parties.
const (
	PartyVictim  PartyType = "VICTIM"
	PartySuspect PartyType = "SUSPECT"
)

// InvolvedParty holds the structure for the parties collection. Victims and
// suspects share this shape; PartyType carries the role. An ID of 0 marks an
// unsaved row within its incident's collection.
type InvolvedParty struct {
	ID                  int       `json:"id" bson:"id"`
	Incident            int       `json:"incident" bson:"incident"`
	PartyType           PartyType `json:"party_type" bson:"party_type"`
	FirstName           string    `json:"first_name" bson:"first_name"`
	LastName            string    `json:"last_name" bson:"last_name"`
	OfficerSigned       Officer   `json:"officer_signed" bson:"officer_signed"`
	Juvenile            bool      `json:"juvenile" bson:"juvenile"`
	HomeAddress         Address   `json:"home_address" bson:"home_address"`
	EmployerAddress     Address   `json:"employer_address" bson:"employer_address"`
	DateOfBirth         DateTime  `json:"date_of_birth" bson:"date_of_birth"`
	Sex                 string    `json:"sex" bson:"sex"`
	Race                string    `json:"race" bson:"race"`
	Height              int       `json:"height" bson:"height"`
	Weight              int       `json:"weight" bson:"weight"`
	HairColor           string    `json:"hair_color" bson:"hair_color"`
	EyeColor            string    `json:"eye_color" bson:"eye_color"`
	Build               string    `json:"build" bson:"build"`
	Tattoos             string    `json:"tattoos" bson:"tattoos"`
	Scars               string    `json:"scars" bson:"scars"`
	Hairstyle           string    `json:"hairstyle" bson:"hairstyle"`
	DriversLicense      string    `json:"drivers_license" bson:"drivers_license"`
	DriversLicenseState string    `json:"drivers_license_state" bson:"drivers_license_state"`
	Employer            string    `json:"employer" bson:"employer"`
}

// NewInvolvedParty returns a blank editable party row for the given incident
// and role
func NewInvolvedParty(incidentID int, partyType PartyType) InvolvedParty {
	return InvolvedParty{
		Incident:  incidentID,
		PartyType: partyType,
	}
}

// Equals reports full structural equality across every field, delegating
// into the nested officer, address and date-of-birth records
func (p InvolvedParty) Equals(other InvolvedParty) bool {
	if !p.OfficerSigned.Equals(other.OfficerSigned) {
		return false
	}
	p.OfficerSigned, other.OfficerSigned = Officer{}, Officer{}
	return Equal(p, other)
}

// IsNew reports whether the party row has never been saved
func (p InvolvedParty) IsNew() bool {
	return p.ID == 0
}
