package models

// Choice tables used by the report forms. Eye and hair color codes follow
// the NCIC code sets.

// Shift codes
const (
	ShiftDay     = "D"
	ShiftEvening = "E"
	ShiftNight   = "N"
)

// ShiftChoices maps shift codes to display names
var ShiftChoices = map[string]string{
	ShiftDay:     "Day",
	ShiftEvening: "Evening",
	ShiftNight:   "Night",
}

// SexChoices maps sex codes to display names
var SexChoices = map[string]string{
	"M": "Male",
	"F": "Female",
}

// RaceChoices maps race codes to display names
var RaceChoices = map[string]string{
	"ASIAN":                     "Asian",
	"BLACK":                     "Black/African American",
	"NATIVE":                    "Native American",
	"HAWAIIAN/PACIFIC_ISLANDER": "Native Hawaiian/Pacific Islander",
	"WHITE":                     "White",
	"OTHER":                     "Other",
}

// EyeColorChoices maps NCIC eye color codes to display names
var EyeColorChoices = map[string]string{
	"BLK": "Black",
	"BRO": "Brown",
	"GRN": "Green",
	"MAR": "Maroon",
	"PNK": "Pink",
	"BLU": "Blue",
	"GRY": "Gray",
	"HAZ": "Hazel",
	"MUL": "Multicolored",
	"XXX": "Unknown",
}

// HairColorChoices maps NCIC hair color codes to display names
var HairColorChoices = map[string]string{
	"BLD": "Bald",
	"BLK": "Black",
	"BLN": "Blond or Strawberry",
	"BLU": "Blue",
	"BRO": "Brown",
	"GRY": "Gray or Partially Gray",
	"GRN": "Green",
	"ONG": "Orange",
	"PNK": "Pink",
	"PLE": "Purple",
	"RED": "Red or Auburn",
	"SDY": "Sandy",
	"WHI": "White",
	"XXX": "Unknown",
}

// States maps USPS state abbreviations to state names
var States = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AS": "American Samoa", "AZ": "Arizona",
	"AR": "Arkansas", "CA": "California", "CO": "Colorado", "CT": "Connecticut",
	"DE": "Delaware", "DC": "District Of Columbia", "FM": "Federated States Of Micronesia",
	"FL": "Florida", "GA": "Georgia", "GU": "Guam", "HI": "Hawaii", "ID": "Idaho",
	"IL": "Illinois", "IN": "Indiana", "IA": "Iowa", "KS": "Kansas", "KY": "Kentucky",
	"LA": "Louisiana", "ME": "Maine", "MH": "Marshall Islands", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi",
	"MO": "Missouri", "MT": "Montana", "NE": "Nebraska", "NV": "Nevada",
	"NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "MP": "Northern Mariana Islands",
	"OH": "Ohio", "OK": "Oklahoma", "OR": "Oregon", "PW": "Palau", "PA": "Pennsylvania",
	"PR": "Puerto Rico", "RI": "Rhode Island", "SC": "South Carolina", "SD": "South Dakota",
	"TN": "Tennessee", "TX": "Texas", "UT": "Utah", "VT": "Vermont", "VI": "Virgin Islands",
	"VA": "Virginia", "WA": "Washington", "WV": "West Virginia", "WI": "Wisconsin",
	"WY": "Wyoming",
}

// ChoiceLabel returns the display name for a code, or the code itself when
// it is not in the table
func ChoiceLabel(table map[string]string, code string) string {
	if label, ok := table[code]; ok {
		return label
	}
	return code
}
