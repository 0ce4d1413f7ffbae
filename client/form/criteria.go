package form

import (
	"github.com/apdreports/incident-reports/models"
)

// Criteria is the full search form value. Every field the search form
// shows must appear here: the sparse-parameter contract diffs the
// submitted value against the blank baseline field by field, and a form
// field missing from this shape would silently always be sent.
type Criteria struct {
	IncidentNumber                string
	Location                      models.Address
	ReportDateTimeMin             models.DateTime
	ReportDateTimeMax             models.DateTime
	EarliestOccurrenceDateTimeMin models.DateTime
	EarliestOccurrenceDateTimeMax models.DateTime
	LatestOccurrenceDateTimeMin   models.DateTime
	LatestOccurrenceDateTimeMax   models.DateTime
	ReportingOfficer              models.Officer
	ReviewedByOfficer             models.Officer
	InvestigatingOfficer          models.Officer
	OfficerMakingReport           models.Officer
	Supervisor                    models.Officer
	Beat                          int
	Shift                         string
	DamagedAmountMin              float64
	DamagedAmountMax              float64
	StolenAmountMin               float64
	StolenAmountMax               float64
	Narrative                     string
	Victim                        VictimCriteria
}

// VictimCriteria is the nested victim block of the search form
type VictimCriteria struct {
	FirstName string
	LastName  string
	Sex       string
	Race      string
	HairColor string
	EyeColor  string
}

// BlankCriteria is the canonical baseline a submitted form is diffed
// against
func BlankCriteria() Criteria {
	return Criteria{}
}

// Params produces the sparse search parameters: a field appears only when
// it differs from the blank baseline, so omission rather than null means
// "no filter on this field". Officer references collapse to bare ids. The
// victim block is never forwarded as an object; its non-blank sub-fields
// flatten to victim_-prefixed keys.
func (c Criteria) Params() map[string]interface{} {
	blank := BlankCriteria()
	params := map[string]interface{}{}

	addScalar(params, "incident_number", c.IncidentNumber, blank.IncidentNumber)
	addObject(params, "location", c.Location, blank.Location)
	addObject(params, "report_datetime_min", c.ReportDateTimeMin, blank.ReportDateTimeMin)
	addObject(params, "report_datetime_max", c.ReportDateTimeMax, blank.ReportDateTimeMax)
	addObject(params, "earliest_occurrence_datetime_min", c.EarliestOccurrenceDateTimeMin, blank.EarliestOccurrenceDateTimeMin)
	addObject(params, "earliest_occurrence_datetime_max", c.EarliestOccurrenceDateTimeMax, blank.EarliestOccurrenceDateTimeMax)
	addObject(params, "latest_occurrence_datetime_min", c.LatestOccurrenceDateTimeMin, blank.LatestOccurrenceDateTimeMin)
	addObject(params, "latest_occurrence_datetime_max", c.LatestOccurrenceDateTimeMax, blank.LatestOccurrenceDateTimeMax)
	addOfficer(params, "reporting_officer", c.ReportingOfficer, blank.ReportingOfficer)
	addOfficer(params, "reviewed_by_officer", c.ReviewedByOfficer, blank.ReviewedByOfficer)
	addOfficer(params, "investigating_officer", c.InvestigatingOfficer, blank.InvestigatingOfficer)
	addOfficer(params, "officer_making_report", c.OfficerMakingReport, blank.OfficerMakingReport)
	addOfficer(params, "supervisor", c.Supervisor, blank.Supervisor)
	addScalar(params, "beat", c.Beat, blank.Beat)
	addScalar(params, "shift", c.Shift, blank.Shift)
	addScalar(params, "damaged_amount_min", c.DamagedAmountMin, blank.DamagedAmountMin)
	addScalar(params, "damaged_amount_max", c.DamagedAmountMax, blank.DamagedAmountMax)
	addScalar(params, "stolen_amount_min", c.StolenAmountMin, blank.StolenAmountMin)
	addScalar(params, "stolen_amount_max", c.StolenAmountMax, blank.StolenAmountMax)
	addScalar(params, "narrative", c.Narrative, blank.Narrative)

	addScalar(params, "victim_first_name", c.Victim.FirstName, blank.Victim.FirstName)
	addScalar(params, "victim_last_name", c.Victim.LastName, blank.Victim.LastName)
	addScalar(params, "victim_sex", c.Victim.Sex, blank.Victim.Sex)
	addScalar(params, "victim_race", c.Victim.Race, blank.Victim.Race)
	addScalar(params, "victim_hair_color", c.Victim.HairColor, blank.Victim.HairColor)
	addScalar(params, "victim_eye_color", c.Victim.EyeColor, blank.Victim.EyeColor)

	return params
}

func addScalar[T comparable](params map[string]interface{}, key string, value, blank T) {
	if value == blank {
		return
	}
	params[key] = value
}

// addObject diffs a structured value with the shared deep-equality helper
func addObject(params map[string]interface{}, key string, value, blank interface{}) {
	if models.Equal(value, blank) {
		return
	}
	params[key] = value
}

func addOfficer(params map[string]interface{}, key string, value, blank models.Officer) {
	if value.Equals(blank) {
		return
	}
	params[key] = value.ID
}
