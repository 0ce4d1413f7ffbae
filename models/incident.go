package models

import "time"

// Incident holds the structure for the incidents collection. An ID of 0
// marks an unsaved record; every sub-resource (victims, suspects, files) is
// keyed by a saved incident's id.
type Incident struct {
	ID                         int       `json:"id" bson:"id"`
	IncidentNumber             string    `json:"incident_number" bson:"incident_number"`
	Location                   Address   `json:"location" bson:"location"`
	ReportDateTime             DateTime  `json:"report_datetime" bson:"report_datetime"`
	ReviewedDateTime           DateTime  `json:"reviewed_datetime" bson:"reviewed_datetime"`
	ApprovedDateTime           DateTime  `json:"approved_datetime" bson:"approved_datetime"`
	EarliestOccurrenceDateTime DateTime  `json:"earliest_occurrence_datetime" bson:"earliest_occurrence_datetime"`
	LatestOccurrenceDateTime   DateTime  `json:"latest_occurrence_datetime" bson:"latest_occurrence_datetime"`
	ReportingOfficer           Officer   `json:"reporting_officer" bson:"reporting_officer"`
	ReviewedByOfficer          Officer   `json:"reviewed_by_officer" bson:"reviewed_by_officer"`
	InvestigatingOfficer       Officer   `json:"investigating_officer" bson:"investigating_officer"`
	OfficerMakingReport        Officer   `json:"officer_making_report" bson:"officer_making_report"`
	Supervisor                 Officer   `json:"supervisor" bson:"supervisor"`
	Beat                       int       `json:"beat" bson:"beat"`
	Shift                      string    `json:"shift" bson:"shift"`
	DamagedAmount              float64   `json:"damaged_amount" bson:"damaged_amount"`
	StolenAmount               float64   `json:"stolen_amount" bson:"stolen_amount"`
	Offenses                   []Offense `json:"offenses" bson:"offenses"`
	Narrative                  string    `json:"narrative" bson:"narrative"`
}

// NewIncident returns a complete unsaved incident suitable for immediate
// form binding. Every datetime field defaults to now and every nested
// reference to its zero record, so no field is missing when the form seeds
// from it.
func NewIncident(now time.Time) Incident {
	stamp := NewDateTime(now)
	return Incident{
		Location:                   Address{},
		ReportDateTime:             stamp,
		ReviewedDateTime:           stamp,
		ApprovedDateTime:           stamp,
		EarliestOccurrenceDateTime: stamp,
		LatestOccurrenceDateTime:   stamp,
		Offenses:                   []Offense{},
	}
}

// IsNew reports whether the incident has never been saved
func (i Incident) IsNew() bool {
	return i.ID == 0
}

// IncidentSubmission is an incident as submitted to the server: the same
// shape as Incident except the officer role fields carry bare officer ids
// instead of nested objects.
type IncidentSubmission struct {
	ID                         int       `json:"id"`
	IncidentNumber             string    `json:"incident_number"`
	Location                   Address   `json:"location"`
	ReportDateTime             DateTime  `json:"report_datetime"`
	ReviewedDateTime           DateTime  `json:"reviewed_datetime"`
	ApprovedDateTime           DateTime  `json:"approved_datetime"`
	EarliestOccurrenceDateTime DateTime  `json:"earliest_occurrence_datetime"`
	LatestOccurrenceDateTime   DateTime  `json:"latest_occurrence_datetime"`
	ReportingOfficer           int       `json:"reporting_officer"`
	ReviewedByOfficer          int       `json:"reviewed_by_officer"`
	InvestigatingOfficer       int       `json:"investigating_officer"`
	OfficerMakingReport        int       `json:"officer_making_report"`
	Supervisor                 int       `json:"supervisor"`
	Beat                       int       `json:"beat"`
	Shift                      string    `json:"shift"`
	DamagedAmount              float64   `json:"damaged_amount"`
	StolenAmount               float64   `json:"stolen_amount"`
	Offenses                   []Offense `json:"offenses"`
	Narrative                  string    `json:"narrative"`
}

// Submission collapses the incident to its wire form for create and update
// calls
func (i Incident) Submission() IncidentSubmission {
	offenses := i.Offenses
	if offenses == nil {
		offenses = []Offense{}
	}
	return IncidentSubmission{
		ID:                         i.ID,
		IncidentNumber:             i.IncidentNumber,
		Location:                   i.Location,
		ReportDateTime:             i.ReportDateTime,
		ReviewedDateTime:           i.ReviewedDateTime,
		ApprovedDateTime:           i.ApprovedDateTime,
		EarliestOccurrenceDateTime: i.EarliestOccurrenceDateTime,
		LatestOccurrenceDateTime:   i.LatestOccurrenceDateTime,
		ReportingOfficer:           i.ReportingOfficer.ID,
		ReviewedByOfficer:          i.ReviewedByOfficer.ID,
		InvestigatingOfficer:       i.InvestigatingOfficer.ID,
		OfficerMakingReport:        i.OfficerMakingReport.ID,
		Supervisor:                 i.Supervisor.ID,
		Beat:                       i.Beat,
		Shift:                      i.Shift,
		DamagedAmount:              i.DamagedAmount,
		StolenAmount:               i.StolenAmount,
		Offenses:                   offenses,
		Narrative:                  i.Narrative,
	}
}
