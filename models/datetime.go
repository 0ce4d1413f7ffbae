package models

import "time"

// DateTime is a date and time split into the two strings the report forms
// edit independently. Date is YYYY-MM-DD and Time is HH:MM; both default to
// empty.
type DateTime struct {
	Date string `json:"date" bson:"date"`
	Time string `json:"time" bson:"time"`
}

// Equals reports whether date and time both match
func (d DateTime) Equals(other DateTime) bool {
	return d.Date == other.Date && d.Time == other.Time
}

// IsZero reports whether the value carries no date or time at all
func (d DateTime) IsZero() bool {
	return d.Date == "" && d.Time == ""
}

// NewDateTime returns the given instant split into form-ready strings
func NewDateTime(t time.Time) DateTime {
	return DateTime{
		Date: t.Format("2006-01-02"),
		Time: t.Format("15:04"),
	}
}
