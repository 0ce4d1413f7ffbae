package models

// IncidentFile holds the structure for one file attached to an incident.
// File is the storage URL of the uploaded asset.
type IncidentFile struct {
	ID       int    `json:"id" bson:"id"`
	Incident int    `json:"incident" bson:"incident"`
	File     string `json:"file" bson:"file"`
	FileName string `json:"file_name" bson:"file_name"`
	// Asset is the storage public id needed to destroy the backing upload;
	// it never leaves the server
	Asset string `json:"-" bson:"asset"`
}
