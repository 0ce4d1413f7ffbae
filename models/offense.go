package models

// Offense holds one entry of the offense catalog. Offenses are reference
// data: fetched once per session and attached to incidents by inclusion,
// never edited through the forms.
type Offense struct {
	ID                     int    `json:"id" bson:"id"`
	UcrNameClassification  string `json:"ucr_name_classification" bson:"ucr_name_classification"`
	UcrSubclassDescription string `json:"ucr_subclass_description" bson:"ucr_subclass_description"`
	GcicCode               string `json:"gcic_code" bson:"gcic_code"`
	UcrCode                string `json:"ucr_code" bson:"ucr_code"`
	UcrRank                int    `json:"ucr_rank" bson:"ucr_rank"`
	CodeGroup              string `json:"code_group" bson:"code_group"`
	UcrAlpha               string `json:"ucr_alpha" bson:"ucr_alpha"`
}
