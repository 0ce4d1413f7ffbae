package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apdreports/incident-reports/client/form"
	"github.com/apdreports/incident-reports/models"
)

func TestCriteria_BlankYieldsNoParams(t *testing.T) {
	params := form.BlankCriteria().Params()
	assert.Empty(t, params)
}

func TestCriteria_SingleScalarYieldsSingleParam(t *testing.T) {
	criteria := form.BlankCriteria()
	criteria.Shift = "night"

	params := criteria.Params()

	assert.Equal(t, map[string]interface{}{"shift": "night"}, params)
}

func TestCriteria_IncidentNumberScenario(t *testing.T) {
	criteria := form.BlankCriteria()
	criteria.IncidentNumber = "2024-001"

	params := criteria.Params()

	assert.Equal(t, map[string]interface{}{"incident_number": "2024-001"}, params)
}

func TestCriteria_OfficerCollapsesToBareID(t *testing.T) {
	criteria := form.BlankCriteria()
	criteria.ReportingOfficer = models.Officer{
		ID:            3,
		OfficerNumber: 5150,
		User:          models.User{FirstName: "Pat"},
	}

	params := criteria.Params()

	assert.Equal(t, map[string]interface{}{"reporting_officer": 3}, params)
}

func TestCriteria_DateTimeRangeBounds(t *testing.T) {
	criteria := form.BlankCriteria()
	criteria.ReportDateTimeMin = models.DateTime{Date: "2024-01-01"}
	criteria.ReportDateTimeMax = models.DateTime{Date: "2024-02-01"}

	params := criteria.Params()

	assert.Len(t, params, 2)
	assert.Equal(t, models.DateTime{Date: "2024-01-01"}, params["report_datetime_min"])
	assert.Equal(t, models.DateTime{Date: "2024-02-01"}, params["report_datetime_max"])
}

func TestCriteria_VictimBlockFlattensToPrefixedKeys(t *testing.T) {
	criteria := form.BlankCriteria()
	criteria.Victim.FirstName = "Jane"
	criteria.Victim.EyeColor = "GRN"

	params := criteria.Params()

	assert.Equal(t, map[string]interface{}{
		"victim_first_name": "Jane",
		"victim_eye_color":  "GRN",
	}, params)
	// the victim block never travels as an object
	_, present := params["victim"]
	assert.False(t, present)
}

func TestCriteria_MixedFields(t *testing.T) {
	criteria := form.BlankCriteria()
	criteria.IncidentNumber = "2024-001"
	criteria.Beat = 9
	criteria.Location = models.Address{City: "Atlanta"}
	criteria.StolenAmountMin = 100

	params := criteria.Params()

	assert.Len(t, params, 4)
	assert.Equal(t, "2024-001", params["incident_number"])
	assert.Equal(t, 9, params["beat"])
	assert.Equal(t, models.Address{City: "Atlanta"}, params["location"])
	assert.Equal(t, 100.0, params["stolen_amount_min"])
}
