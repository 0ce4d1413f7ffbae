package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/phpdave11/gofpdf"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/apdreports/incident-reports/config"
	"github.com/apdreports/incident-reports/databases"
	"github.com/apdreports/incident-reports/models"
)

// Print exported for testing purposes
type Print struct {
	DB      databases.IncidentDatabase
	Parties databases.PartyDatabase
}

// PrintIncidentHandler renders one incident as a PDF report
func (p Print) PrintIncidentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["incident_id"])
	if err != nil {
		config.ErrorStatus("failed to parse incident id", http.StatusBadRequest, w, err)
		return
	}

	incident, err := p.DB.FindOne(r.Context(), bson.M{"id": id})
	if err != nil {
		config.ErrorStatus("failed to get incident by ID", http.StatusNotFound, w, err)
		return
	}

	parties := p.incidentParties(r, id)
	pdf := buildIncidentPDF(*incident, parties, time.Now())

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("inline; filename=%q", incident.IncidentNumber+".pdf"))
	if err := pdf.Output(w); err != nil {
		config.ErrorStatus("failed to render incident pdf", http.StatusInternalServerError, w, err)
		return
	}
}

// incidentParties fetches the parties to print. The report stays renderable
// when the party lookup is unavailable or fails; it just omits the sections.
func (p Print) incidentParties(r *http.Request, incidentID int) []models.InvolvedParty {
	if p.Parties == nil {
		return nil
	}
	parties, err := p.Parties.Find(r.Context(), bson.M{"incident": incidentID})
	if err != nil {
		return nil
	}
	return parties
}

func buildIncidentPDF(incident models.Incident, parties []models.InvolvedParty, printedAt time.Time) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(54, 54, 54)
	pdf.SetAutoPageBreak(true, 54)
	pdf.SetTitle("Incident Report "+incident.IncidentNumber, false)
	pdf.AddPage()

	pdf.SetFont("Courier", "", 10)
	pdf.CellFormat(0, 12, "Print Date: "+printedAt.Format("01/02/2006"), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Courier", "B", 14)
	pdf.CellFormat(0, 16, "Incident Report "+incident.IncidentNumber, "", 1, "L", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Courier", "", 10)
	printLine(pdf, "Location", formatAddress(incident.Location))
	printLine(pdf, "Report Date/Time", formatDateTime(incident.ReportDateTime))
	printLine(pdf, "Earliest Occurrence", formatDateTime(incident.EarliestOccurrenceDateTime))
	printLine(pdf, "Latest Occurrence", formatDateTime(incident.LatestOccurrenceDateTime))
	printLine(pdf, "Beat", strconv.Itoa(incident.Beat))
	printLine(pdf, "Shift", models.ChoiceLabel(models.ShiftChoices, incident.Shift))
	printLine(pdf, "Damaged Amount", fmt.Sprintf("$%.2f", incident.DamagedAmount))
	printLine(pdf, "Stolen Amount", fmt.Sprintf("$%.2f", incident.StolenAmount))
	pdf.Ln(6)

	printLine(pdf, "Reporting Officer", formatOfficer(incident.ReportingOfficer))
	printLine(pdf, "Officer Making Report", formatOfficer(incident.OfficerMakingReport))
	printLine(pdf, "Investigating Officer", formatOfficer(incident.InvestigatingOfficer))
	printLine(pdf, "Reviewed By", formatOfficer(incident.ReviewedByOfficer))
	printLine(pdf, "Supervisor", formatOfficer(incident.Supervisor))
	pdf.Ln(6)

	if len(incident.Offenses) > 0 {
		pdf.SetFont("Courier", "B", 10)
		pdf.CellFormat(0, 12, "Offenses", "", 1, "L", false, 0, "")
		pdf.SetFont("Courier", "", 10)
		for _, offense := range incident.Offenses {
			pdf.CellFormat(0, 12,
				fmt.Sprintf("  %s - %s (%s)", offense.UcrCode, offense.UcrNameClassification, offense.GcicCode),
				"", 1, "L", false, 0, "")
		}
		pdf.Ln(6)
	}

	printPartySection(pdf, "Victims", parties, models.PartyVictim)
	printPartySection(pdf, "Suspects", parties, models.PartySuspect)

	pdf.SetFont("Courier", "B", 10)
	pdf.CellFormat(0, 12, "Narrative", "", 1, "L", false, 0, "")
	pdf.SetFont("Courier", "", 10)
	pdf.MultiCell(0, 12, incident.Narrative, "", "L", false)

	return pdf
}

func printPartySection(pdf *gofpdf.Fpdf, title string, parties []models.InvolvedParty, role models.PartyType) {
	matched := []models.InvolvedParty{}
	for _, party := range parties {
		if party.PartyType == role {
			matched = append(matched, party)
		}
	}
	if len(matched) == 0 {
		return
	}

	pdf.SetFont("Courier", "B", 10)
	pdf.CellFormat(0, 12, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Courier", "", 10)
	for _, party := range matched {
		pdf.CellFormat(0, 12, "  "+strings.TrimSpace(party.FirstName+" "+party.LastName), "", 1, "L", false, 0, "")
		printLine(pdf, "    Sex", models.ChoiceLabel(models.SexChoices, party.Sex))
		printLine(pdf, "    Race", models.ChoiceLabel(models.RaceChoices, party.Race))
		printLine(pdf, "    Hair", models.ChoiceLabel(models.HairColorChoices, party.HairColor))
		printLine(pdf, "    Eyes", models.ChoiceLabel(models.EyeColorChoices, party.EyeColor))
		printLine(pdf, "    Home Address", formatAddress(party.HomeAddress))
	}
	pdf.Ln(6)
}

func printLine(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(0, 12, fmt.Sprintf("%-22s %s", label+":", value), "", 1, "L", false, 0, "")
}

func formatAddress(a models.Address) string {
	street := strings.TrimSpace(a.StreetNumber + " " + a.Route)
	parts := []string{}
	for _, p := range []string{street, a.City, a.State, a.PostalCode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func formatDateTime(dt models.DateTime) string {
	return strings.TrimSpace(dt.Date + " " + dt.Time)
}

func formatOfficer(o models.Officer) string {
	if o.ID == 0 {
		return ""
	}
	name := strings.TrimSpace(o.User.FirstName + " " + o.User.LastName)
	if name == "" {
		return fmt.Sprintf("#%d", o.OfficerNumber)
	}
	return fmt.Sprintf("%s (#%d)", name, o.OfficerNumber)
}
