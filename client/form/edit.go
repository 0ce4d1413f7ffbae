// Package form holds the incident edit session: the state machine that
// loads an incident and its sub-resources into an editable working copy,
// rebuilds that copy whenever the authoritative record changes, and routes
// saves back through the resource client.
package form

import (
	"context"
	"sync"
	"time"

	"github.com/apdreports/incident-reports/client"
	"github.com/apdreports/incident-reports/models"
)

// Resources is the slice of the API the edit session consumes. Satisfied by
// *client.Client; tests supply a fake.
type Resources interface {
	GetIncident(ctx context.Context, id int) (models.Incident, bool)
	AddIncident(ctx context.Context, incident models.IncidentSubmission) (models.Incident, bool)
	UpdateIncident(ctx context.Context, incident models.IncidentSubmission) bool
	GetAllOfficers(ctx context.Context) []models.Officer
	GetAllOffenses(ctx context.Context) []models.Offense
	GetVictims(ctx context.Context, incidentID int) []models.InvolvedParty
	AddVictim(ctx context.Context, victim models.InvolvedParty) (models.InvolvedParty, bool)
	UpdateVictim(ctx context.Context, victim models.InvolvedParty) bool
	GetSuspects(ctx context.Context, incidentID int) []models.InvolvedParty
	AddSuspect(ctx context.Context, suspect models.InvolvedParty) (models.InvolvedParty, bool)
	UpdateSuspect(ctx context.Context, suspect models.InvolvedParty) bool
	GetFiles(ctx context.Context, incidentID int) []models.IncidentFile
	UploadFiles(ctx context.Context, incidentID int, uploads []client.Upload) []models.IncidentFile
	DeleteFile(ctx context.Context, incidentID, fileID int) bool
}

// Tab selects which section of the editor is showing. Pure view state:
// switching tabs never refetches anything.
type Tab int

// Editor tabs
const (
	TabIncident Tab = iota
	TabVictims
	TabSuspects
	TabFiles
)

// EditSession drives one incident through load, edit and save. Rebuild,
// don't patch: whenever the authoritative incident changes (a new id is
// loaded, or a save succeeds) the whole working state is torn down and
// reconstructed from the server-confirmed record. Each rebuild cancels the
// previous rebuild's in-flight fetches so a superseded response can never
// land in the new state.
type EditSession struct {
	api Resources
	now func() time.Time

	mu       sync.Mutex
	cancel   context.CancelFunc
	gen      int
	wg       sync.WaitGroup
	incident models.Incident
	victims  []models.InvolvedParty
	suspects []models.InvolvedParty
	files    []models.IncidentFile
	officers []models.Officer
	offenses []models.Offense
	tab      Tab
}

// NewEditSession returns an edit session over the given API
func NewEditSession(api Resources) *EditSession {
	return &EditSession{api: api, now: time.Now}
}

// Begin loads the incident with the given id, or synthesizes a complete
// default record when id is 0, and starts the sub-resource fetches. A
// failed fetch degrades to the same default record a new incident gets.
func (s *EditSession) Begin(ctx context.Context, id int) models.Incident {
	incident := models.NewIncident(s.now())
	if id != 0 {
		if fetched, ok := s.api.GetIncident(ctx, id); ok {
			incident = fetched
		}
	}
	s.restart(ctx, incident)
	return incident
}

// restart supersedes any in-flight fetches and rebuilds the working state
// from the given authoritative incident
func (s *EditSession) restart(ctx context.Context, incident models.Incident) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.gen++
	gen := s.gen

	s.incident = incident
	s.officers = []models.Officer{}
	s.offenses = []models.Offense{}
	// at least one editable row is always showing
	s.victims = []models.InvolvedParty{models.NewInvolvedParty(incident.ID, models.PartyVictim)}
	s.suspects = []models.InvolvedParty{models.NewInvolvedParty(incident.ID, models.PartySuspect)}
	s.files = []models.IncidentFile{}
	s.mu.Unlock()

	s.hydrate(fetchCtx, gen, incident.ID)
}

// hydrate fans out the reference and sub-resource fetches. Each lands
// independently, in whatever order it completes. Victims, suspects and
// files are keyed by the incident id, so an unsaved incident skips them
// and keeps its blank rows.
func (s *EditSession) hydrate(ctx context.Context, gen int, incidentID int) {
	s.fetch(func() {
		officers := s.api.GetAllOfficers(ctx)
		s.apply(ctx, gen, func() { s.officers = officers })
	})
	s.fetch(func() {
		offenses := s.api.GetAllOffenses(ctx)
		s.apply(ctx, gen, func() { s.offenses = offenses })
	})
	if incidentID == 0 {
		return
	}
	s.fetch(func() {
		victims := s.api.GetVictims(ctx, incidentID)
		s.apply(ctx, gen, func() {
			if len(victims) > 0 {
				s.victims = victims
			}
		})
	})
	s.fetch(func() {
		suspects := s.api.GetSuspects(ctx, incidentID)
		s.apply(ctx, gen, func() {
			if len(suspects) > 0 {
				s.suspects = suspects
			}
		})
	})
	s.fetch(func() {
		files := s.api.GetFiles(ctx, incidentID)
		s.apply(ctx, gen, func() { s.files = files })
	})
}

func (s *EditSession) fetch(do func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		do()
	}()
}

// apply commits one fetch result, unless the rebuild that issued it has
// been superseded
func (s *EditSession) apply(ctx context.Context, gen int, mutate func()) {
	if ctx.Err() != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	mutate()
}

// Wait blocks until every in-flight fetch has completed or been discarded
func (s *EditSession) Wait() {
	s.wg.Wait()
}

// Close cancels any in-flight fetches
func (s *EditSession) Close() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()
	s.wg.Wait()
}

// Incident returns the working incident record
func (s *EditSession) Incident() models.Incident {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.incident
}

// EditIncident mutates the working incident record in place
func (s *EditSession) EditIncident(mutate func(*models.Incident)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mutate(&s.incident)
}

// Victims returns the working victim rows
func (s *EditSession) Victims() []models.InvolvedParty {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.InvolvedParty(nil), s.victims...)
}

// Suspects returns the working suspect rows
func (s *EditSession) Suspects() []models.InvolvedParty {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.InvolvedParty(nil), s.suspects...)
}

// Files returns the working file collection
func (s *EditSession) Files() []models.IncidentFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.IncidentFile(nil), s.files...)
}

// Officers returns the officer catalog loaded for this session
func (s *EditSession) Officers() []models.Officer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Officer(nil), s.officers...)
}

// Offenses returns the offense catalog loaded for this session
func (s *EditSession) Offenses() []models.Offense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Offense(nil), s.offenses...)
}

// Tab returns the showing tab
func (s *EditSession) Tab() Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tab
}

// SelectTab switches the showing tab. View state only.
func (s *EditSession) SelectTab(tab Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tab = tab
}

// AddVictimRow appends a fresh blank victim row
func (s *EditSession) AddVictimRow() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.victims = append(s.victims, models.NewInvolvedParty(s.incident.ID, models.PartyVictim))
}

// AddSuspectRow appends a fresh blank suspect row
func (s *EditSession) AddSuspectRow() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suspects = append(s.suspects, models.NewInvolvedParty(s.incident.ID, models.PartySuspect))
}

// EditVictim mutates the victim row at index in place
func (s *EditSession) EditVictim(index int, mutate func(*models.InvolvedParty)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.victims) {
		return
	}
	mutate(&s.victims[index])
}

// EditSuspect mutates the suspect row at index in place
func (s *EditSession) EditSuspect(index int, mutate func(*models.InvolvedParty)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.suspects) {
		return
	}
	mutate(&s.suspects[index])
}

// PrepareSave extracts the plain incident to submit: the working record
// with officer roles collapsed to bare ids
func (s *EditSession) PrepareSave() models.IncidentSubmission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.incident.Submission()
}

// SaveIncident submits the working incident, creating when it has never
// been saved and updating otherwise, then rebuilds the whole session from
// the server-confirmed record.
func (s *EditSession) SaveIncident(ctx context.Context) bool {
	s.mu.Lock()
	incident := s.incident
	s.mu.Unlock()

	submission := incident.Submission()
	if incident.IsNew() {
		created, ok := s.api.AddIncident(ctx, submission)
		if !ok {
			return false
		}
		s.restart(ctx, created)
		return true
	}

	if !s.api.UpdateIncident(ctx, submission) {
		return false
	}
	confirmed, ok := s.api.GetIncident(ctx, incident.ID)
	if !ok {
		confirmed = incident
	}
	s.restart(ctx, confirmed)
	return true
}

// SaveVictims submits every victim row, creating rows never saved and
// updating the rest. Server-assigned rows replace their blank originals so
// the collection carries the new ids.
func (s *EditSession) SaveVictims(ctx context.Context) bool {
	return s.saveParties(ctx, s.Victims(), s.api.AddVictim, s.api.UpdateVictim, func(rows []models.InvolvedParty) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.victims = rows
	})
}

// SaveSuspects submits every suspect row the same way SaveVictims does
func (s *EditSession) SaveSuspects(ctx context.Context) bool {
	return s.saveParties(ctx, s.Suspects(), s.api.AddSuspect, s.api.UpdateSuspect, func(rows []models.InvolvedParty) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.suspects = rows
	})
}

func (s *EditSession) saveParties(
	ctx context.Context,
	rows []models.InvolvedParty,
	add func(context.Context, models.InvolvedParty) (models.InvolvedParty, bool),
	update func(context.Context, models.InvolvedParty) bool,
	commit func([]models.InvolvedParty),
) bool {
	incidentID := s.Incident().ID
	if incidentID == 0 {
		// sub-resources are keyed by a saved incident's id
		return false
	}

	ok := true
	for index, row := range rows {
		row.Incident = incidentID
		if row.IsNew() {
			created, added := add(ctx, row)
			if !added {
				ok = false
				continue
			}
			rows[index] = created
			continue
		}
		if !update(ctx, row) {
			ok = false
			continue
		}
		rows[index] = row
	}
	commit(rows)
	return ok
}

// Upload sends the queued files and appends the created records straight
// from the response, no refetch needed
func (s *EditSession) Upload(ctx context.Context, uploads []client.Upload) {
	incidentID := s.Incident().ID
	if incidentID == 0 || len(uploads) == 0 {
		return
	}
	created := s.api.UploadFiles(ctx, incidentID, uploads)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = append(s.files, created...)
}

// DeleteFiles removes every checked file: one delete call per file, each
// followed by a full refetch so the collection tracks the server after
// every removal.
func (s *EditSession) DeleteFiles(ctx context.Context, fileIDs []int) {
	incidentID := s.Incident().ID
	if incidentID == 0 {
		return
	}
	for _, fileID := range fileIDs {
		s.api.DeleteFile(ctx, incidentID, fileID)
		files := s.api.GetFiles(ctx, incidentID)
		s.mu.Lock()
		s.files = files
		s.mu.Unlock()
	}
}
