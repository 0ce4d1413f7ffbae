package session

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/apdreports/incident-reports/models"
)

// Persisted session keys
const (
	keyToken   = "token"
	keyOfficer = "loggedInOfficer"
	keyExpiry  = "tokenExpiry"
)

// Manager is the single authoritative holder of auth state: the bearer
// token, the logged-in officer and the token expiry. It is passed explicitly
// to everything needing auth state; persistence is delegated to a Store so
// tests can run against memory.
type Manager struct {
	store Store
	now   func() time.Time
}

// New returns a session manager over the given store
func New(store Store) *Manager {
	return &Manager{store: store, now: time.Now}
}

// SetUp persists the token, officer and expiry from a successful login.
// When the server response carries no expiry, it is recovered from the
// token's own exp claim.
func (m *Manager) SetUp(auth models.AuthResult) error {
	expiry := auth.Expiry
	if expiry == 0 {
		expiry = expiryFromToken(auth.Token)
	}

	if err := m.store.Set(keyToken, auth.Token); err != nil {
		return err
	}
	officer, err := json.Marshal(auth.Officer)
	if err != nil {
		return err
	}
	if err := m.store.Set(keyOfficer, string(officer)); err != nil {
		return err
	}
	return m.store.Set(keyExpiry, strconv.FormatInt(expiry, 10))
}

// Token returns the stored bearer token, or "" when logged out
func (m *Manager) Token() string {
	token, _ := m.store.Get(keyToken)
	return token
}

// Officer returns the logged-in officer, if any
func (m *Manager) Officer() (models.Officer, bool) {
	raw, ok := m.store.Get(keyOfficer)
	if !ok {
		return models.Officer{}, false
	}
	var officer models.Officer
	if err := json.Unmarshal([]byte(raw), &officer); err != nil {
		return models.Officer{}, false
	}
	return officer, true
}

// LoggedIn reports whether a live session exists: a token is present and
// now is before its expiry. An expired or incomplete session is cleared on
// the spot so a later check starts clean.
func (m *Manager) LoggedIn() bool {
	token, ok := m.store.Get(keyToken)
	if !ok || token == "" {
		m.LogOut()
		return false
	}
	raw, ok := m.store.Get(keyExpiry)
	if !ok {
		m.LogOut()
		return false
	}
	expiry, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || !m.now().Before(time.Unix(expiry, 0)) {
		m.LogOut()
		return false
	}
	return true
}

// LogOut clears every session field
func (m *Manager) LogOut() {
	for _, key := range []string{keyToken, keyOfficer, keyExpiry} {
		if err := m.store.Delete(key); err != nil {
			zap.S().Errorw("failed to clear session field", "key", key, "error", err)
		}
	}
}

// expiryFromToken reads the exp claim without verifying the signature; the
// client only needs it for the local is-it-stale check, the server verifies
// for real.
func expiryFromToken(token string) int64 {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return 0
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0
	}
	return exp.Unix()
}
