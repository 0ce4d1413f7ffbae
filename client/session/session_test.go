package session

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/apdreports/incident-reports/models"
)

func TestManager_SetUpAndLoggedIn(t *testing.T) {
	m := New(NewMemoryStore())

	err := m.SetUp(models.AuthResult{
		Token:   "abc123",
		Officer: models.Officer{ID: 1, OfficerNumber: 5150},
		Expiry:  time.Now().Add(time.Hour).Unix(),
	})
	assert.NoError(t, err)

	assert.True(t, m.LoggedIn())
	assert.Equal(t, "abc123", m.Token())

	officer, ok := m.Officer()
	assert.True(t, ok)
	assert.Equal(t, 5150, officer.OfficerNumber)
}

func TestManager_ExpiredSessionClearsItself(t *testing.T) {
	store := NewMemoryStore()
	m := New(store)

	err := m.SetUp(models.AuthResult{
		Token:  "abc123",
		Expiry: time.Now().Add(time.Hour).Unix(),
	})
	assert.NoError(t, err)

	// move the clock past the expiry
	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	assert.False(t, m.LoggedIn())

	// the stale session is actively cleared, not just reported stale
	_, ok := store.Get(keyToken)
	assert.False(t, ok)
	_, ok = store.Get(keyOfficer)
	assert.False(t, ok)
	_, ok = store.Get(keyExpiry)
	assert.False(t, ok)
}

func TestManager_LoggedOutByDefault(t *testing.T) {
	m := New(NewMemoryStore())
	assert.False(t, m.LoggedIn())
}

func TestManager_LogOutClearsEverything(t *testing.T) {
	m := New(NewMemoryStore())

	err := m.SetUp(models.AuthResult{
		Token:  "abc123",
		Expiry: time.Now().Add(time.Hour).Unix(),
	})
	assert.NoError(t, err)

	m.LogOut()

	assert.False(t, m.LoggedIn())
	assert.Equal(t, "", m.Token())
	_, ok := m.Officer()
	assert.False(t, ok)
}

func TestManager_ExpiryRecoveredFromTokenClaims(t *testing.T) {
	expiry := time.Now().Add(time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "jdoe",
		"exp": expiry.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	store := NewMemoryStore()
	m := New(store)

	// server response without an expiry field
	err = m.SetUp(models.AuthResult{Token: signed})
	assert.NoError(t, err)

	assert.True(t, m.LoggedIn())

	raw, ok := store.Get(keyExpiry)
	assert.True(t, ok)
	assert.Equal(t, strconv.FormatInt(expiry.Unix(), 10), raw)
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)

	assert.NoError(t, store.Set("token", "abc123"))
	assert.NoError(t, store.Set("tokenExpiry", "12345"))

	// a fresh store over the same file sees the persisted values
	reopened := NewFileStore(path)
	v, ok := reopened.Get("token")
	assert.True(t, ok)
	assert.Equal(t, "abc123", v)

	assert.NoError(t, reopened.Delete("token"))
	_, ok = reopened.Get("token")
	assert.False(t, ok)

	v, ok = reopened.Get("tokenExpiry")
	assert.True(t, ok)
	assert.Equal(t, "12345", v)
}

func TestFileStore_CorruptFileReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)

	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, ok := store.Get("token")
	assert.False(t, ok)
}
