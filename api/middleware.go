package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shaj13/go-guardian/auth"
	"github.com/shaj13/go-guardian/auth/strategies/basic"
	"github.com/shaj13/go-guardian/auth/strategies/bearer"
	"github.com/shaj13/go-guardian/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/apdreports/incident-reports/databases"
	"github.com/apdreports/incident-reports/models"
)

// tokenTTL is how long an issued bearer token stays valid. Matches a shift
// plus overlap so officers do not get logged out mid-report.
const tokenTTL = 12 * time.Hour

// MiddlewareDB is a struct that holds the databases the auth endpoints need
type MiddlewareDB struct {
	DB  databases.AccountDatabase
	TDB databases.TokenDatabase
}

var authenticator auth.Authenticator
var cache store.Cache

// Middleware adds bearer-token authentication around accessing the routes
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		user, err := authenticator.Authenticate(r)
		if err != nil {
			zap.S().Errorw("unauthorized",
				"url", r.URL)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "unauthorized"}`))
			return
		}
		zap.S().Debugf("User %s Authenticated\n", user.UserName())
		next.ServeHTTP(w, r)
	})
}

// CreateToken validates the posted credentials and returns a bearer token
// along with the officer it was issued to and the expiry epoch
func (m MiddlewareDB) CreateToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "invalid credentials payload", http.StatusBadRequest)
		return
	}

	account, err := m.DB.FindOne(context.Background(), bson.M{"username": creds.Username})
	if err != nil {
		http.Error(w, "invalid username or password", http.StatusUnauthorized)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(creds.Password)); err != nil {
		http.Error(w, "invalid username or password", http.StatusUnauthorized)
		return
	}

	expiry := time.Now().Add(tokenTTL)
	claims := jwt.MapClaims{
		"sub":            account.Username,
		"officer_id":     account.Officer.ID,
		"officer_number": account.Officer.OfficerNumber,
		"iat":            time.Now().Unix(),
		"exp":            expiry.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		http.Error(w, "token generation failed", http.StatusInternalServerError)
		return
	}

	authUser := auth.NewDefaultUser(account.Username, fmt.Sprint(account.Officer.ID), nil, nil)
	tokenStrategy := authenticator.Strategy(bearer.CachedStrategyKey)
	auth.Append(tokenStrategy, signed, authUser, r)

	if err := m.TDB.InsertOne(context.Background(), models.Token{
		Token:     signed,
		Username:  account.Username,
		ExpiresAt: expiry.Unix(),
	}); err != nil {
		zap.S().Warnw("failed to record issued token", "error", err)
	}

	responseBody, err := json.Marshal(models.AuthResult{
		Token:   signed,
		Officer: account.Officer,
		Expiry:  expiry.Unix(),
	})
	if err != nil {
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}

	w.Write(responseBody)
}

// SetupGoGuardian sets up the go-guardian middleware
func (m MiddlewareDB) SetupGoGuardian() {
	authenticator = auth.New()
	cache = store.NewFIFO(context.Background(), tokenTTL)
	basicStrategy := basic.New(m.ValidateUser, cache)
	tokenStrategy := bearer.New(bearer.NoOpAuthenticate, cache)

	authenticator.EnableStrategy(basic.StrategyKey, basicStrategy)
	authenticator.EnableStrategy(bearer.CachedStrategyKey, tokenStrategy)
}

// ValidateUser validates an account's username and password
func (m MiddlewareDB) ValidateUser(ctx context.Context, r *http.Request, username, password string) (auth.Info, error) {
	account, err := m.DB.FindOne(ctx, bson.M{"username": username})
	if err != nil {
		return nil, fmt.Errorf("no matching username found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("failed to compare password")
	}

	return auth.NewDefaultUser(username, fmt.Sprint(account.Officer.ID), nil, nil), nil
}

// RevokeToken revokes a token
func RevokeToken(w http.ResponseWriter, r *http.Request) {
	reqToken := r.Header.Get("Authorization")
	splitToken := strings.Split(reqToken, "Bearer ")
	if len(splitToken) != 2 {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "missing bearer token"}`))
		return
	}
	reqToken = splitToken[1]

	tokenStrategy := authenticator.Strategy(bearer.CachedStrategyKey)
	auth.Revoke(tokenStrategy, reqToken, r)
	body := fmt.Sprintf(`{"revoked token": "%s"}`, reqToken)
	w.Write([]byte(body))
}
