package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"duka/internal/auth"
	"duka/internal/shared/config"
	"duka/internal/shared/schema"
	"duka/pkg/hasura/hasuratest"
	"duka/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "router-test-secret"

func newEngine(gql *hasuratest.Recorder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: secret, AccessExpiresIn: time.Hour},
		CORS: config.CORSConfig{
			Origins:      []string{"https://app.example.com"},
			AllowMethods: []string{"POST", "GET"},
			AllowHeaders: []string{"Authorization", "Content-Type"},
			MaxAge:       time.Hour,
		},
	}

	engine := gin.New()
	engine.Use(CORS(cfg.CORS))
	NewRouter(Dependencies{
		Config:  cfg,
		GraphQL: gql,
		Logger:  logger.NewWithWriter(io.Discard, "error", true),
	}).SetupRoutes(engine)
	return engine
}

func accessToken(t *testing.T, sub string) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		Type: auth.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-1",
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

func ticketRequest(t *testing.T, token, method string) *http.Request {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"action":            map[string]string{"name": "createTicket"},
		"session_variables": map[string]string{"x-hasura-role": "customer"},
		"input": map[string]interface{}{"data": map[string]interface{}{
			"trip_bus":      "tb-1",
			"trip_bus_seat": []string{"s1"},
			"passengers": []map[string]string{{
				"first_name": "Sara", "last_name": "Tesfaye",
				"phone_number": "+251911234567", "gender": "Female",
			}},
			"payment_method": method,
		}},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/create-ticket", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestHealthAndPing(t *testing.T) {
	engine := newEngine(hasuratest.New())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestCreateTicket_RequiresToken(t *testing.T) {
	gql := hasuratest.New()

	w := httptest.NewRecorder()
	newEngine(gql).ServeHTTP(w, ticketRequest(t, "", "Cash"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail":"Missing Authorization Header"}`, w.Body.String())
	assert.Empty(t, gql.Calls())
}

func TestCreateTicket_TelebirrEndToEnd(t *testing.T) {
	gql := hasuratest.New().
		OnData(schema.GetTripBus, map[string]interface{}{
			"trip_bus_by_pk": map[string]interface{}{
				"bus": "bus-1", "trip": "trip-1", "status": "Active",
				"trip_info": map[string]interface{}{"route_info": map[string]interface{}{"price": 300}},
			},
		}).
		OnData(schema.GetTripBusSeat, map[string]interface{}{
			"trip_bus_seat_by_pk": map[string]interface{}{
				"id": "s1", "seat_info": map[string]string{"name": "1"}, "status": "Available",
			},
		})

	w := httptest.NewRecorder()
	newEngine(gql).ServeHTTP(w, ticketRequest(t, accessToken(t, "user-1"), "Telebirr"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"detail":"Ticket has been created"}`, w.Body.String())
	assert.Len(t, gql.Calls(), 2)
}

func TestCORSPreflight(t *testing.T) {
	engine := newEngine(hasuratest.New())

	req := httptest.NewRequest(http.MethodOptions, "/create-ticket", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}
