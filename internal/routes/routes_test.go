package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/phonedrive/api/internal/config"
	"github.com/phonedrive/api/internal/database"
	"github.com/phonedrive/api/internal/handlers"
	"github.com/phonedrive/api/internal/notify"
	"github.com/phonedrive/api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	adminEmail    = "owner@phonedrive.example"
	adminPassword = "super-secret-pw"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret:      "test-secret",
		JWTUserExpiry:  168 * time.Hour,
		JWTAdminExpiry: 2 * time.Hour,
		AdminEmail:     adminEmail,
		AdminPassword:  adminPassword,
		OwnerEmail:     adminEmail,
		ShopName:       "PhoneDrive",
		ShopAddress:    "10 Rue de la Tech, 75000 Paris",
	}
	require.NoError(t, database.SeedAdmin(db, cfg))

	notifier := notify.NewService(notify.LogMailer{}, nil, cfg)
	authService := services.NewAuthService(db, cfg, notifier)
	catalogService := services.NewCatalogService(db)
	orderService := services.NewOrderService(db, notifier)
	appointmentService := services.NewAppointmentService(db, notifier)

	app := fiber.New()
	Setup(app, cfg, db,
		handlers.NewAuthHandler(authService),
		handlers.NewCatalogHandler(catalogService),
		handlers.NewOrderHandler(orderService),
		handlers.NewAppointmentHandler(appointmentService),
		handlers.NewHealthHandler(),
	)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, body, token string) (int, map[string]any) {
	t.Helper()
	status, raw := doRaw(t, app, method, path, body, token)
	if len(raw) == 0 {
		return status, nil
	}
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return status, out
}

func doJSONList(t *testing.T, app *fiber.App, method, path, token string) (int, []map[string]any) {
	t.Helper()
	status, raw := doRaw(t, app, method, path, "", token)
	var out []map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return status, out
}

func doRaw(t *testing.T, app *fiber.App, method, path, body, token string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/api/auth/login",
		`{"email":"`+email+`","password":"`+password+`"}`, "")
	require.Equal(t, http.StatusOK, status, "login failed: %v", body)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegisterLoginMeFlow(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/auth/register",
		`{"email":"jean@example.com","password":"password123","name":"Jean","phone":"0600000000","address":"5 Rue des Fleurs"}`, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Account created", body["message"])

	// Duplicate registration must fail without touching the first record.
	status, _ = doJSON(t, app, http.MethodPost, "/api/auth/register",
		`{"email":"jean@example.com","password":"password456","name":"Imposter"}`, "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, app, http.MethodPost, "/api/auth/login",
		`{"email":"jean@example.com","password":"wrong-password"}`, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = doJSON(t, app, http.MethodPost, "/api/auth/login",
		`{"email":"nobody@example.com","password":"password123"}`, "")
	assert.Equal(t, http.StatusNotFound, status)

	token := login(t, app, "jean@example.com", "password123")

	status, body = doJSON(t, app, http.MethodGet, "/api/me", "", token)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "jean@example.com", body["email"])
	assert.Equal(t, "Jean", body["name"])

	status, _ = doJSON(t, app, http.MethodGet, "/api/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = doJSON(t, app, http.MethodGet, "/api/me", "", "not-a-jwt")
	assert.Equal(t, http.StatusForbidden, status)
}

func TestAdminGateOnCatalog(t *testing.T) {
	app, _ := newTestApp(t)

	productJSON := `{"model":"iPhone 13","price":"590","storage":"128 Go","color":"Minuit"}`

	// No token at all.
	status, _ := doJSON(t, app, http.MethodPost, "/api/products", productJSON, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	// A regular client is rejected even with a valid token.
	status, _ = doJSON(t, app, http.MethodPost, "/api/auth/register",
		`{"email":"client@example.com","password":"password123"}`, "")
	require.Equal(t, http.StatusOK, status)
	clientToken := login(t, app, "client@example.com", "password123")

	status, _ = doJSON(t, app, http.MethodPost, "/api/products", productJSON, clientToken)
	assert.Equal(t, http.StatusForbidden, status)

	// The seeded admin passes, and the string price is coerced to a number.
	adminToken := login(t, app, adminEmail, adminPassword)
	status, body := doJSON(t, app, http.MethodPost, "/api/products", productJSON, adminToken)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 590.0, body["price"])
	id := int(body["id"].(float64))

	// Public reads.
	status, list := doJSONList(t, app, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, list, 1)

	status, _ = doJSON(t, app, http.MethodGet, "/api/products/9999", "", "")
	assert.Equal(t, http.StatusNotFound, status)

	// Delete is admin-only and a second delete reports 404 cleanly.
	status, _ = doJSON(t, app, "DELETE", "/api/products/9999", "", adminToken)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doJSON(t, app, "DELETE", "/api/products/"+strconv.Itoa(id), "", adminToken)
	assert.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, app, "DELETE", "/api/products/"+strconv.Itoa(id), "", adminToken)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestLegacyAdminLogin(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/api/login", `{"password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := doJSON(t, app, http.MethodPost, "/api/login",
		`{"password":"`+adminPassword+`"}`, "")
	require.Equal(t, http.StatusOK, status)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	// The 2h legacy token opens the back office listings.
	status, list := doJSONList(t, app, http.MethodGet, "/api/orders", token)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, list)
}

func TestOrderIntake(t *testing.T) {
	app, _ := newTestApp(t)

	orderJSON := `{"customer":"Jean Dupont","email":"jean@example.com","address":"5 Rue des Fleurs","total":"989","items":[{"model":"iPhone 13","price":590},{"model":"iPhone 12","price":399}]}`

	status, body := doJSON(t, app, http.MethodPost, "/api/orders", orderJSON, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 989.0, body["total"])
	assert.Equal(t, "payment on pickup", body["status"])
	items, err := json.Marshal(body["items"])
	require.NoError(t, err)
	assert.JSONEq(t, `[{"model":"iPhone 13","price":590},{"model":"iPhone 12","price":399}]`, string(items))

	// Listing is admin-only.
	status, _ = doJSON(t, app, http.MethodPost, "/api/auth/register",
		`{"email":"client@example.com","password":"password123"}`, "")
	require.Equal(t, http.StatusOK, status)
	clientToken := login(t, app, "client@example.com", "password123")

	status, _ = doJSON(t, app, http.MethodGet, "/api/orders", "", clientToken)
	assert.Equal(t, http.StatusForbidden, status)

	adminToken := login(t, app, adminEmail, adminPassword)
	status, list := doJSONList(t, app, http.MethodGet, "/api/orders", adminToken)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, list, 1)
	assert.Equal(t, "Jean Dupont", list[0]["customer"])
}

func TestAppointmentIntakeAndEstimate(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/appointments",
		`{"client":"Marie","email":"marie@example.com","phone":"0600000000","device":"iPhone 13","issue":"Broken screen","date":"2026-09-03T14:30","locationType":"workshop"}`, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Appointment booked", body["message"])

	status, _ = doJSON(t, app, http.MethodPost, "/api/appointments",
		`{"client":"Marie","email":"marie@example.com","issue":"Broken screen","date":"someday"}`, "")
	assert.Equal(t, http.StatusBadRequest, status)

	adminToken := login(t, app, adminEmail, adminPassword)
	status, list := doJSONList(t, app, http.MethodGet, "/api/appointments", adminToken)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, list, 1)
	assert.Equal(t, "Broken screen (workshop)", list[0]["issue"])

	// Display-only estimate.
	status, body = doJSON(t, app, http.MethodGet, "/api/repairs/estimate?device=iPhone+13&issue=screen", "", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 107.0, body["price"])
}

