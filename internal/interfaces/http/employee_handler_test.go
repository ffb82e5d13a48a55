package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleados-api/internal/application/analytics"
	"github.com/jhoicas/Empleados-api/internal/application/auth"
	"github.com/jhoicas/Empleados-api/internal/application/employee"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/memory"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/records"
	apphttp "github.com/jhoicas/Empleados-api/internal/interfaces/http"
	"github.com/jhoicas/Empleados-api/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers: aplicación completa con el router real sobre el store en memoria
// ──────────────────────────────────────────────────────────────────────────────

type apiPhotoStorage struct{}

func (apiPhotoStorage) Upload(context.Context, string, io.Reader, int64, string) error {
	return nil
}
func (apiPhotoStorage) SignedURL(_ context.Context, objectName string, _ time.Duration) (string, error) {
	return "https://storage.local/" + objectName, nil
}
func (apiPhotoStorage) Remove(context.Context, string) error { return nil }

type apiRoster struct{}

func (apiRoster) GenerateRoster(context.Context, []*entity.Employee, time.Time) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}

// buildAPI levanta la app Fiber con todas las rutas y devuelve también un
// token válido para las rutas protegidas.
func buildAPI(t *testing.T) (*fiber.App, string) {
	t.Helper()
	store := memory.NewStore()
	employeeRepo := records.NewEmployeeRepository(store)
	userRepo := records.NewUserRepository(store)
	auditRepo := records.NewAuditRepository(store)

	cfg := &config.Config{}
	cfg.JWT.Secret = testJWTSecret
	cfg.JWT.Expiration = 60
	cfg.JWT.Issuer = testIssuer
	cfg.Seed.AdminEmail = "admin@company.com"

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	employeeUC := employee.NewUseCase(employeeRepo, auditRepo, apiPhotoStorage{}, apiRoster{})
	dashboardUC := analytics.NewDashboardUseCase(employeeRepo, auditRepo)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		EmployeeUC:  employeeUC,
		DashboardUC: dashboardUC,
		UserRepo:    userRepo,
		StorePing:   func(context.Context) error { return nil },
		Config:      cfg,
	})

	return app, tokenForRole(t, "admin")
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func createEmployeeHTTP(t *testing.T, app *fiber.App, token, email string) map[string]any {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/employees", token, map[string]any{
		"firstName":  "Ana",
		"lastName":   "Rojas",
		"email":      email,
		"position":   "Software Engineer",
		"department": "Engineering",
		"salary":     70000,
		"startDate":  "2024-05-01",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var body map[string]map[string]any
	decode(t, resp, &body)
	return body["employee"]
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD por HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_CrearYListarEmpleados(t *testing.T) {
	app, token := buildAPI(t)

	created := createEmployeeHTTP(t, app, token, "ana@company.com")
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, "active", created["status"], "el status por defecto es active")

	resp := doJSON(t, app, http.MethodGet, "/api/employees", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var list map[string][]map[string]any
	decode(t, resp, &list)
	require.Len(t, list["employees"], 1)
	assert.Equal(t, "ana@company.com", list["employees"][0]["email"])
}

func TestAPI_RutasProtegidasSinToken(t *testing.T) {
	app, _ := buildAPI(t)
	resp := doJSON(t, app, http.MethodGet, "/api/employees", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_CrearConEmailDuplicado(t *testing.T) {
	app, token := buildAPI(t)
	createEmployeeHTTP(t, app, token, "ana@company.com")

	resp := doJSON(t, app, http.MethodPost, "/api/employees", token, map[string]any{
		"firstName":  "Otra",
		"lastName":   "Ana",
		"email":      "ANA@company.com",
		"position":   "QA",
		"department": "Engineering",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "EMAIL_EXISTS")
}

func TestAPI_ActualizarYEliminar(t *testing.T) {
	app, token := buildAPI(t)
	created := createEmployeeHTTP(t, app, token, "ana@company.com")
	id := created["id"].(string)

	resp := doJSON(t, app, http.MethodPut, "/api/employees/"+id, token, map[string]any{
		"position": "Staff Engineer",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]map[string]any
	decode(t, resp, &body)
	assert.Equal(t, "Staff Engineer", body["employee"]["position"])
	assert.Equal(t, "Ana", body["employee"]["firstName"], "merge parcial: lo no enviado se conserva")

	resp = doJSON(t, app, http.MethodDelete, "/api/employees/"+id, token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/employees/"+id, token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_EmpleadoInexistenteDevuelve404(t *testing.T) {
	app, token := buildAPI(t)
	resp := doJSON(t, app, http.MethodGet, "/api/employees/no-existe", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas fijas vs /:id — export y bulk-update no deben caer en el parámetro
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_ExportCSVHeaders(t *testing.T) {
	app, token := buildAPI(t)
	createEmployeeHTTP(t, app, token, "ana@company.com")

	resp := doJSON(t, app, http.MethodGet, "/api/employees/export?format=csv", token, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment; filename=")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".csv")

	raw, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.HasPrefix(string(raw), "ID,First Name"))
}

func TestAPI_ExportPDF(t *testing.T) {
	app, token := buildAPI(t)
	resp := doJSON(t, app, http.MethodGet, "/api/employees/export?format=pdf", token, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func TestAPI_BulkUpdate(t *testing.T) {
	app, token := buildAPI(t)
	created := createEmployeeHTTP(t, app, token, "ana@company.com")
	id := created["id"].(string)

	resp := doJSON(t, app, http.MethodPost, "/api/employees/bulk-update", token, map[string]any{
		"employeeIds": []string{id, "no-existe"},
		"updates":     map[string]any{"department": "Operations"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Results []struct {
			ID      string `json:"id"`
			Success bool   `json:"success"`
		} `json:"results"`
		TotalProcessed int `json:"totalProcessed"`
	}
	decode(t, resp, &out)
	assert.Equal(t, 2, out.TotalProcessed)
	require.Len(t, out.Results, 2)
	assert.True(t, out.Results[0].Success)
	assert.False(t, out.Results[1].Success)
}

// ──────────────────────────────────────────────────────────────────────────────
// Foto de perfil por multipart
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_SubirFoto(t *testing.T) {
	app, token := buildAPI(t)
	created := createEmployeeHTTP(t, app, token, "ana@company.com")
	id := created["id"].(string)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {`form-data; name="photo"; filename="foto.png"`},
		"Content-Type":        {"image/png"},
	})
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/employees/"+id+"/photo", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]string
	decode(t, resp, &out)
	assert.Contains(t, out["profilePicture"], "https://storage.local/"+id+"-")
}

func TestAPI_SubirFotoSinArchivo(t *testing.T) {
	app, token := buildAPI(t)
	created := createEmployeeHTTP(t, app, token, "ana@company.com")
	id := created["id"].(string)

	resp := doJSON(t, app, http.MethodPost, "/api/employees/"+id+"/photo", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "NO_FILE")
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard y system
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_DashboardStats(t *testing.T) {
	app, token := buildAPI(t)
	createEmployeeHTTP(t, app, token, "ana@company.com")

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard/stats", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Stats struct {
			Total            int            `json:"total"`
			Active           int            `json:"active"`
			DepartmentCounts map[string]int `json:"departmentCounts"`
			AverageSalary    float64        `json:"averageSalary"`
		} `json:"stats"`
		RecentActivity []map[string]any `json:"recentActivity"`
	}
	decode(t, resp, &out)
	assert.Equal(t, 1, out.Stats.Total)
	assert.Equal(t, 1, out.Stats.Active)
	assert.Equal(t, 1, out.Stats.DepartmentCounts["Engineering"])
	assert.InDelta(t, 70000.0, out.Stats.AverageSalary, 0.001)
	assert.NotEmpty(t, out.RecentActivity, "el create deja una entrada de auditoría")
}

func TestAPI_HealthSinAutenticacion(t *testing.T) {
	app, _ := buildAPI(t)
	resp := doJSON(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]any
	decode(t, resp, &out)
	assert.Equal(t, "ok", out["status"])
	assert.Equal(t, true, out["storeConnected"])
	assert.Equal(t, false, out["demoUserExists"], "sin seed no hay usuario demo")
}

func TestAPI_AuthSignUpYSignIn(t *testing.T) {
	app, _ := buildAPI(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"email":     "nuevo@company.com",
		"password":  "supersegura1",
		"firstName": "Nuevo",
		"lastName":  "Usuario",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var up map[string]string
	decode(t, resp, &up)
	assert.NotEmpty(t, up["userId"])

	resp = doJSON(t, app, http.MethodPost, "/api/auth/signin", "", map[string]any{
		"email":    "nuevo@company.com",
		"password": "supersegura1",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var in struct {
		AccessToken string `json:"accessToken"`
		User        struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	decode(t, resp, &in)
	assert.NotEmpty(t, in.AccessToken)
	assert.Equal(t, "nuevo@company.com", in.User.Email)
	assert.Equal(t, "employee", in.User.Role)

	// El token emitido sirve para las rutas protegidas.
	protected := doJSON(t, app, http.MethodGet, "/api/employees", "Bearer "+in.AccessToken, nil)
	protected.Body.Close()
	assert.Equal(t, http.StatusOK, protected.StatusCode)
}
