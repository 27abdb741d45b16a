package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"kos-be-svc/internal/models"
	"kos-be-svc/internal/repository"
	"kos-be-svc/internal/service"
	"kos-be-svc/pkg/logger"
)

// envelope mirrors utils.APIResponse with raw data for per-test decoding
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Kamar{},
		&models.Pembayaran{},
		&models.AccessToken{},
	))

	log := logger.NewLogger("error", "text")
	userRepo := repository.NewUserRepository(db)
	kamarRepo := repository.NewKamarRepository(db)
	pembayaranRepo := repository.NewPembayaranRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	authService := service.NewAuthService(userRepo, tokenRepo, log)
	kamarService := service.NewKamarService(kamarRepo, userRepo, log)
	pembayaranService := service.NewPembayaranService(pembayaranRepo, kamarRepo, userRepo, log)
	userService := service.NewUserService(userRepo, log)

	router := gin.New()
	SetupRoutes(router, authService, kamarService, pembayaranService, userService, tokenRepo, log)
	return router
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

// registerAndLogin creates an account through the API and returns its token
func registerAndLogin(t *testing.T, router *gin.Engine, nama, email, role string) string {
	t.Helper()

	w := doJSON(router, http.MethodPost, "/api/register", "", gin.H{
		"nama":     nama,
		"email":    email,
		"password": "rahasia1",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var auth struct {
		Token string `json:"token"`
	}
	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &auth))
	require.NotEmpty(t, auth.Token)
	return auth.Token
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestAuthFlow(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "Budi Santoso", "budi@gmail.com", "penyewa")

	// Profile with the fresh token
	w := doJSON(router, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "budi@gmail.com")
	// The password hash never leaks
	assert.NotContains(t, w.Body.String(), "password")

	// A second login rotates the session: the old token dies
	w = doJSON(router, http.MethodPost, "/api/login", "", gin.H{
		"email":    "budi@gmail.com",
		"password": "rahasia1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var auth struct {
		Token string `json:"token"`
	}
	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &auth))

	w = doJSON(router, http.MethodGet, "/api/profile", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Logout revokes the new token too
	w = doJSON(router, http.MethodPost, "/api/logout", auth.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(router, http.MethodGet, "/api/profile", auth.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	router := newTestRouter(t)
	registerAndLogin(t, router, "Budi Santoso", "budi@gmail.com", "penyewa")

	w := doJSON(router, http.MethodPost, "/api/login", "", gin.H{
		"email":    "budi@gmail.com",
		"password": "salah123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email atau password salah")
}

func TestKamarEndpoints(t *testing.T) {
	router := newTestRouter(t)
	adminToken := registerAndLogin(t, router, "Admin Kos", "admin@kos.com", "admin")
	penyewaToken := registerAndLogin(t, router, "Budi Santoso", "budi@gmail.com", "penyewa")

	// Mutations are admin only
	w := doJSON(router, http.MethodPost, "/api/kamar", penyewaToken, gin.H{
		"nomor_kamar":   "A01",
		"tipe":          "single",
		"harga_bulanan": 800000,
		"status":        "tersedia",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodPost, "/api/kamar", adminToken, gin.H{
		"nomor_kamar":   "A01",
		"tipe":          "single",
		"harga_bulanan": 800000,
		"status":        "tersedia",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var kamar models.Kamar
	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &kamar))

	// Duplicate nomor is rejected
	w = doJSON(router, http.MethodPost, "/api/kamar", adminToken, gin.H{
		"nomor_kamar":   "A01",
		"tipe":          "double",
		"harga_bulanan": 1200000,
		"status":        "tersedia",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Nomor kamar sudah digunakan")

	// Reads are open to any authenticated role
	w = doJSON(router, http.MethodGet, "/api/kamar", penyewaToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "A01")

	w = doJSON(router, http.MethodGet, fmt.Sprintf("/api/kamar/%d", kamar.ID), penyewaToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/kamar/statistics/dashboard", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_kamar":1`)

	w = doJSON(router, http.MethodPut, fmt.Sprintf("/api/kamar/%d", kamar.ID), adminToken, gin.H{
		"harga_bulanan": 900000,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/kamar/%d", kamar.ID), adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, fmt.Sprintf("/api/kamar/%d", kamar.ID), adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUsersEndpointsAdminOnly(t *testing.T) {
	router := newTestRouter(t)
	adminToken := registerAndLogin(t, router, "Admin Kos", "admin@kos.com", "admin")
	penyewaToken := registerAndLogin(t, router, "Budi Santoso", "budi@gmail.com", "penyewa")

	w := doJSON(router, http.MethodGet, "/api/users", penyewaToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodPost, "/api/users", adminToken, gin.H{
		"nama":     "Siti Aminah",
		"email":    "siti@gmail.com",
		"password": "rahasia1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(router, http.MethodGet, "/api/users", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	// Penyewa only; the admin account is not listed
	assert.Contains(t, w.Body.String(), "siti@gmail.com")
	assert.NotContains(t, w.Body.String(), "admin@kos.com")
}

func TestPembayaranEndpoints(t *testing.T) {
	router := newTestRouter(t)
	adminToken := registerAndLogin(t, router, "Admin Kos", "admin@kos.com", "admin")
	budiToken := registerAndLogin(t, router, "Budi Santoso", "budi@gmail.com", "penyewa")
	registerAndLogin(t, router, "Siti Aminah", "siti@gmail.com", "penyewa")

	// Look up budi's id and set up a kamar for him
	w := doJSON(router, http.MethodGet, "/api/profile", budiToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var budi models.User
	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &budi))

	w = doJSON(router, http.MethodPost, "/api/kamar", adminToken, gin.H{
		"nomor_kamar":   "A01",
		"tipe":          "single",
		"harga_bulanan": 800000,
		"status":        "terisi",
		"user_id":       budi.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var kamar models.Kamar
	env = decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &kamar))

	payload := gin.H{
		"kamar_id":         kamar.ID,
		"user_id":          budi.ID,
		"bulan_pembayaran": 3,
		"tahun_pembayaran": 2024,
		"tanggal_bayar":    "2024-03-05",
		"jumlah":           800000,
		"status":           "lunas",
	}

	// Penyewa cannot record payments
	w = doJSON(router, http.MethodPost, "/api/pembayaran", budiToken, payload)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodPost, "/api/pembayaran", adminToken, payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var pembayaran models.Pembayaran
	env = decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &pembayaran))

	// Same periode twice is rejected
	w = doJSON(router, http.MethodPost, "/api/pembayaran", adminToken, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Pembayaran untuk bulan ini sudah tercatat")

	// The owner reads his own payment, other detail reads are covered at the
	// service level
	w = doJSON(router, http.MethodGet, fmt.Sprintf("/api/pembayaran/%d", pembayaran.ID), budiToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/pembayaran", budiToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"bulan_pembayaran":3`)

	w = doJSON(router, http.MethodGet, fmt.Sprintf("/api/pembayaran/kamar/%d", kamar.ID), budiToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/pembayaran/laporan/dashboard?bulan=3&tahun=2024", budiToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_pembayaran":800000`)

	// Export is admin only and answers with a workbook
	w = doJSON(router, http.MethodGet, "/api/pembayaran/laporan/export?bulan=3&tahun=2024", budiToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, http.MethodGet, "/api/pembayaran/laporan/export?bulan=3&tahun=2024", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "laporan-pembayaran-03-2024.xlsx")

	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/pembayaran/%d", pembayaran.ID), adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMalformedQueryAndParams(t *testing.T) {
	router := newTestRouter(t)
	adminToken := registerAndLogin(t, router, "Admin Kos", "admin@kos.com", "admin")

	w := doJSON(router, http.MethodGet, "/api/kamar/abc", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodGet, "/api/pembayaran?bulan=xyz", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodGet, "/api/pembayaran/laporan/dashboard?bulan=13", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Bulan pembayaran harus antara 1-12")
}
