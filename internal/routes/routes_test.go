package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-manager/internal/cache"
	"github.com/BruksfildServices01/salon-manager/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-manager/internal/db"
	"github.com/BruksfildServices01/salon-manager/internal/messaging"
	"github.com/BruksfildServices01/salon-manager/internal/models"
	"github.com/BruksfildServices01/salon-manager/internal/payments"
	"github.com/BruksfildServices01/salon-manager/internal/storage"
)

type server struct {
	t      *testing.T
	engine *gin.Engine
	db     *gorm.DB
	token  string
}

func newServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{JWTSecret: "test-secret", SetupTimeout: time.Second}

	r := gin.New()
	RegisterRoutes(r, cfg, Infra{
		DB:       db,
		Cache:    cache.New("", ""),
		Storage:  storage.NewS3(cfg),
		Payments: payments.NewMercadoPago(""),
		Sender:   messaging.NewTwilioSender("", "", ""),
		Location: time.UTC,
	})

	hash, _ := bcrypt.GenerateFromPassword([]byte("segredo123"), bcrypt.MinCost)
	db.Create(&models.User{Name: "Dona", Email: "dona@salao.pt", PasswordHash: string(hash), Role: "owner"})

	return &server{t: t, engine: r, db: db}
}

func (s *server) do(method, path string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			s.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *server) login() {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/auth/login", gin.H{"email": "dona@salao.pt", "password": "segredo123"})
	if w.Code != http.StatusOK {
		s.t.Fatalf("login: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	decode(s.t, w, &resp)
	s.token = resp.Token
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func TestHealthIsPublic(t *testing.T) {
	s := newServer(t)
	if w := s.do(http.MethodGet, "/health", nil); w.Code != http.StatusOK {
		t.Fatalf("health = %d", w.Code)
	}
	if w := s.do(http.MethodGet, "/metrics", nil); w.Code != http.StatusOK {
		t.Fatalf("metrics = %d", w.Code)
	}
}

func TestSecuredRoutesRequireToken(t *testing.T) {
	s := newServer(t)
	w := s.do(http.MethodGet, "/api/clients", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	s.token = "not-a-jwt"
	if w := s.do(http.MethodGet, "/api/clients", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	s := newServer(t)
	w := s.do(http.MethodPost, "/api/auth/login", gin.H{"email": "dona@salao.pt", "password": "errada"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestClientCrud(t *testing.T) {
	s := newServer(t)
	s.login()

	w := s.do(http.MethodPost, "/api/clients", gin.H{"name": "Ana Silva", "phone": "+351 912 345 678"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}
	var created models.Client
	decode(t, w, &created)
	if created.ID == "" || created.Initials != "AS" {
		t.Fatalf("unexpected client: %+v", created)
	}

	w = s.do(http.MethodGet, "/api/clients?query=ana", nil)
	var list struct {
		Total int `json:"total"`
	}
	decode(t, w, &list)
	if list.Total != 1 {
		t.Fatalf("total = %d, want 1", list.Total)
	}

	if w := s.do(http.MethodDelete, "/api/clients/"+created.ID, nil); w.Code != http.StatusNoContent {
		t.Fatalf("delete: %d", w.Code)
	}
	if w := s.do(http.MethodGet, "/api/clients/"+created.ID, nil); w.Code != http.StatusNotFound {
		t.Fatalf("get after delete: %d", w.Code)
	}
}

func TestClosingFlowOverHTTP(t *testing.T) {
	s := newServer(t)
	s.login()

	var client models.Client
	decode(t, s.do(http.MethodPost, "/api/clients", gin.H{"name": "Bia"}), &client)

	const day = "/api/closings/2026-10-14"

	if w := s.do(http.MethodPost, day+"/start", nil); w.Code != http.StatusOK {
		t.Fatalf("start: %d %s", w.Code, w.Body.String())
	}
	if w := s.do(http.MethodPost, day+"/next", nil); w.Code != http.StatusOK {
		t.Fatalf("next: %d %s", w.Code, w.Body.String())
	}
	w := s.do(http.MethodPost, day+"/additional", gin.H{
		"client_id":      client.ID,
		"service_name":   "Manicure",
		"value":          "25",
		"payment_method": "card",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("additional: %d %s", w.Code, w.Body.String())
	}
	if w := s.do(http.MethodPost, day+"/next", nil); w.Code != http.StatusOK {
		t.Fatalf("commit: %d %s", w.Code, w.Body.String())
	}

	w = s.do(http.MethodPost, day+"/complete", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("complete: %d %s", w.Code, w.Body.String())
	}
	var view struct {
		Step  string `json:"step"`
		Stats struct {
			ClientCount int `json:"client_count"`
		} `json:"stats"`
	}
	decode(t, w, &view)
	if view.Step != "completed" || view.Stats.ClientCount != 1 {
		t.Fatalf("unexpected view: %+v", view)
	}

	if w := s.do(http.MethodPost, day+"/back", nil); w.Code != http.StatusConflict {
		t.Fatalf("back after complete = %d, want 409", w.Code)
	}

	var txs struct {
		Total int `json:"total"`
	}
	decode(t, s.do(http.MethodGet, "/api/financial/transactions?date=2026-10-14", nil), &txs)
	if txs.Total != 1 {
		t.Fatalf("transactions = %d, want 1", txs.Total)
	}

	var closings struct {
		Total int `json:"total"`
	}
	decode(t, s.do(http.MethodGet, "/api/closings?from=2026-10-01&to=2026-10-31", nil), &closings)
	if closings.Total != 1 {
		t.Fatalf("closings = %d, want 1", closings.Total)
	}
}

func TestSetupWithoutPoolReturnsManualScript(t *testing.T) {
	s := newServer(t)
	s.login()

	w := s.do(http.MethodPost, "/api/setup-stored-procedure", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var res struct {
		Success             bool   `json:"success"`
		ManualSetupRequired bool   `json:"manualSetupRequired"`
		ScriptContent       string `json:"scriptContent"`
	}
	decode(t, w, &res)
	if res.Success || !res.ManualSetupRequired || res.ScriptContent == "" {
		t.Fatalf("unexpected result: %+v", res)
	}
}
