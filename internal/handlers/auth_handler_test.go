package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-manager/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-manager/internal/db"
	"github.com/BruksfildServices01/salon-manager/internal/middleware"
)

func setupAuth(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{JWTSecret: "test-secret"}
	h := NewAuthHandler(db, cfg, nil)
	h.emailDomainOK = func(email string) bool { return email != "x@nowhere.invalid" }

	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/me", middleware.AuthMiddleware(cfg.JWTSecret), NewMeHandler(db).GetMe)
	return r, db
}

func post(r *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type authResponse struct {
	Token string `json:"token"`
	User  struct {
		ID   uint   `json:"id"`
		Role string `json:"role"`
	} `json:"user"`
}

func TestRegisterFirstUserIsOwner(t *testing.T) {
	r, _ := setupAuth(t)

	w := post(r, "/register", gin.H{"name": "Dona", "email": "Dona@Salao.pt", "password": "segredo"})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: %d %s", w.Code, w.Body.String())
	}
	var first authResponse
	_ = json.Unmarshal(w.Body.Bytes(), &first)
	if first.User.Role != "owner" || first.Token == "" {
		t.Fatalf("unexpected response: %+v", first)
	}

	w = post(r, "/register", gin.H{"name": "Rita", "email": "rita@salao.pt", "password": "segredo"})
	var second authResponse
	_ = json.Unmarshal(w.Body.Bytes(), &second)
	if second.User.Role != "staff" {
		t.Fatalf("second role = %q, want staff", second.User.Role)
	}

	tok, err := jwt.Parse(second.Token, func(*jwt.Token) (any, error) { return []byte("test-secret"), nil })
	if err != nil || !tok.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if claims["role"] != "staff" {
		t.Errorf("role claim = %v", claims["role"])
	}
}

func TestRegisterRejections(t *testing.T) {
	r, _ := setupAuth(t)
	post(r, "/register", gin.H{"name": "Dona", "email": "dona@salao.pt", "password": "segredo"})

	tests := []struct {
		name string
		body gin.H
		code int
		want string
	}{
		{"duplicate", gin.H{"name": "D", "email": "DONA@salao.pt", "password": "segredo"}, http.StatusConflict, "email_already_exists"},
		{"bad domain", gin.H{"name": "X", "email": "x@nowhere.invalid", "password": "segredo"}, http.StatusBadRequest, "invalid_email_domain"},
		{"short password", gin.H{"name": "Y", "email": "y@salao.pt", "password": "123"}, http.StatusBadRequest, "invalid_request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(r, "/register", tt.body)
			if w.Code != tt.code {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.code, w.Body.String())
			}
			var resp struct {
				Code string `json:"error_code"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &resp)
			if resp.Code != tt.want {
				t.Errorf("error_code = %q, want %q", resp.Code, tt.want)
			}
		})
	}
}

func TestLoginAndMe(t *testing.T) {
	r, _ := setupAuth(t)
	post(r, "/register", gin.H{"name": "Dona", "email": "dona@salao.pt", "password": "segredo"})

	if w := post(r, "/login", gin.H{"email": "dona@salao.pt", "password": "outra"}); w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: %d", w.Code)
	}

	w := post(r, "/login", gin.H{"email": "dona@salao.pt", "password": "segredo"})
	if w.Code != http.StatusOK {
		t.Fatalf("login: %d %s", w.Code, w.Body.String())
	}
	var resp authResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	me := httptest.NewRecorder()
	r.ServeHTTP(me, req)
	if me.Code != http.StatusOK {
		t.Fatalf("me: %d %s", me.Code, me.Body.String())
	}
}
