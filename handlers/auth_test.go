package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/richardfsdias/trabalho-marmoraria-jacone/handlers"
	"github.com/richardfsdias/trabalho-marmoraria-jacone/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	models.MigrateTable(db)
	return handlers.SetupRouter(db), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", rr.Body.String(), err)
	}
	return out
}

func signupAndLogin(t *testing.T, r *gin.Engine) string {
	t.Helper()
	rr := doJSON(t, r, http.MethodPost, "/funcionarios/cadastro", "", gin.H{
		"nome": "Tester", "email": "tester@marmoraria.com",
		"senha": "Senha@Forte1", "cpf": "529.982.247-25",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("cadastro: status %d body %s", rr.Code, rr.Body.String())
	}
	rr = doJSON(t, r, http.MethodPost, "/login", "", gin.H{
		"email": "tester@marmoraria.com", "senha": "Senha@Forte1",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("login: status %d body %s", rr.Code, rr.Body.String())
	}
	token, _ := decodeBody(t, rr)["access_token"].(string)
	if token == "" {
		t.Fatalf("login body missing access_token: %s", rr.Body.String())
	}
	return token
}

func TestLoginFlow(t *testing.T) {
	r, _ := setupTestServer(t)
	token := signupAndLogin(t, r)
	if token == "" {
		t.Fatal("empty token")
	}

	rr := doJSON(t, r, http.MethodPost, "/login", "", gin.H{
		"email": "tester@marmoraria.com", "senha": "errada",
	})
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: status %d, want 401", rr.Code)
	}
	if _, ok := decodeBody(t, rr)["erro"]; !ok {
		t.Errorf("error body missing 'erro': %s", rr.Body.String())
	}
}

func TestCadastroWeakPassword(t *testing.T) {
	r, _ := setupTestServer(t)
	rr := doJSON(t, r, http.MethodPost, "/funcionarios/cadastro", "", gin.H{
		"nome": "T", "email": "t@marmoraria.com", "senha": "fraca", "cpf": "52998224725",
	})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("weak password: status %d, want 400", rr.Code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r, _ := setupTestServer(t)

	rr := doJSON(t, r, http.MethodGet, "/clientes", "", nil)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("no token: status %d, want 401", rr.Code)
	}

	rr = doJSON(t, r, http.MethodGet, "/clientes", "token-invalido", nil)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status %d, want 401", rr.Code)
	}
}

func TestHealthz(t *testing.T) {
	r, _ := setupTestServer(t)
	rr := doJSON(t, r, http.MethodGet, "/healthz", "", nil)
	if rr.Code != http.StatusOK {
		t.Errorf("healthz: status %d, want 200", rr.Code)
	}
}
