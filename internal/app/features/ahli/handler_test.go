package ahli_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/ahlihub/ahlihub/internal/app/features/ahli"
	userstore "github.com/ahlihub/ahlihub/internal/app/store/users"
	"github.com/ahlihub/ahlihub/internal/app/system/indexes"
	"github.com/ahlihub/ahlihub/internal/app/system/token"
	"github.com/ahlihub/ahlihub/internal/domain/enums"
	"github.com/ahlihub/ahlihub/internal/testutil"
)

type env struct {
	router    http.Handler
	adminTok  string
	memberTok string
}

func setup(t *testing.T) *env {
	t.Helper()
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll: %v", err)
	}

	users := userstore.New(db)
	admin, err := users.Create(ctx, userstore.NewUser{
		Username: "boss", Email: "boss@example.com", Password: "pw", Role: enums.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}
	member, err := users.Create(ctx, userstore.NewUser{
		Username: "ali", Email: "ali@example.com", Password: "pw",
	})
	if err != nil {
		t.Fatalf("create member: %v", err)
	}

	tokens := token.NewManager("test-secret", time.Hour)
	adminTok, err := tokens.Issue(admin.ID.Hex())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	memberTok, err := tokens.Issue(member.ID.Hex())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	h := ahli.NewHandler(db, zap.NewNop())
	return &env{
		router:    ahli.Routes(h, tokens, userstore.NewFetcher(users)),
		adminTok:  adminTok,
		memberTok: memberTok,
	}
}

func (e *env) do(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestRegistry_AdminOnly(t *testing.T) {
	e := setup(t)

	if rec := e.do(t, http.MethodGet, "/", "", nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", rec.Code)
	}
	if rec := e.do(t, http.MethodGet, "/", e.memberTok, nil); rec.Code != http.StatusForbidden {
		t.Errorf("member token: status = %d, want 403", rec.Code)
	}
	if rec := e.do(t, http.MethodGet, "/", e.adminTok, nil); rec.Code != http.StatusOK {
		t.Errorf("admin token: status = %d, want 200", rec.Code)
	}
}

func TestCreate_ThenList(t *testing.T) {
	e := setup(t)

	rec := e.do(t, http.MethodPost, "/", e.adminTok, map[string]string{
		"idNo": "PAK-0001", "fullName": "Ali bin Abu", "gender": enums.GenderMale,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = e.do(t, http.MethodGet, "/", e.adminTok, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var body struct {
		Ahli []map[string]any `json:"ahli"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(body.Ahli) != 1 || body.Ahli[0]["idNo"] != "PAK-0001" {
		t.Fatalf("unexpected list: %v", body.Ahli)
	}
}

func TestCreate_DuplicateIDNoConflict(t *testing.T) {
	e := setup(t)

	payload := map[string]string{"idNo": "PAK-0001", "fullName": "Ali"}
	if rec := e.do(t, http.MethodPost, "/", e.adminTok, payload); rec.Code != http.StatusCreated {
		t.Fatalf("first create status = %d", rec.Code)
	}
	rec := e.do(t, http.MethodPost, "/", e.adminTok, map[string]string{"idNo": "PAK-0001", "fullName": "Abu"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestCreate_MissingFields(t *testing.T) {
	e := setup(t)

	rec := e.do(t, http.MethodPost, "/", e.adminTok, map[string]string{"fullName": "Ali"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	e := setup(t)

	rec := e.do(t, http.MethodPost, "/", e.adminTok, map[string]string{"idNo": "PAK-0001", "fullName": "Ali"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d", rec.Code)
	}
	var created struct {
		Ahli struct {
			ID string `json:"id"`
		} `json:"ahli"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create: %v", err)
	}

	rec = e.do(t, http.MethodPut, "/"+created.Ahli.ID, e.adminTok, map[string]string{"phoneNumber": "0123456789"})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = e.do(t, http.MethodDelete, "/"+created.Ahli.ID, e.adminTok, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}
	rec = e.do(t, http.MethodDelete, "/"+created.Ahli.ID, e.adminTok, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rec.Code)
	}
}
