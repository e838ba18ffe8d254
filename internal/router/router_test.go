package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"cattery-cms/internal/platform/config"
	"cattery-cms/internal/router"
	"cattery-cms/internal/seed"

	"github.com/go-chi/chi/v5"
)

func testConfig() config.Config {
	return config.Config{
		SecretKey:            "test-secret",
		TokenTTL:             time.Hour,
		CORSOrigins:          []string{"http://localhost:5173"},
		DefaultAdminPassword: "admin123",
		Environment:          "test",
		SiteURL:              "https://example.com",
	}
}

func newServer(t *testing.T, withSeed bool) *httptest.Server {
	t.Helper()
	opts := router.Options{Config: testConfig()}
	if withSeed {
		f, err := seed.Default()
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		opts.Seed = &f
	}
	h, err := router.NewRouter(context.Background(), opts)
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_Health(t *testing.T) {
	ts := newServer(t, false)

	st, body := doReq(t, ts.URL, "GET", "/api/health", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var out map[string]string
	mustJSON(t, body, &out)
	if out["status"] != "healthy" || out["environment"] != "test" {
		t.Fatalf("unexpected health body: %s", body)
	}
}

func TestHTTP_AdminSession(t *testing.T) {
	ts := newServer(t, true)

	// 1) Contraseña incorrecta => 401 sin token
	{
		st, body := doReq(t, ts.URL, "POST", "/api/admin/login", "", map[string]any{"password": "wrong"})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d body=%s", st, body)
		}
		var out map[string]any
		mustJSON(t, body, &out)
		if out["detail"] != "Incorrect password" || out["token"] != nil {
			t.Fatalf("unexpected body: %s", body)
		}
	}

	token := login(t, ts.URL, "admin123")

	// 2) Escrituras sin token o con token inválido => 401
	for _, tok := range []string{"", "garbage"} {
		st, _ := doReq(t, ts.URL, "POST", "/api/kittens", tok, map[string]any{"name": "X", "gender": "Male"})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 for token %q, got %d", tok, st)
		}
		st, _ = doReq(t, ts.URL, "PUT", "/api/content", tok, map[string]any{"page_name": "home", "content": "{}"})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 on content put for token %q, got %d", tok, st)
		}
	}

	// 3) Nueva contraseña de 5 => 400
	{
		st, body := doReq(t, ts.URL, "POST", "/api/admin/change-password", token, map[string]any{
			"current_password": "admin123", "new_password": "12345",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", st, body)
		}
	}

	// 3b) Demasiado larga para bcrypt => 400, no 500
	{
		st, body := doReq(t, ts.URL, "POST", "/api/admin/change-password", token, map[string]any{
			"current_password": "admin123", "new_password": strings.Repeat("p", 80),
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", st, body)
		}
	}

	// 4) Actual incorrecta => 401
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/admin/change-password", token, map[string]any{
			"current_password": "nope", "new_password": "123456",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", st)
		}
	}

	// 5) Largo 6 => ok; vieja deja de servir, nueva sirve
	{
		st, body := doReq(t, ts.URL, "POST", "/api/admin/change-password", token, map[string]any{
			"current_password": "admin123", "new_password": "123456",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", st, body)
		}
		st, _ = doReq(t, ts.URL, "POST", "/api/admin/login", "", map[string]any{"password": "admin123"})
		if st != http.StatusUnauthorized {
			t.Fatalf("old password should fail, got %d", st)
		}
		_ = login(t, ts.URL, "123456")
	}
}

func TestHTTP_ContentRoundTrip(t *testing.T) {
	ts := newServer(t, true)
	token := login(t, ts.URL, "admin123")

	// seed ya dejó el home
	{
		st, body := doReq(t, ts.URL, "GET", "/api/content/home", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected seeded home, got %d body=%s", st, body)
		}
	}

	// página inexistente => 404
	{
		st, body := doReq(t, ts.URL, "GET", "/api/content/unknown", "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404, got %d body=%s", st, body)
		}
	}

	doc := map[string]any{
		"title":           "About",
		"description":     "desc",
		"contact":         map[string]any{"email": "a@b.com", "phone": "1", "address": "x"},
		"payment_methods": []string{"Cash"},
	}
	raw, _ := json.Marshal(doc)

	st, body := doReq(t, ts.URL, "PUT", "/api/content", token, map[string]any{"page_name": "about", "content": string(raw)})
	if st != http.StatusOK {
		t.Fatalf("expected 200 put, got %d body=%s", st, body)
	}

	st, body = doReq(t, ts.URL, "GET", "/api/content/about", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get, got %d", st)
	}
	var env struct {
		ID       int64  `json:"id"`
		PageName string `json:"page_name"`
		Content  string `json:"content"`
	}
	mustJSON(t, body, &env)
	if env.ID == 0 {
		t.Fatalf("expected envelope id, got %s", body)
	}

	var got, want any
	mustJSON(t, []byte(env.Content), &got)
	mustJSON(t, raw, &want)
	if !jsonEqual(got, want) || env.PageName != "about" {
		t.Fatalf("round trip mismatch: got %s want %s", env.Content, raw)
	}
}

func TestHTTP_CollectionsCRUD(t *testing.T) {
	ts := newServer(t, true)
	token := login(t, ts.URL, "admin123")

	for _, tc := range []struct {
		path   string
		label  string
		record map[string]any
	}{
		{"/api/kittens", "Kitten", map[string]any{"name": "Milo", "gender": "Male", "price": 900, "available": true}},
		{"/api/parents", "Parent", map[string]any{"name": "Queen", "gender": "Female"}},
		{"/api/products", "Product", map[string]any{"name": "Toy", "price": -1, "stock_quantity": -3}},
	} {
		t.Run(tc.label, func(t *testing.T) {
			before := listIDs(t, ts.URL, tc.path)

			// validación: falta name => 400
			st, _ := doReq(t, ts.URL, "POST", tc.path, token, map[string]any{"gender": "Male"})
			if st != http.StatusBadRequest {
				t.Fatalf("expected 400 without name, got %d", st)
			}

			st, body := doReq(t, ts.URL, "POST", tc.path, token, tc.record)
			if st != http.StatusCreated {
				t.Fatalf("expected 201, got %d body=%s", st, body)
			}
			var created struct {
				ID        int64     `json:"id"`
				CreatedAt time.Time `json:"created_at"`
			}
			mustJSON(t, body, &created)
			if _, dup := before[created.ID]; dup || created.CreatedAt.IsZero() {
				t.Fatalf("unexpected created record: %s", body)
			}

			after := listIDs(t, ts.URL, tc.path)
			if len(after) != len(before)+1 {
				t.Fatalf("expected list to grow by 1: before=%d after=%d", len(before), len(after))
			}

			id := strconv.FormatInt(created.ID, 10)

			st, _ = doReq(t, ts.URL, "GET", tc.path+"/"+id, "", nil)
			if st != http.StatusOK {
				t.Fatalf("expected 200 get by id, got %d", st)
			}

			// update inexistente => 404 y la lista no cambia
			st, body = doReq(t, ts.URL, "PUT", tc.path+"/999999", token, tc.record)
			if st != http.StatusNotFound {
				t.Fatalf("expected 404 update missing, got %d", st)
			}
			var errBody map[string]string
			mustJSON(t, body, &errBody)
			if errBody["detail"] != tc.label+" not found" {
				t.Fatalf("unexpected detail: %s", body)
			}
			if len(listIDs(t, ts.URL, tc.path)) != len(after) {
				t.Fatalf("list changed after failed update")
			}

			st, _ = doReq(t, ts.URL, "DELETE", tc.path+"/"+id, token, nil)
			if st != http.StatusOK {
				t.Fatalf("expected 200 delete, got %d", st)
			}
			st, _ = doReq(t, ts.URL, "DELETE", tc.path+"/"+id, token, nil)
			if st != http.StatusNotFound {
				t.Fatalf("expected 404 on second delete, got %d", st)
			}
			if len(listIDs(t, ts.URL, tc.path)) != len(before) {
				t.Fatalf("expected exactly one record removed")
			}
		})
	}
}

func TestHTTP_KittensAvailableFilter(t *testing.T) {
	ts := newServer(t, true)

	all := listIDs(t, ts.URL, "/api/kittens")
	avail := listIDs(t, ts.URL, "/api/kittens?available_only=true")
	if len(all) != 4 || len(avail) != 3 {
		t.Fatalf("expected 4 seeded kittens with 3 available, got %d/%d", len(all), len(avail))
	}
}

func TestHTTP_WaitingListPublicAppend(t *testing.T) {
	ts := newServer(t, false)

	st, body := doReq(t, ts.URL, "POST", "/api/waiting-list", "", map[string]any{
		"name": "Jo", "email": "jo@x.com", "phone": "555-0100", "preferences": "",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", st, body)
	}

	st, _ = doReq(t, ts.URL, "POST", "/api/waiting-list", "", map[string]any{"name": "Jo", "email": "nope", "phone": "1"})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad email, got %d", st)
	}

	// listar requiere admin
	st, _ = doReq(t, ts.URL, "GET", "/api/waiting-list", "", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 listing without token, got %d", st)
	}

	// sin seed no hay contraseña guardada: ningún login pasa
	st, _ = doReq(t, ts.URL, "POST", "/api/admin/login", "", map[string]any{"password": "admin123"})
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without stored password, got %d", st)
	}
}

func TestHTTP_WaitingListAdminFlow(t *testing.T) {
	ts := newServer(t, true)
	token := login(t, ts.URL, "admin123")

	st, body := doReq(t, ts.URL, "POST", "/api/waiting-list", "", map[string]any{
		"name": "Jo", "email": "jo@x.com", "phone": "555-0100", "preferences": "",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", st, body)
	}

	st, body = doReq(t, ts.URL, "GET", "/api/waiting-list", token, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var entries []struct {
		ID        int64     `json:"id"`
		Name      string    `json:"name"`
		CreatedAt time.Time `json:"created_at"`
	}
	mustJSON(t, body, &entries)
	if len(entries) != 1 || entries[0].Name != "Jo" || entries[0].ID == 0 || entries[0].CreatedAt.IsZero() {
		t.Fatalf("unexpected entries: %s", body)
	}

	id := strconv.FormatInt(entries[0].ID, 10)
	st, _ = doReq(t, ts.URL, "DELETE", "/api/waiting-list/"+id, token, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 delete, got %d", st)
	}

	_, body = doReq(t, ts.URL, "GET", "/api/waiting-list", token, nil)
	mustJSON(t, body, &entries)
	if len(entries) != 0 {
		t.Fatalf("expected empty list after delete, got %s", body)
	}
}

func TestHTTP_CORSPreflight(t *testing.T) {
	ts := newServer(t, false)

	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/api/kittens", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("unexpected allow origin %q", got)
	}
}

// --- helpers ---

func login(t *testing.T, baseURL, password string) string {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/api/admin/login", "", map[string]any{"password": password})
	if st != http.StatusOK {
		t.Fatalf("login expected 200, got %d body=%s", st, body)
	}
	var out struct {
		Authenticated bool   `json:"authenticated"`
		Token         string `json:"token"`
	}
	mustJSON(t, body, &out)
	if !out.Authenticated || out.Token == "" {
		t.Fatalf("unexpected login body: %s", body)
	}
	return out.Token
}

func listIDs(t *testing.T, baseURL, path string) map[int64]struct{} {
	t.Helper()
	st, body := doReq(t, baseURL, "GET", path, "", nil)
	if st != http.StatusOK {
		t.Fatalf("list %s expected 200, got %d", path, st)
	}
	var items []struct {
		ID int64 `json:"id"`
	}
	mustJSON(t, body, &items)
	out := make(map[int64]struct{}, len(items))
	for _, it := range items {
		out[it.ID] = struct{}{}
	}
	return out
}

func doReq(t *testing.T, baseURL, method, path, token string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b
}

func mustJSON(t *testing.T, b []byte, into any) {
	t.Helper()
	if err := json.Unmarshal(b, into); err != nil {
		t.Fatalf("invalid json %q: %v", string(b), err)
	}
}

func jsonEqual(a, b any) bool {
	ab, _ := json.Marshal(a)
	bb, _ := json.Marshal(b)
	return bytes.Equal(ab, bb)
}

func TestHTTP_SwaggerDocMatchesRoutes(t *testing.T) {
	h, err := router.NewRouter(context.Background(), router.Options{Config: testConfig()})
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	mux, ok := h.(*chi.Mux)
	if !ok {
		t.Fatalf("expected *chi.Mux, got %T", h)
	}
	ts := httptest.NewServer(h)
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	mustJSON(t, body, &doc)

	concrete := strings.NewReplacer("{id}", "1", "{pageName}", "home")
	for path, ops := range doc.Paths {
		for method := range ops {
			if !mux.Match(chi.NewRouteContext(), strings.ToUpper(method), concrete.Replace(path)) {
				t.Fatalf("documented %s %s is not routed", method, path)
			}
		}
	}

	for _, p := range []string{"/api/kittens", "/api/parents", "/api/products"} {
		for _, m := range []string{"get", "post"} {
			if _, ok := doc.Paths[p][m]; !ok {
				t.Fatalf("missing doc for %s %s", m, p)
			}
		}
		for _, m := range []string{"get", "put", "delete"} {
			if _, ok := doc.Paths[p+"/{id}"][m]; !ok {
				t.Fatalf("missing doc for %s %s/{id}", m, p)
			}
		}
	}
}
