package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restokit/go-menu-cache/catalogcache"
	"github.com/restokit/go-menu-cache/pkg/testsupport"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cat := catalogcache.New(testsupport.NewFakeEntityStore(), testsupport.NewFakeCacheStore(), nil)
	srv := httptest.NewServer(NewRouter(cat, nil))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func createMenu(t *testing.T, base, title string) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, base+"/api/v1/menus",
		fmt.Sprintf(`{"title": %q, "description": "d"}`, title))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return body["id"].(string)
}

func createSubmenu(t *testing.T, base, menuID, title string) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, base+"/api/v1/menus/"+menuID+"/submenus",
		fmt.Sprintf(`{"title": %q}`, title))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return body["id"].(string)
}

func createDish(t *testing.T, base, menuID, submenuID, title, price string) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost,
		base+"/api/v1/menus/"+menuID+"/submenus/"+submenuID+"/dishes",
		fmt.Sprintf(`{"title": %q, "price": %q}`, title, price))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return body["id"].(string)
}

func TestMenuLifecycle(t *testing.T) {
	srv := newTestServer(t)
	menuID := createMenu(t, srv.URL, "lunch")

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/v1/menus/"+menuID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "lunch", body["title"])
	assert.EqualValues(t, 0, body["submenus_count"])
	assert.EqualValues(t, 0, body["dishes_count"])

	resp, body = doJSON(t, http.MethodPatch, srv.URL+"/api/v1/menus/"+menuID,
		`{"title": "dinner", "description": "evening"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "dinner", body["title"])
	assert.Equal(t, "evening", body["description"])

	resp, body = doJSON(t, http.MethodDelete, srv.URL+"/api/v1/menus/"+menuID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Success.", body["message"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/v1/menus/"+menuID, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "menu not found", body["detail"])
}

func TestCreateMenuWithClientAssignedID(t *testing.T) {
	srv := newTestServer(t)
	id := uuid.NewString()

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/v1/menus",
		fmt.Sprintf(`{"id": %q, "title": "pinned"}`, id))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, id, body["id"])
}

func TestNotFoundBodies(t *testing.T) {
	srv := newTestServer(t)
	menuID := createMenu(t, srv.URL, "m")
	submenuID := createSubmenu(t, srv.URL, menuID, "s")
	missing := uuid.NewString()

	cases := []struct {
		name   string
		url    string
		detail string
	}{
		{"menu", "/api/v1/menus/" + missing, "menu not found"},
		{"submenu", "/api/v1/menus/" + menuID + "/submenus/" + missing, "submenu not found"},
		{"dish", "/api/v1/menus/" + menuID + "/submenus/" + submenuID + "/dishes/" + missing, "dish not found"},
		{"submenus of missing menu", "/api/v1/menus/" + missing + "/submenus", "menu not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := doJSON(t, http.MethodGet, srv.URL+tc.url, "")
			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			assert.Equal(t, tc.detail, body["detail"])
		})
	}
}

func TestDishesOfMissingSubmenuIsEmptyList(t *testing.T) {
	srv := newTestServer(t)
	menuID := createMenu(t, srv.URL, "m")

	url := srv.URL + "/api/v1/menus/" + menuID + "/submenus/" + uuid.NewString() + "/dishes"
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dishes []any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&dishes))
	assert.Empty(t, dishes)
}

func TestCreateUnderMissingParent(t *testing.T) {
	srv := newTestServer(t)
	menuID := createMenu(t, srv.URL, "m")

	resp, body := doJSON(t, http.MethodPost,
		srv.URL+"/api/v1/menus/"+uuid.NewString()+"/submenus", `{"title": "orphan"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "menu not found", body["detail"])

	resp, body = doJSON(t, http.MethodPost,
		srv.URL+"/api/v1/menus/"+menuID+"/submenus/"+uuid.NewString()+"/dishes",
		`{"title": "orphan", "price": "1.00"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "submenu not found", body["detail"])
}

func TestValidationErrors(t *testing.T) {
	srv := newTestServer(t)
	menuID := createMenu(t, srv.URL, "m")
	submenuID := createSubmenu(t, srv.URL, menuID, "s")

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/menus", `{"description": "no title"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/v1/menus", `{"title": "x", "id": "not-a-uuid"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost,
		srv.URL+"/api/v1/menus/"+menuID+"/submenus/"+submenuID+"/dishes",
		`{"title": "x", "price": "abc"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/v1/menus/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCountsOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	menuID := createMenu(t, srv.URL, "m")
	submenuID := createSubmenu(t, srv.URL, menuID, "s")
	dishID := createDish(t, srv.URL, menuID, submenuID, "soup", "3.50")

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/v1/menus/"+menuID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["submenus_count"])
	assert.EqualValues(t, 1, body["dishes_count"])

	resp, body = doJSON(t, http.MethodGet,
		srv.URL+"/api/v1/menus/"+menuID+"/submenus/"+submenuID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["dishes_count"])

	resp, body = doJSON(t, http.MethodDelete,
		srv.URL+"/api/v1/menus/"+menuID+"/submenus/"+submenuID+"/dishes/"+dishID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Success.", body["message"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/v1/menus/"+menuID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["submenus_count"])
	assert.EqualValues(t, 0, body["dishes_count"])
}

func TestStatsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	createMenu(t, srv.URL, "m")

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/v1/stats", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, field := range []string{"hits", "misses", "errors", "purged"} {
		assert.Contains(t, body, field)
	}
}
