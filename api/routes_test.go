package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/pmtrec/portofolio/database"
	"github.com/pmtrec/portofolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := map[string]string{
		"ADMIN_ID":           "pmtrec2024",
		"ADMIN_TOKEN_SECRET": "test-signing-key",
		"UPLOAD_DIR":         t.TempDir(),
	}

	db := database.New(database.NewMemorySlotStore())
	router := newRouter(db, withConfig(cfg), withStartupTime(time.Now()))

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

func adminToken(t *testing.T, server *httptest.Server) string {
	t.Helper()

	resp, body := doJSON(t, http.MethodPost, server.URL+"/admin/login", "", map[string]string{"adminId": "pmtrec2024"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body, &decoded))
	require.NotEmpty(t, decoded.Token)
	return decoded.Token
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"ok"`)
}

func TestGetProjectsReturnsBuiltinsAndCounts(t *testing.T) {
	server := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/projects", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var collection ProjectCollection
	require.NoError(t, json.Unmarshal(body, &collection))
	assert.NotEmpty(t, collection.Projects)
	assert.Equal(t, len(collection.Projects), collection.Total)
	for _, cat := range models.Categories() {
		_, present := collection.Counts[cat]
		assert.True(t, present, "counts missing category %q", cat)
	}
}

func TestGetProjectsRejectsUnknownCategory(t *testing.T) {
	server := newTestServer(t)

	resp, _ := doJSON(t, http.MethodGet, server.URL+"/projects?category=embedded", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdminLoginRejectsWrongSecret(t *testing.T) {
	server := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, server.URL+"/admin/login", "", map[string]string{"adminId": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(body), "adminId")
}

func TestMutationsRequireAdminToken(t *testing.T) {
	server := newTestServer(t)

	project := models.Project{Title: "X", Category: models.CategoryBackend}

	resp, _ := doJSON(t, http.MethodPost, server.URL+"/project", "", project)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, server.URL+"/project", "garbage-token", project)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProjectLifecycleOverHTTP(t *testing.T) {
	server := newTestServer(t)
	token := adminToken(t, server)

	// Create
	resp, body := doJSON(t, http.MethodPost, server.URL+"/project", token, models.Project{
		Title:    "Nouveau projet",
		Category: models.CategoryFullstack,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Project
	require.NoError(t, json.Unmarshal(body, &created))
	require.NotZero(t, created.ID)
	idPath := server.URL + "/project/" + strconv.FormatInt(created.ID, 10)

	// Update
	created.Description = "mise à jour"
	resp, body = doJSON(t, http.MethodPut, idPath, token, created)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Project
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, "mise à jour", updated.Description)

	// Delete
	resp, _ = doJSON(t, http.MethodDelete, idPath, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Deleting again reports not-found
	resp, _ = doJSON(t, http.MethodDelete, idPath, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateProjectValidatesBody(t *testing.T) {
	server := newTestServer(t)
	token := adminToken(t, server)

	resp, _ := doJSON(t, http.MethodPost, server.URL+"/project", token, models.Project{Category: models.CategoryBackend})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, server.URL+"/project", token, models.Project{Title: "X", Category: "embedded"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChatMessageAnswersGreeting(t *testing.T) {
	server := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, server.URL+"/chat/message", "", map[string]string{"message": "Bonjour"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "assistant virtuel")

	resp, body = doJSON(t, http.MethodGet, server.URL+"/chat/history", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var history ChatHistory
	require.NoError(t, json.Unmarshal(body, &history))
	require.Equal(t, 2, history.Total)
	assert.True(t, history.Messages[0].IsUser)
	assert.False(t, history.Messages[1].IsUser)
}

func TestChatMessageRequiresText(t *testing.T) {
	server := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, server.URL+"/chat/message", "", map[string]string{"message": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestContactRequiresCoreFields(t *testing.T) {
	server := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, server.URL+"/contact", "", map[string]string{
		"name":  "Awa",
		"email": "awa@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
