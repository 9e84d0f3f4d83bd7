package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github/itish2003/companion/controller"
	"github/itish2003/companion/models"
	"github/itish2003/companion/services"
)

const (
	gratitudeText = "You're very welcome! I'm always here when you need someone to talk to. Remember, you can store important information anytime using the menu button above."
	familyText    = "I can see you've shared some family information with me before. Family is so important. Would you like to tell me more about them, or shall I help you remember what you've shared?"
)

var fixedNow = time.Date(2025, 1, 2, 3, 4, 5, 678000000, time.UTC)

type firstSource struct{}

func (firstSource) IntN(int) int { return 0 }

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	log := zap.NewNop()
	now := func() time.Time { return fixedNow }
	store := services.NewMemoryNoteStore(services.WithClock(now))
	engine := services.NewResponseEngine(firstSource{})

	c := controller.NewCompanionController(
		services.NewAuthService(now, log),
		services.NewNotesService(store, log),
		services.NewChatService(store, engine, now, log),
		log,
	)
	return controller.NewRouter(c, controller.RouterConfig{AllowOrigin: "http://localhost:3000"}, log)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body=%s", w.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]string](t, w)
	assert.Equal(t, "healthy", body["status"])
}

func TestLogin(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodPost, "/api/login", `{"username":"Pat "}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[models.LoginResponse](t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Pat", resp.UserData.Username)
	assert.Equal(t, "2025-01-02T03:04:05.678Z", resp.UserData.LoginTime)
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		body    string
		message string
	}{
		{"login missing username", "/api/login", `{}`, "Username is required"},
		{"login blank username", "/api/login", `{"username":"   "}`, "Username is required"},
		{"login null username", "/api/login", `{"username":null}`, "Username is required"},
		{"login wrong type", "/api/login", `{"username":42}`, "Username is required"},
		{"store missing both", "/api/store-info", `{}`, "Username is required"},
		{"store missing info", "/api/store-info", `{"username":"alice"}`, "Information is required"},
		{"store blank info", "/api/store-info", `{"username":"alice","info":" \n "}`, "Information is required"},
		{"store wrong type info", "/api/store-info", `{"username":"alice","info":["a"]}`, "Information is required"},
		{"chat missing both", "/api/chatbot", `{}`, "Message is required"},
		{"chat blank message", "/api/chatbot", `{"message":"  ","username":"alice"}`, "Message is required"},
		{"chat missing username", "/api/chatbot", `{"message":"hello"}`, "Username is required"},
	}

	router := newTestRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, http.MethodPost, tt.path, tt.body)

			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			resp := decode[models.ErrorResponse](t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.message, resp.Error)
		})
	}
}

func TestMalformedBodyIsServerError(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/api/login", "/api/store-info", "/api/chatbot"} {
		w := do(t, router, http.MethodPost, path, `{"username":`)

		require.Equal(t, http.StatusInternalServerError, w.Code, path)
		resp := decode[models.ErrorResponse](t, w)
		assert.False(t, resp.Success)
		assert.Equal(t, "Internal server error", resp.Error)
	}
}

func TestStoreAndListInfo(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/api/store-info", `{"username":" alice","info":"Doctor on Monday "}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	stored := decode[models.StoreInfoResponse](t, w)
	assert.True(t, stored.Success)
	assert.Equal(t, "Information stored successfully", stored.Message)
	assert.NotEmpty(t, stored.EntryID)
	assert.Equal(t, "2025-01-02T03:04:05.678Z", stored.Timestamp)

	w = do(t, router, http.MethodGet, "/api/store-info?username=alice", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	list := decode[models.GetStoredInfoResponse](t, w)
	assert.True(t, list.Success)
	assert.Equal(t, 1, list.Count)
	require.Len(t, list.Data, 1)
	assert.Equal(t, stored.EntryID, list.Data[0].ID)
	assert.Equal(t, "Doctor on Monday", list.Data[0].Info)
}

func TestListUnknownUser(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/api/store-info?username=bob", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[],"count":0}`, w.Body.String())
}

func TestListRequiresUsername(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/api/store-info", "/api/store-info?username=%20%20"} {
		w := do(t, router, http.MethodGet, path, "")

		require.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.JSONEq(t, `{"success":false,"error":"Username is required"}`, w.Body.String())
	}
}

func TestChatEndToEnd(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/api/login", `{"username":"Pat "}`)
	require.Equal(t, http.StatusOK, w.Code)
	username := decode[models.LoginResponse](t, w).UserData.Username
	require.Equal(t, "Pat", username)

	w = do(t, router, http.MethodPost, "/api/chatbot", `{"message":"Thank you","username":"Pat"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	reply := decode[models.ChatResponse](t, w)
	assert.True(t, reply.Success)
	assert.Equal(t, gratitudeText, reply.Response)
	assert.False(t, reply.HasStoredInfo)
	assert.Equal(t, "2025-01-02T03:04:05.678Z", reply.Timestamp)

	w = do(t, router, http.MethodPost, "/api/store-info", `{"username":"Pat","info":"My son Max turns 10"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, router, http.MethodPost, "/api/chatbot", `{"message":"tell me about my family","username":"Pat"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	reply = decode[models.ChatResponse](t, w)
	assert.Equal(t, familyText, reply.Response)
	assert.True(t, reply.HasStoredInfo)
}

func TestChatKeepsUsersApart(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/api/store-info", `{"username":"alice","info":"My daughter lives nearby"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodPost, "/api/chatbot", `{"message":"hello","username":"bob"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[models.ChatResponse](t, w).HasStoredInfo)
}

func TestCORSAndRequestID(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodOptions, "/api/chatbot", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))

	rec = do(t, router, http.MethodGet, "/health", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestUnknownRoute(t *testing.T) {
	w := do(t, newTestRouter(t), http.MethodGet, "/api/nope", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Not found"}`, w.Body.String())
}
