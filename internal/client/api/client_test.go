package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/splitbill/internal/client/storage"
	pkgapi "github.com/iudanet/splitbill/pkg/api"
)

// mockCredStore implements storage.CredStore for testing
type mockCredStore struct {
	identity *pkgapi.User
	token    string
	purged   int
	hasToken bool
}

func (m *mockCredStore) SaveToken(ctx context.Context, token string) error {
	m.token = token
	m.hasToken = true
	return nil
}

func (m *mockCredStore) Token(ctx context.Context) (string, error) {
	if !m.hasToken {
		return "", storage.ErrTokenNotFound
	}
	return m.token, nil
}

func (m *mockCredStore) SaveIdentity(ctx context.Context, user *pkgapi.User) error {
	u := *user
	m.identity = &u
	return nil
}

func (m *mockCredStore) Identity(ctx context.Context) (*pkgapi.User, error) {
	if m.identity == nil {
		return nil, storage.ErrIdentityNotFound
	}
	u := *m.identity
	return &u, nil
}

func (m *mockCredStore) Purge(ctx context.Context) error {
	m.token = ""
	m.hasToken = false
	m.identity = nil
	m.purged++
	return nil
}

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8000"
	client := NewClient(baseURL, &mockCredStore{})

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

// TestClient_BearerHeader проверяет подстановку bearer заголовка:
// с сохраненным токеном заголовок есть, без токена — отсутствует,
// и анонимный запрос все равно проходит
func TestClient_BearerHeader(t *testing.T) {
	var gotAuth string
	var gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		_ = json.NewEncoder(w).Encode([]pkgapi.Group{})
	}))
	defer server.Close()

	t.Run("with token", func(t *testing.T) {
		creds := &mockCredStore{token: "tok-123", hasToken: true}
		client := NewClient(server.URL, creds)

		_, err := client.ListGroups(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bearer tok-123", gotAuth)
		assert.NotEmpty(t, gotRequestID)
	})

	t.Run("without token", func(t *testing.T) {
		client := NewClient(server.URL, &mockCredStore{})

		_, err := client.ListGroups(context.Background())
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})
}

// TestClient_UnauthorizedPurge проверяет реакцию на 401: хранилище
// очищается и вызывается обработчик независимо от того, как вызывающий
// код обработает ошибку
func TestClient_UnauthorizedPurge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(pkgapi.ErrorResponse{Message: "token revoked"})
	}))
	defer server.Close()

	creds := &mockCredStore{
		token:    "stale-token",
		hasToken: true,
		identity: &pkgapi.User{ID: 1, Name: "Alice"},
	}

	client := NewClient(server.URL, creds)

	handlerCalls := 0
	client.SetUnauthorizedHandler(func() { handlerCalls++ })

	// Вызывающий код ошибку игнорирует — сброс все равно происходит
	_, err := client.ListGroups(context.Background())
	require.Error(t, err)

	assert.Equal(t, 1, creds.purged)
	assert.Equal(t, 1, handlerCalls)
	assert.False(t, creds.hasToken)
	assert.Nil(t, creds.identity)

	// Повторный 401 при уже пустом хранилище — идемпотентный no-op
	_, err = client.ListGroups(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, creds.purged)
	assert.Equal(t, 2, handlerCalls)

	assert.True(t, IsUnauthorized(err))
}

// TestClient_ErrorPayload проверяет, что не-401 ошибки доходят до
// вызывающего как есть: статус и тело без интерпретации
func TestClient_ErrorPayload(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
		status      int
	}{
		{
			name:        "message field",
			status:      http.StatusConflict,
			body:        `{"message": "group already exists"}`,
			wantMessage: "group already exists",
		},
		{
			name:        "detail field",
			status:      http.StatusUnprocessableEntity,
			body:        `{"detail": "invalid email"}`,
			wantMessage: "invalid email",
		},
		{
			name:        "non-json body",
			status:      http.StatusInternalServerError,
			body:        "Internal Server Error",
			wantMessage: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			creds := &mockCredStore{token: "tok", hasToken: true}
			client := NewClient(server.URL, creds)

			_, err := client.ListGroups(context.Background())
			require.Error(t, err)

			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Contains(t, apiErr.Body, tt.body)

			// Не-401 не трогает хранилище
			assert.Equal(t, 0, creds.purged)
		})
	}
}

// TestClient_ListExpenses_Filter проверяет, что фильтр по группе
// отправляется только для ненулевого id
func TestClient_ListExpenses_Filter(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/expenses", r.URL.Path)
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]pkgapi.Expense{})
	}))
	defer server.Close()

	client := NewClient(server.URL, &mockCredStore{token: "tok", hasToken: true})

	_, err := client.ListExpenses(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, gotQuery)

	_, err = client.ListExpenses(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "group_id=7", gotQuery)
}

// TestClient_Login проверяет анонимный запрос логина
func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var req pkgapi.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@b.com", req.Email)
		assert.Equal(t, "password1", req.Password)

		_ = json.NewEncoder(w).Encode(pkgapi.TokenResponse{
			AccessToken: "new-token",
			TokenType:   "bearer",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, &mockCredStore{})

	resp, err := client.Login(context.Background(), pkgapi.LoginRequest{
		Email:    "a@b.com",
		Password: "password1",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-token", resp.AccessToken)
}

// TestClient_GroupOperations проверяет пути и методы групповых операций
func TestClient_GroupOperations(t *testing.T) {
	type call struct {
		method string
		path   string
	}
	var calls []call

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{method: r.Method, path: r.URL.Path})

		switch {
		case r.URL.Path == "/groups" && r.Method == "POST":
			var req pkgapi.CreateGroupRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Trip", req.Name)
			_ = json.NewEncoder(w).Encode(pkgapi.Group{ID: 3, Name: "Trip"})
		case r.URL.Path == "/invitations":
			_ = json.NewEncoder(w).Encode([]pkgapi.Invitation{{ID: 5, GroupID: 3, Status: pkgapi.InvitationPending}})
		default:
			_ = json.NewEncoder(w).Encode(struct{}{})
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, &mockCredStore{token: "tok", hasToken: true})
	ctx := context.Background()

	group, err := client.CreateGroup(ctx, pkgapi.CreateGroupRequest{Name: "Trip"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), group.ID)

	require.NoError(t, client.SendInvitation(ctx, 3, "bob@example.com"))

	invitations, err := client.ListInvitations(ctx)
	require.NoError(t, err)
	require.Len(t, invitations, 1)
	assert.Equal(t, pkgapi.InvitationPending, invitations[0].Status)

	require.NoError(t, client.AcceptInvitation(ctx, 5))
	require.NoError(t, client.DeleteGroup(ctx, 3))

	want := []call{
		{"POST", "/groups"},
		{"POST", "/groups/3/invite"},
		{"GET", "/invitations"},
		{"POST", "/invitations/5/accept"},
		{"DELETE", "/groups/3"},
	}
	assert.Equal(t, want, calls)
}
