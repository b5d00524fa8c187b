package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// State is the lifecycle position of the session manager.
type State int

const (
	// StateAnonymous means no tokens are held.
	StateAnonymous State = iota
	// StateAuthenticated means an access token is held and attached to
	// outbound requests.
	StateAuthenticated
	// StateRefreshing means a 401 was observed and a refresh is in flight.
	StateRefreshing
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	case StateRefreshing:
		return "refreshing"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

var (
	// ErrNotAuthenticated is returned by operations that need a session
	// while none is held.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrSessionExpired means the refresh token was missing or rejected;
	// all session state has been cleared and the user must log in again.
	ErrSessionExpired = errors.New("session expired, log in again")
)

// User is the backend user record attached to a session.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Manager owns the token pair: it logs in, attaches bearer tokens to
// outbound requests, transparently refreshes on 401 and tears the session
// down when refresh is no longer possible. It is the single writer of the
// persisted session; everything else only reads tokens through Do.
type Manager struct {
	baseURL string
	httpc   *http.Client
	store   *Store
	log     *zap.Logger

	mu      sync.RWMutex
	state   State
	current Session

	refreshGroup singleflight.Group
}

// NewManager creates a session manager for the API at baseURL (including
// the /api prefix) and restores any session persisted in the store.
func NewManager(baseURL string, httpc *http.Client, store *Store, log *zap.Logger) (*Manager, error) {
	if httpc == nil {
		httpc = &http.Client{Timeout: 30 * time.Second}
	}
	m := &Manager{
		baseURL: baseURL,
		httpc:   httpc,
		store:   store,
		log:     log,
		state:   StateAnonymous,
	}

	sess, ok, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if ok && sess.AccessToken != "" {
		m.current = sess
		m.state = StateAuthenticated
		log.Debug("session restored from state database")
	}
	return m, nil
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// AccessToken returns the held access token, if any.
func (m *Manager) AccessToken() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current.AccessToken, m.current.AccessToken != ""
}

// CachedUser returns the user record persisted at login, if any.
func (m *Manager) CachedUser() (*User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.current.User) == 0 {
		return nil, false
	}
	var u User
	if err := json.Unmarshal(m.current.User, &u); err != nil {
		return nil, false
	}
	return &u, true
}

// TokenExpiry reports the expiry claim of the held access token. The token
// is decoded without signature verification; the backend remains the
// authority, this is for display and logging only.
func (m *Manager) TokenExpiry() (time.Time, bool) {
	token, ok := m.AccessToken()
	if !ok {
		return time.Time{}, false
	}
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

type loginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type logoutRequest struct {
	RefreshToken string `json:"refreshToken,omitempty"`
}

type tokenResponse struct {
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	User         json.RawMessage `json:"user"`
}

// Login authenticates against POST /auth/login, persists the returned
// token pair and user record, and transitions to Authenticated.
func (m *Manager) Login(ctx context.Context, usernameOrEmail, password string) (*User, error) {
	var resp tokenResponse
	err := m.postJSON(ctx, "/auth/login", loginRequest{
		UsernameOrEmail: usernameOrEmail,
		Password:        password,
	}, "", &resp)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if resp.AccessToken == "" {
		return nil, errors.New("login: response carried no access token")
	}

	sess := Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		User:         resp.User,
	}
	if err := m.store.Save(sess); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	m.mu.Lock()
	m.current = sess
	m.state = StateAuthenticated
	m.mu.Unlock()

	var u User
	if len(resp.User) > 0 {
		if err := json.Unmarshal(resp.User, &u); err != nil {
			return nil, fmt.Errorf("login: decode user record: %w", err)
		}
	}
	m.log.Info("logged in", zap.String("user", u.Username))
	return &u, nil
}

// Logout notifies the backend (best effort, a failed call never blocks
// teardown) and unconditionally clears all persisted session state.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.RLock()
	token := m.current.AccessToken
	refresh := m.current.RefreshToken
	m.mu.RUnlock()

	if token != "" {
		if err := m.postJSON(ctx, "/auth/logout", logoutRequest{RefreshToken: refresh}, token, nil); err != nil {
			m.log.Warn("logout notification failed, clearing session anyway", zap.Error(err))
		}
	}

	return m.teardown()
}

// CurrentUser fetches the authoritative user record from GET /auth/me.
// The call goes through Do, so an expired access token is refreshed on the
// way.
func (m *Manager) CurrentUser(ctx context.Context) (*User, error) {
	if _, ok := m.AccessToken(); !ok {
		return nil, ErrNotAuthenticated
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"/auth/me", nil)
	if err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := m.Do(req)
	if err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrSessionExpired
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("current user: unexpected status %d", resp.StatusCode)
	}

	var u User
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("current user: decode response: %w", err)
	}
	return &u, nil
}

// Do sends the request with the bearer token attached. On a 401 it runs a
// single refresh (coalesced across concurrent callers) and replays the
// original request exactly once with the new token; a second 401 is
// returned to the caller untouched. If no refresh token is held or the
// refresh fails, the session is torn down and the original 401 response is
// returned; callers observe the invalidation through State.
func (m *Manager) Do(req *http.Request) (*http.Response, error) {
	token, authenticated := m.AccessToken()
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := m.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized || !authenticated {
		return resp, nil
	}

	newToken, refreshErr := m.refreshTokens(req.Context())
	if refreshErr != nil {
		m.log.Warn("token refresh failed", zap.Error(refreshErr))
		return resp, nil
	}

	retry, ok := cloneForRetry(req)
	if !ok {
		// Body cannot be replayed; the caller gets the original 401.
		return resp, nil
	}
	drain(resp)

	retry.Header.Set("Authorization", "Bearer "+newToken)
	m.log.Debug("replaying request after refresh",
		zap.String("method", retry.Method),
		zap.String("path", retry.URL.Path))
	return m.httpc.Do(retry)
}

// refreshTokens exchanges the refresh token for a new access token.
// Concurrent callers share a single in-flight refresh so a burst of 401s
// cannot cause a refresh storm.
func (m *Manager) refreshTokens(ctx context.Context) (string, error) {
	v, err, _ := m.refreshGroup.Do("refresh", func() (any, error) {
		m.mu.Lock()
		refresh := m.current.RefreshToken
		m.state = StateRefreshing
		m.mu.Unlock()

		if refresh == "" {
			if terr := m.teardown(); terr != nil {
				return "", terr
			}
			return "", ErrSessionExpired
		}

		var resp tokenResponse
		if err := m.postJSON(ctx, "/auth/refresh-token", refreshRequest{RefreshToken: refresh}, "", &resp); err != nil {
			if terr := m.teardown(); terr != nil {
				return "", terr
			}
			return "", fmt.Errorf("%w: %s", ErrSessionExpired, err)
		}

		m.mu.Lock()
		m.current.AccessToken = resp.AccessToken
		if resp.RefreshToken != "" {
			// Rotated refresh token.
			m.current.RefreshToken = resp.RefreshToken
		}
		sess := m.current
		m.state = StateAuthenticated
		m.mu.Unlock()

		if err := m.store.Save(sess); err != nil {
			return "", err
		}
		m.log.Debug("access token refreshed")
		return resp.AccessToken, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// teardown clears memory and durable state and transitions to Anonymous.
func (m *Manager) teardown() error {
	m.mu.Lock()
	m.current = Session{}
	m.state = StateAnonymous
	m.mu.Unlock()

	if err := m.store.Clear(); err != nil {
		return err
	}
	m.log.Info("session cleared")
	return nil
}

// postJSON posts to an auth endpoint directly, bypassing Do so auth calls
// themselves are never refresh-retried.
func (m *Manager) postJSON(ctx context.Context, path string, payload any, bearer string, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := m.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func cloneForRetry(req *http.Request) (*http.Request, bool) {
	retry := req.Clone(req.Context())
	if req.Body == nil {
		return retry, true
	}
	if req.GetBody == nil {
		return nil, false
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, false
	}
	retry.Body = body
	return retry, true
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
