package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/zametka/pkg/api"
)

// ErrUnauthorized indicates that the server rejected the access token.
// The auth boundary reacts to it by clearing stored credentials; for the
// sync engine it is just another failed call that leaves operations queued.
var ErrUnauthorized = errors.New("unauthorized")

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Refresh обновляет пару токенов по refresh token
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	req := api.RefreshTokenRequest{RefreshToken: refreshToken}
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/refresh", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// Logout инвалидирует refresh tokens на сервере
func (c *Client) Logout(ctx context.Context, accessToken string) error {
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/logout", accessToken, nil, nil)
	if err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// ListNotes получает полный список заметок пользователя.
// Сервер отдаёт страницы; клиент запрашивает одну большую страницу —
// так же делает оригинальный pull.
func (c *Client) ListNotes(ctx context.Context, accessToken string, page, size int) ([]api.Note, error) {
	var resp api.NoteListResponse
	path := fmt.Sprintf("/api/v1/notes?page=%d&size=%d", page, size)
	err := c.doRequest(ctx, http.MethodGet, path, accessToken, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list notes request failed: %w", err)
	}
	return resp.Content, nil
}

// GetNote получает одну заметку по id
func (c *Client) GetNote(ctx context.Context, accessToken string, id int64) (*api.Note, error) {
	var resp api.Note
	path := fmt.Sprintf("/api/v1/notes/%d", id)
	err := c.doRequest(ctx, http.MethodGet, path, accessToken, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get note request failed: %w", err)
	}
	return &resp, nil
}

// CreateNote создает заметку на сервере
func (c *Client) CreateNote(ctx context.Context, accessToken string, req api.CreateNoteRequest) (*api.Note, error) {
	var resp api.Note
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/notes", accessToken, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("create note request failed: %w", err)
	}
	return &resp, nil
}

// UpdateNote частично обновляет заметку на сервере
func (c *Client) UpdateNote(ctx context.Context, accessToken string, id int64, req api.UpdateNoteRequest) (*api.Note, error) {
	var resp api.Note
	path := fmt.Sprintf("/api/v1/notes/%d", id)
	err := c.doRequest(ctx, http.MethodPut, path, accessToken, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("update note request failed: %w", err)
	}
	return &resp, nil
}

// DeleteNote удаляет заметку на сервере
func (c *Client) DeleteNote(ctx context.Context, accessToken string, id int64) error {
	path := fmt.Sprintf("/api/v1/notes/%d", id)
	err := c.doRequest(ctx, http.MethodDelete, path, accessToken, nil, nil)
	if err != nil {
		return fmt.Errorf("delete note request failed: %w", err)
	}
	return nil
}

// ShareNote выдает доступ к заметке пользователю по email
func (c *Client) ShareNote(ctx context.Context, accessToken string, noteID int64, email string) (*api.Share, error) {
	var resp api.Share
	path := fmt.Sprintf("/api/v1/notes/%d/share/user", noteID)
	req := api.ShareWithUserRequest{Email: email}
	err := c.doRequest(ctx, http.MethodPost, path, accessToken, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("share note request failed: %w", err)
	}
	return &resp, nil
}

// CreatePublicLink создает публичную ссылку на заметку
func (c *Client) CreatePublicLink(ctx context.Context, accessToken string, noteID int64) (*api.PublicLink, error) {
	var resp api.PublicLink
	path := fmt.Sprintf("/api/v1/notes/%d/share/public", noteID)
	err := c.doRequest(ctx, http.MethodPost, path, accessToken, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("create public link request failed: %w", err)
	}
	return &resp, nil
}

// RevokePublicLink отзывает публичную ссылку
func (c *Client) RevokePublicLink(ctx context.Context, accessToken string, linkID int64) error {
	path := fmt.Sprintf("/api/v1/public-links/%d", linkID)
	err := c.doRequest(ctx, http.MethodDelete, path, accessToken, nil, nil)
	if err != nil {
		return fmt.Errorf("revoke public link request failed: %w", err)
	}
	return nil
}

// GetPublicNote получает заметку по публичному токену (без авторизации)
func (c *Client) GetPublicNote(ctx context.Context, token string) (*api.Note, error) {
	var resp api.Note
	path := "/api/v1/public/notes/" + url.PathEscape(token)
	err := c.doRequest(ctx, http.MethodGet, path, "", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get public note request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
