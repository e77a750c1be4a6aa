package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-travel-diary/internal/logger"
	"github.com/MKhiriev/go-travel-diary/models"
	"github.com/go-resty/resty/v2"
)

const defaultRequestTimeout = 15 * time.Second

// Config locates the server.
type Config struct {
	// HTTPAddress is host:port or a full base URL.
	HTTPAddress    string
	RequestTimeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// It normalises cfg.HTTPAddress into a base URL; an empty or unparsable
// address is an error.
func NewHTTPServerAdapter(cfg Config, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Health(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/")
	if err != nil {
		return "", fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (string, error) {
	var tokenResp models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&tokenResp).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if tokenResp.Token == "" {
		return "", fmt.Errorf("login: empty token in response")
	}

	h.SetToken(tokenResp.Token)
	h.logger.Debug().Str("username", user.Username).Msg("logged in")
	return tokenResp.Token, nil
}

func (h *httpServerAdapter) ListDiaryEntries(ctx context.Context) ([]models.DiaryEntry, error) {
	var entries []models.DiaryEntry

	resp, err := h.authedRequest(ctx).SetResult(&entries).Get("/diary-entries")
	if err != nil {
		return nil, fmt.Errorf("list diary entries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []models.DiaryEntry{}
	}
	return entries, nil
}

func (h *httpServerAdapter) GetDiaryEntry(ctx context.Context, id string) (models.DiaryEntry, error) {
	var entry models.DiaryEntry

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&entry).
		Get("/diary-entries/{id}")
	if err != nil {
		return models.DiaryEntry{}, fmt.Errorf("get diary entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DiaryEntry{}, err
	}

	return entry, nil
}

func (h *httpServerAdapter) CreateDiaryEntry(ctx context.Context, input models.DiaryEntryInput) (models.DiaryEntry, error) {
	var entry models.DiaryEntry

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&entry).
		Post("/diary-entries")
	if err != nil {
		return models.DiaryEntry{}, fmt.Errorf("create diary entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DiaryEntry{}, err
	}

	return entry, nil
}

func (h *httpServerAdapter) ReplaceDiaryEntry(ctx context.Context, id string, input models.DiaryEntryInput) (models.DiaryEntry, error) {
	var entry models.DiaryEntry

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(input).
		SetResult(&entry).
		Put("/diary-entries/{id}")
	if err != nil {
		return models.DiaryEntry{}, fmt.Errorf("replace diary entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DiaryEntry{}, err
	}

	return entry, nil
}

func (h *httpServerAdapter) DeleteDiaryEntry(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/diary-entries/{id}")
	if err != nil {
		return fmt.Errorf("delete diary entry request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
