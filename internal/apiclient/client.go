// Package apiclient — HTTP-клиент удалённого API каталога.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Gunvolt24/medcatalog/internal/ports"
	"github.com/Gunvolt24/medcatalog/pkg/ctxmeta"
	"github.com/Gunvolt24/medcatalog/pkg/httpx"
	"github.com/Gunvolt24/medcatalog/pkg/metrics"
)

var _ ports.CatalogAPI = (*Client)(nil)

const (
	DefaultBaseURL = "http://localhost:5000/api"
	DefaultTimeout = 10 * time.Second

	healthPath   = "/health"
	maxBodyBytes = 32 << 20
)

// ProbeMode — когда выполнять проверку живости перед запросом.
type ProbeMode string

const (
	ProbeGET ProbeMode = "get" // только перед GET
	ProbeAll ProbeMode = "all"
	ProbeOff ProbeMode = "off"
)

// ParseProbeMode — разбор значения из конфига; пустая строка — ProbeGET.
func ParseProbeMode(s string) (ProbeMode, error) {
	switch m := ProbeMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ProbeGET, nil
	case ProbeGET, ProbeAll, ProbeOff:
		return m, nil
	default:
		return "", fmt.Errorf("unknown probe mode %q", s)
	}
}

// Config — параметры клиента.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Probe   ProbeMode
	Traced  bool // оборачивать транспорт в otelhttp
}

// Client — реализация ports.CatalogAPI поверх net/http.
type Client struct {
	baseURL string
	timeout time.Duration
	probe   ProbeMode
	http    *http.Client
	creds   ports.CredentialSource
	log     ports.Logger
}

// Option — дополнительная настройка клиента.
type Option func(*Client)

// WithHTTPClient — собственный http.Client (тесты, кастомный транспорт).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// New — конструктор клиента. creds == nil означает запросы без авторизации.
func New(cfg Config, creds ports.CredentialSource, log ports.Logger, opts ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		return nil, fmt.Errorf("apiclient: base url must be http(s): %q", cfg.BaseURL)
	}
	probe := cfg.Probe
	if probe == "" {
		probe = ProbeGET
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var transport http.RoundTripper = http.DefaultTransport
	if cfg.Traced {
		transport = otelhttp.NewTransport(transport)
	}

	c := &Client{
		baseURL: base,
		timeout: timeout,
		probe:   probe,
		http:    &http.Client{Transport: transport},
		creds:   creds,
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL — нормализованный базовый адрес.
func (c *Client) BaseURL() string { return c.baseURL }

// Request — выполняет запрос и возвращает тело 2xx-ответа как есть (пустое тело — nil).
func (c *Client) Request(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	method = strings.ToUpper(method)
	start := time.Now()

	if c.shouldProbe(method) {
		if err := c.ping(ctx); err != nil {
			c.observe(ctx, method, path, "unavailable", start)
			return nil, fmt.Errorf("%w: %v", ErrServerUnavailable, err)
		}
	}

	raw, status, err := c.do(ctx, method, path, body)
	label := strconv.Itoa(status)
	var netErr *NetworkError
	switch {
	case errors.As(err, &netErr):
		label = "network"
	case status == 0:
		label = "error"
	}
	c.observe(ctx, method, path, label, start)
	return raw, err
}

func (c *Client) shouldProbe(method string) bool {
	switch c.probe {
	case ProbeAll:
		return true
	case ProbeOff:
		return false
	default:
		return method == http.MethodGet
	}
}

// ping — GET /health; любая ошибка транспорта или не-2xx считается недоступностью.
func (c *Client) ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, http.NoBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("health status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader = http.NoBody
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("apiclient: encode body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return nil, 0, fmt.Errorf("apiclient: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.creds != nil {
		if tok, ok := c.creds.Token(ctx); ok {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		req.Header.Set(httpx.HeaderRequestID, rid)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, &NetworkError{Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, &NetworkError{Cause: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, &TransportError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, raw)}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, resp.StatusCode, nil
	}
	return json.RawMessage(raw), resp.StatusCode, nil
}

func (c *Client) url(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

func (c *Client) observe(ctx context.Context, method, path, status string, start time.Time) {
	elapsed := time.Since(start)
	metrics.APIClientRequests.WithLabelValues(method, status).Inc()
	metrics.APIClientDuration.WithLabelValues(method).Observe(elapsed.Seconds())
	if c.log != nil {
		c.log.Infof(ctx, "api %s %s -> %s (%s)", method, path, status, elapsed)
	}
}

// errorMessage — поле error (или message) JSON-тела ошибки, иначе "<code> <status text>".
func errorMessage(status int, raw []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &body) == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return fmt.Sprintf("%d %s", status, http.StatusText(status))
}
