package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/ytget/android-template-generator/internal/logging"
	"github.com/ytget/android-template-generator/internal/model"
)

// Messages attached to client-side failures
const (
	MsgNetwork    = "Network error: Unable to connect to the template generation service. Please check your internet connection and try again."
	MsgEmptyFile  = "Received empty file from server"
	MsgStatusFmt  = "Request failed with status %d"
	MsgUnexpected = "Unexpected error: %s"
)

// maxErrorBodyKB bounds how much of a non-2xx body is read
const maxErrorBodyKB = 64

// Generator produces an archive for a tier
type Generator interface {
	Generate(ctx context.Context, tier model.Tier, req model.GenerationRequest) (*model.GenerationResult, error)
}

// Client is the HTTP implementation of Generator. It sets no timeout of its own.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logrus.FieldLogger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a client for the service at baseURL
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logging.StdLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the service origin
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Endpoint returns the generation URL of a tier
func (c *Client) Endpoint(tier model.Tier) string {
	return fmt.Sprintf("%s/api/templates/%s/generate", c.baseURL, tier)
}

// Generate posts req and returns the generated archive
func (c *Client) Generate(ctx context.Context, tier model.Tier, req model.GenerationRequest) (*model.GenerationResult, error) {
	log := logging.FromContext(ctx, c.logger).WithField(logging.FieldTier, tier)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, unexpected(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(tier), bytes.NewReader(body))
	if err != nil {
		return nil, unexpected(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/octet-stream")

	log.WithField("url", httpReq.URL.String()).Debug("Sending generation request")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.WithError(err).Warn("Generation request failed")
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	log = log.WithField(logging.FieldStatus, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := serverMessage(resp)
		log.WithField("message", message).Warn("Generation service returned an error")
		return nil, model.NewGenerationError(model.KindServer, resp.StatusCode, message)
	}

	filename := ResolveFilename(resp.Header.Get("Content-Disposition"), req.ProjectName)

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		log.WithError(err).Warn("Failed to read generated archive")
		return nil, classifyTransportError(err)
	}
	if len(payload) == 0 {
		return nil, model.NewGenerationError(model.KindInvalidBlob, resp.StatusCode, MsgEmptyFile)
	}

	log.WithFields(logrus.Fields{
		"filename": filename,
		"size":     len(payload),
	}).Info("Template generated")

	return &model.GenerationResult{
		Payload:     payload,
		Filename:    filename,
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}, nil
}

// serverMessage picks message, then error, then the raw body text
func serverMessage(resp *http.Response) string {
	fallback := fmt.Sprintf(MsgStatusFmt, resp.StatusCode)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyKB<<10))
	if err != nil || len(raw) == 0 {
		return fallback
	}
	text := string(raw)

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return text
	}
	for _, key := range []string{"message", "error"} {
		if value, ok := scalarText(payload[key]); ok {
			return value
		}
	}
	return text
}

// scalarText formats a truthy JSON scalar; objects, arrays, false, 0 and ""
// do not count as a message
func scalarText(v any) (string, bool) {
	switch value := v.(type) {
	case string:
		return value, value != ""
	case float64:
		return fmt.Sprint(value), value != 0
	case bool:
		return "true", value
	default:
		return "", false
	}
}

// classifyTransportError maps connection-level failures to KindNetwork and
// everything else, including cancellation, to KindUnknown
func classifyTransportError(err error) *model.GenerationError {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return unexpected(err)
	}

	// http.Client wraps every failure in *url.Error, which is itself a net.Error
	cause := err
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		cause = urlErr.Err
	}
	if isConnectionFailure(cause) {
		return model.WrapGenerationError(model.KindNetwork, MsgNetwork, err)
	}
	return unexpected(err)
}

// isConnectionFailure reports dial, DNS, reset and timeout failures
func isConnectionFailure(err error) bool {
	var opErr *net.OpError
	var dnsErr *net.DNSError
	if errors.As(err, &opErr) || errors.As(err, &dnsErr) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func unexpected(err error) *model.GenerationError {
	return model.WrapGenerationError(model.KindUnknown, fmt.Sprintf(MsgUnexpected, err.Error()), err)
}
