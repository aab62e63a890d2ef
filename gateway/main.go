package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	configs "github.com/shuffll/cli/configs"
	"github.com/shuffll/cli/constants"
	"github.com/shuffll/cli/node"
	"github.com/sirupsen/logrus"
)

// Credentials supplies the API key at request time.
type Credentials interface {
	APIKey() (string, error)
}

// StaticKey is a fixed API key, e.g. one that is being validated before it
// gets stored.
type StaticKey string

func (k StaticKey) APIKey() (string, error) {
	return string(k), nil
}

type Gateway struct {
	creds      Credentials
	baseURL    string
	httpClient *http.Client
	log        logrus.FieldLogger
}

var _ node.Client = (*Gateway)(nil)

type Option func(*Gateway)

func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) { g.httpClient = c }
}

func WithBaseURL(url string) Option {
	return func(g *Gateway) { g.baseURL = strings.TrimRight(url, "/") }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(g *Gateway) { g.log = log }
}

func GetHost(cfg *configs.Configs) string {
	if cfg != nil && cfg.ShuffllApiURL != "" {
		return strings.TrimRight(cfg.ShuffllApiURL, "/")
	}
	if configs.IsDevMode() {
		return constants.LocalhostAPIURL
	}
	return constants.ShuffllAPIURL
}

// New builds a gateway sending creds' key. The base URL follows the
// environment unless WithBaseURL is given.
func New(creds Credentials, opts ...Option) *Gateway {
	var cfg *configs.Configs
	if c, ok := creds.(*configs.Configs); ok {
		cfg = c
	}

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	g := &Gateway{
		creds:   creds,
		baseURL: GetHost(cfg),
		httpClient: &http.Client{
			Timeout: time.Second * 30,
		},
		log: quiet,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

func (g *Gateway) authorize(header http.Header) error {
	key, err := g.creds.APIKey()
	if err != nil {
		return err
	}
	header.Set(node.APIKeyHeader, key)
	return nil
}

// APIError is a non-2xx answer from the API. Its message is the API's own
// when the body carries one.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Body: body}

	var payload struct {
		Message interface{} `json:"message"`
		Error   interface{} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		if text := strings.TrimSpace(string(body)); text != "" && len(text) < 512 && !strings.HasPrefix(text, "<") {
			apiErr.Message = text
		}
		return apiErr
	}

	for _, v := range []interface{}{payload.Message, payload.Error} {
		switch m := v.(type) {
		case string:
			if m != "" {
				apiErr.Message = m
				return apiErr
			}
		case []interface{}:
			parts := make([]string, 0, len(m))
			for _, p := range m {
				parts = append(parts, fmt.Sprint(p))
			}
			if len(parts) > 0 {
				apiErr.Message = strings.Join(parts, "; ")
				return apiErr
			}
		}
	}
	return apiErr
}

// IsUnauthorized reports whether err is the API refusing the key.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
	}
	return false
}

// do sends one authenticated request. body is encoded as JSON when non-nil;
// the response is decoded into out when out is non-nil and the body isn't empty.
func (g *Gateway) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return errors.Wrap(err, "encode body")
		}
		reader = &buf
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return err
	}
	if err := g.authorize(req.Header); err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", fmt.Sprintf("shuffll-cli/%s", constants.Version))

	log := g.log.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
	})
	log.Debug("request")

	res, err := g.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer res.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, res.Body); err != nil {
		return errors.Wrap(err, "read response")
	}

	log.WithField("status", res.StatusCode).Debug("response")

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return newAPIError(res.StatusCode, buf.Bytes())
	}

	if out == nil || len(bytes.TrimSpace(buf.Bytes())) == 0 {
		return nil
	}

	dec := json.NewDecoder(&buf)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return errors.Wrap(err, "decoding response")
	}
	return nil
}

func segment(id string) string {
	return url.PathEscape(id)
}
