// Package identity obtains and caches the pseudo-anonymous client
// identifier that scopes likes to one browser/device.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/swapspot/swapspot/internal/client/clientstorage"
)

// StorageKey is the local storage key holding the cached client identifier.
const StorageKey = "swapspot_clientId"

const maxErrorBodyPreview = 100

// Each response-validation failure is distinguishable so callers can tell a
// dead endpoint from a misbehaving one. A plain transport error (request
// never completed) is returned unwrapped.
var (
	ErrBadStatus     = errors.New("client session endpoint returned non-success status")
	ErrNotJSON       = errors.New("client session endpoint returned non-JSON response")
	ErrEmptyBody     = errors.New("client session endpoint returned empty response")
	ErrMalformedJSON = errors.New("client session endpoint returned invalid JSON")
	ErrMissingField  = errors.New("client session endpoint did not return a clientId")
)

// StoredIdentity reads the locally cached identifier. Absent or unavailable
// storage yields ("", false); it never fails.
func StoredIdentity(storage clientstorage.Storage) (string, bool) {
	id, ok := storage.Get(StorageKey)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

type Provider struct {
	baseURL string
	httpc   *http.Client
	storage clientstorage.Storage
}

func NewProvider(baseURL string, httpc *http.Client, storage clientstorage.Storage) *Provider {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
		storage: storage,
	}
}

type sessionRequest struct {
	ClientID string `json:"clientId,omitempty"`
}

type sessionResponse struct {
	ClientID string `json:"clientId"`
}

// EnsureIdentity sends the cached identifier (if any) to the
// session-resolution endpoint and returns the confirmed one. The server may
// issue a fresh identifier when the cached one is stale; whatever comes back
// is re-cached best-effort.
func (p *Provider) EnsureIdentity(ctx context.Context) (string, error) {
	stored, _ := StoredIdentity(p.storage)

	payload, err := json.Marshal(sessionRequest{ClientID: stored})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/client-session", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := p.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("%w: %d - %s", ErrBadStatus, res.StatusCode, preview(body))
	}
	if ct := res.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		return "", fmt.Errorf("%w: %s - %s", ErrNotJSON, ct, preview(body))
	}
	if len(body) == 0 {
		return "", ErrEmptyBody
	}

	var data sessionResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return "", fmt.Errorf("%w: %s", ErrMalformedJSON, preview(body))
	}
	if data.ClientID == "" {
		return "", ErrMissingField
	}

	// Re-save even when unchanged; the server may have replaced a stale ID.
	p.storage.Set(StorageKey, data.ClientID)
	return data.ClientID, nil
}

func preview(body []byte) string {
	s := string(body)
	if len(s) > maxErrorBodyPreview {
		return s[:maxErrorBodyPreview]
	}
	return s
}
