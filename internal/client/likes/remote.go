package likes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// RemoteStore keeps the liked set on the server, scoped to one client
// identifier. Likes for deleted listings stay behind on the server, so List
// intersects the server's answer with candidateIDs to prune them.
type RemoteStore struct {
	baseURL  string
	clientID string
	httpc    *http.Client
}

func NewRemoteStore(baseURL, clientID string, httpc *http.Client) *RemoteStore {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &RemoteStore{
		baseURL:  strings.TrimRight(baseURL, "/"),
		clientID: clientID,
		httpc:    httpc,
	}
}

type likedIDsResponse struct {
	LikedIDs []string `json:"likedIds"`
}

func (s *RemoteStore) List(ctx context.Context, candidateIDs []string) ([]string, error) {
	endpoint := s.baseURL + "/api/likes?clientId=" + url.QueryEscape(s.clientID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	res, err := s.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := readSuccessBody(res)
	if err != nil {
		return nil, err
	}
	var data likedIDsResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decode likes response: %w", err)
	}
	return filterToCandidates(data.LikedIDs, candidateIDs), nil
}

func (s *RemoteStore) Add(ctx context.Context, listingID string) error {
	return s.mutate(ctx, http.MethodPost, map[string]any{
		"clientId":  s.clientID,
		"listingId": listingID,
	})
}

func (s *RemoteStore) Remove(ctx context.Context, listingID string) error {
	return s.mutate(ctx, http.MethodDelete, map[string]any{
		"clientId":  s.clientID,
		"listingId": listingID,
	})
}

func (s *RemoteStore) Clear(ctx context.Context) error {
	return s.mutate(ctx, http.MethodDelete, map[string]any{
		"clientId": s.clientID,
		"clearAll": true,
	})
}

func (s *RemoteStore) mutate(ctx context.Context, method string, payload map[string]any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+"/api/likes", bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.httpc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	_, err = readSuccessBody(res)
	return err
}

func readSuccessBody(res *http.Response) ([]byte, error) {
	body, _ := io.ReadAll(res.Body)
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("likes endpoint returned %d: %s", res.StatusCode, truncate(body, 100))
	}
	return body, nil
}

func truncate(body []byte, n int) string {
	s := string(body)
	if len(s) > n {
		return s[:n]
	}
	return s
}
