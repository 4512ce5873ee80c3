package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// APISource pulls rows from the external provider: GET <base>/employees and
// GET <base>/shifts, each returning a JSON array of objects.
type APISource struct {
	baseURL string
	client  *http.Client
}

func NewAPISource(baseURL string) *APISource {
	return &APISource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *APISource) Fetch(ctx context.Context, kind Kind) ([]Row, error) {
	url := s.baseURL + "/" + string(kind)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrUnavailable, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrUnavailable, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: GET %s: status %d", ErrUnavailable, url, resp.StatusCode)
	}

	var rows []Row
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: decode %s response: %v", ErrUnavailable, url, err)
	}
	if rows == nil {
		rows = []Row{}
	}
	return rows, nil
}
