package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultSyncTimeout bounds each group-sync call so a slow platform API
// cannot stretch handler latency
const DefaultSyncTimeout = 3 * time.Second

// SyncClient pushes a user's external groups to the platform group-sync
// endpoint. Callers treat it as fire-and-forget.
type SyncClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewSyncClient creates a group-sync client. A zero timeout falls back to
// DefaultSyncTimeout.
func NewSyncClient(baseURL string, timeout time.Duration) *SyncClient {
	if timeout <= 0 {
		timeout = DefaultSyncTimeout
	}
	return &SyncClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// groupSyncRequest is the platform API payload
type groupSyncRequest struct {
	TenantID string   `json:"tenantId"`
	Email    string   `json:"email"`
	Groups   []string `json:"groups"`
}

// SyncGroups posts the user's groups to the platform API
func (c *SyncClient) SyncGroups(ctx context.Context, tenantID, email string, groups []string) error {
	body, err := json.Marshal(groupSyncRequest{
		TenantID: tenantID,
		Email:    email,
		Groups:   groups,
	})
	if err != nil {
		return fmt.Errorf("failed to encode group sync request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/internal/group-sync", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build group sync request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("group sync request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("group sync returned status %d", resp.StatusCode)
	}
	return nil
}
