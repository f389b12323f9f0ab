// Package api is the HTTP client for the competition backend. All network
// boundary operations live here; callers translate results into store
// mutations and never see a panic: fetch errors are returned for the caller
// to swallow, and login failure is a boolean outcome.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/moonshotcrossfit/cup/internal/domain"
)

// Client talks to the scoreboard API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the given base URL (no trailing slash).
// Requests use the transport's dial timeout; once issued they are not
// cancellable and no overall deadline is enforced client-side.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

// FetchSnapshot retrieves the full team/member/config snapshot.
// Missing teams/members decode to empty slices; config handling (default
// challenges) is the store's job. Non-2xx responses are errors.
func (c *Client) FetchSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/data", nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("data endpoint returned status %d", resp.StatusCode)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &snap, nil
}

type loginRequest struct {
	Pin string `json:"pin"`
}

type loginResponse struct {
	TeamID string `json:"teamId"`
}

// Login posts a captain PIN. Any non-2xx status or transport failure is
// treated as invalid credentials and surfaces as ok=false, never an error.
func (c *Client) Login(ctx context.Context, pin string) (teamID string, ok bool) {
	data, err := json.Marshal(loginRequest{Pin: pin})
	if err != nil {
		return "", false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(data))
	if err != nil {
		return "", false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return "", false
	}
	return lr.TeamID, true
}

type scoresRequest struct {
	MemberID string            `json:"memberId"`
	Scores   domain.ScorePatch `json:"scores"`
}

// PushScores sends a partial score update for one member. The caller has
// already merged the patch locally; a failure here is logged upstream and
// not rolled back; the next poll reconciles with server truth.
func (c *Client) PushScores(ctx context.Context, token, memberID string, patch domain.ScorePatch) error {
	body := scoresRequest{MemberID: memberID, Scores: patch}
	return c.postAuthorized(ctx, "/scores", token, body)
}

type teamNameRequest struct {
	TeamID        string `json:"teamId"`
	TeamNameEntry string `json:"teamNameEntry"`
}

// PushTeamName submits a team's custom name. Same fire-and-forget contract
// as PushScores.
func (c *Client) PushTeamName(ctx context.Context, token, teamID, name string) error {
	body := teamNameRequest{TeamID: teamID, TeamNameEntry: name}
	return c.postAuthorized(ctx, "/team-name", token, body)
}

func (c *Client) postAuthorized(ctx context.Context, path, token string, body any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}
	return nil
}
