package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/jenn-182/Pixel-Pages-sub000/internal/stats"
)

// PlayerAchievement is one entry of the remote player-achievement snapshot.
type PlayerAchievement struct {
	ID         string     `json:"id"`
	Completed  bool       `json:"completed"`
	Progress   int        `json:"progress"` // 0-100
	UnlockedAt *time.Time `json:"unlockedAt,omitempty"`
}

// PlayerStats is the remote aggregate scalar map, used as a secondary
// signal for whether the remote actually has state for this player.
type PlayerStats map[string]int

// CatalogEntry is the remote catalog representation of one achievement.
type CatalogEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Tier        string `json:"tier"`
	Category    string `json:"category"`
	XPReward    int    `json:"xpReward"`
	Color       string `json:"color"`
}

// Client talks to the authoritative remote store.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient returns a client with the given request timeout. The timeout
// is the implicit upper bound on every remote call; callers may tighten
// it further per call through the context.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Catalog fetches the remote achievement catalog.
func (c *Client) Catalog(ctx context.Context) ([]CatalogEntry, error) {
	var entries []CatalogEntry
	if err := c.get(ctx, "achievements/catalog", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// PlayerAchievements fetches the player's achievement snapshot.
func (c *Client) PlayerAchievements(ctx context.Context, playerID string) ([]PlayerAchievement, error) {
	var entries []PlayerAchievement
	if err := c.get(ctx, fmt.Sprintf("players/%s/achievements", url.PathEscape(playerID)), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Stats fetches the player's aggregate stat map.
func (c *Client) Stats(ctx context.Context, playerID string) (PlayerStats, error) {
	var playerStats PlayerStats
	if err := c.get(ctx, fmt.Sprintf("players/%s/stats", url.PathEscape(playerID)), &playerStats); err != nil {
		return nil, err
	}
	return playerStats, nil
}

// Notes fetches the player's raw note records.
func (c *Client) Notes(ctx context.Context, playerID string) ([]stats.Note, error) {
	var notes []stats.Note
	if err := c.get(ctx, fmt.Sprintf("players/%s/activity/notes", url.PathEscape(playerID)), &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// Tasks fetches the player's raw task records.
func (c *Client) Tasks(ctx context.Context, playerID string) ([]stats.Task, error) {
	var tasks []stats.Task
	if err := c.get(ctx, fmt.Sprintf("players/%s/activity/tasks", url.PathEscape(playerID)), &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// FocusSessions fetches the player's raw focus session records.
func (c *Client) FocusSessions(ctx context.Context, playerID string) ([]stats.FocusSession, error) {
	var sessions []stats.FocusSession
	if err := c.get(ctx, fmt.Sprintf("players/%s/activity/focus", url.PathEscape(playerID)), &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// ActivityLog fetches all three activity collections in one call.
func (c *Client) ActivityLog(ctx context.Context, playerID string) (stats.ActivityLog, error) {
	var log stats.ActivityLog

	notes, err := c.Notes(ctx, playerID)
	if err != nil {
		return log, err
	}
	tasks, err := c.Tasks(ctx, playerID)
	if err != nil {
		return log, err
	}
	sessions, err := c.FocusSessions(ctx, playerID)
	if err != nil {
		return log, err
	}

	log.Notes = notes
	log.Tasks = tasks
	log.Sessions = sessions
	return log, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	endpoint := fmt.Sprintf("%s/%s", c.baseURL, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}

	c.logger.Debug("remote fetch ok", zap.String("path", path))
	return nil
}
