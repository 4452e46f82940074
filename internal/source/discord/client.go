package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const cdnBaseURL = "https://cdn.discordapp.com"

// AvatarURL builds the CDN location of a user's avatar image.
func AvatarURL(userID, avatarID string) string {
	return fmt.Sprintf("%s/avatars/%s/%s.png", cdnBaseURL, userID, avatarID)
}

// Config holds API client configuration.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client talks to the chat platform's REST API with bot-style bearer
// credentials. Every call is retried with bounded exponential backoff before
// its failure is surfaced.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a new API client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", "discord"),
	}
}

// ListGuildChannels lists all channels of a server.
func (c *Client) ListGuildChannels(ctx context.Context, token, serverID string) ([]Channel, error) {
	var channels []Channel
	path := fmt.Sprintf("/guilds/%s/channels", serverID)
	if err := c.get(ctx, token, path, nil, &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

// ListArchivedThreads fetches one page of a channel's public archived
// threads. A nil before requests the newest page; limit caps the page size
// when positive.
func (c *Client) ListArchivedThreads(ctx context.Context, token, channelID string, before *time.Time, limit int) (*ArchivedThreads, error) {
	query := url.Values{}
	if before != nil {
		query.Set("before", before.UTC().Format(time.RFC3339))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var page ArchivedThreads
	path := fmt.Sprintf("/channels/%s/threads/archived/public", channelID)
	if err := c.get(ctx, token, path, query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListThreadMessages fetches one page of a thread's messages, chronologically
// after the given external message id when set.
func (c *Client) ListThreadMessages(ctx context.Context, token, threadID, after string) ([]Message, error) {
	query := url.Values{}
	if after != "" {
		query.Set("after", after)
	}

	var messages []Message
	path := fmt.Sprintf("/channels/%s/messages", threadID)
	if err := c.get(ctx, token, path, query, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *Client) get(ctx context.Context, token, path string, query url.Values, out any) error {
	requestURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		requestURL += "?" + encoded
	}

	var err error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		err = c.doRequest(ctx, token, requestURL, out)
		if err == nil {
			return nil
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"path", path,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	return fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
}

func (c *Client) doRequest(ctx context.Context, token, requestURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bot "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
