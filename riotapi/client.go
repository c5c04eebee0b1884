package riotapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"fitbot/models"
)

// Client talks to the Riot match-history API for one region
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient creates a new Riot API client for the given region
func NewClient(apiKey, region string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: fmt.Sprintf("https://%s.api.riotgames.com", region),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FindAccountID resolves a summoner name to an account ID. A summoner the
// API does not know returns ("", nil); any other failure is an error.
func (c *Client) FindAccountID(ctx context.Context, summonerName string) (string, error) {
	var summoner summonerResponse
	path := "/lol/summoner/v4/summoners/by-name/" + url.PathEscape(summonerName)
	if err := c.get(ctx, path, nil, &summoner); err != nil {
		if IsNotFound(err) {
			return "", nil
		}
		return "", err
	}
	return summoner.AccountID, nil
}

// DeathsByDate pages through the account's match history starting at from,
// fetches each match's detail and accumulates the account's deaths per UTC
// calendar day. Paging stops early on any rate-limit-class failure; the
// result then carries the partial counts, a watermark at the last fully
// processed match and RateLimited set so the next sync resumes without gaps.
func (c *Client) DeathsByDate(ctx context.Context, accountID string, from time.Time) *models.SyncResult {
	from = from.UTC()
	result := &models.SyncResult{
		DeathsPerDate: make(map[time.Time]int),
	}
	beginTime := from.UnixMilli()
	beginIndex := 0
	latest := from

paging:
	for {
		page, err := c.matchPage(ctx, accountID, beginTime, beginIndex)
		if err != nil {
			result.RateLimited = !IsNotFound(err)
			break
		}

		// Pages arrive newest-first; process oldest-first so the
		// latest-seen timestamp only moves forward.
		for i := len(page.Matches) - 1; i >= 0; i-- {
			ref := page.Matches[i]
			deaths, err := c.matchDeaths(ctx, accountID, ref.GameID)
			if err != nil {
				result.RateLimited = !IsNotFound(err)
				break paging
			}
			matchTime := time.UnixMilli(ref.Timestamp).UTC()
			result.DeathsPerDate[models.DayOf(matchTime)] += deaths
			if matchTime.After(latest) {
				latest = matchTime
			}
		}

		if page.EndIndex >= page.TotalGames {
			break
		}
		beginIndex = page.EndIndex
	}

	if result.RateLimited {
		// Conservative: never past the last match fully counted,
		// never before the starting watermark.
		result.NewWatermark = latest
	} else {
		// Fully synced, so the watermark tracks real time instead of
		// stalling at the member's last match date.
		result.NewWatermark = time.Now().UTC()
	}
	return result
}

// matchPage fetches one page of the account's match list
func (c *Client) matchPage(ctx context.Context, accountID string, beginTime int64, beginIndex int) (*matchListResponse, error) {
	query := url.Values{}
	query.Set("beginTime", strconv.FormatInt(beginTime, 10))
	query.Set("beginIndex", strconv.Itoa(beginIndex))

	var page matchListResponse
	path := "/lol/match/v4/matchlists/by-account/" + url.PathEscape(accountID)
	if err := c.get(ctx, path, query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// matchDeaths fetches a match's detail and extracts the death count for the
// participant slot belonging to accountID
func (c *Client) matchDeaths(ctx context.Context, accountID string, gameID int64) (int, error) {
	var match matchResponse
	path := "/lol/match/v4/matches/" + strconv.FormatInt(gameID, 10)
	if err := c.get(ctx, path, nil, &match); err != nil {
		return 0, err
	}

	participantID := 0
	for _, identity := range match.ParticipantIdentities {
		if identity.Player.AccountID == accountID {
			participantID = identity.ParticipantID
			break
		}
	}
	if participantID == 0 {
		return 0, fmt.Errorf("account %s not found in match %d participants", accountID, gameID)
	}

	for _, p := range match.Participants {
		if p.ParticipantID == participantID {
			return p.Stats.Deaths, nil
		}
	}
	return 0, fmt.Errorf("participant %d missing stats in match %d", participantID, gameID)
}

// get performs an authenticated GET and decodes the JSON response into out
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("X-Riot-Token", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		io.Copy(io.Discard, resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Endpoint: path}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	return nil
}
