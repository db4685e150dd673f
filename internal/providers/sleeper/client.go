package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sleeper-log/internal/domain"
	"sleeper-log/internal/providers"
)

// Config controls how the sleeper client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Throttle   time.Duration
	UserAgent  string
}

// Client fetches league data from the Sleeper public API and maps it to
// domain models. Sleeper's API is read-only and unauthenticated.
type Client struct {
	baseURL    string
	httpClient httpDoer
	throttle   time.Duration
	userAgent  string
	now        func() time.Time
}

var _ providers.LeagueProvider = (*Client)(nil)

// NewClient constructs a sleeper client with the provided configuration.
func NewClient(cfg Config) *Client {
	agent := cfg.UserAgent
	if agent == "" {
		agent = defaultUserAgent
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		throttle:   cfg.Throttle,
		userAgent:  agent,
		now:        time.Now,
	}
}

// FetchLeague retrieves league metadata.
func (c *Client) FetchLeague(ctx context.Context, leagueID string) (domain.League, error) {
	var payload leagueResponse
	path := "/league/" + url.PathEscape(leagueID)
	if err := c.getJSON(ctx, path, "league "+leagueID, &payload); err != nil {
		return domain.League{}, err
	}
	return mapLeague(payload), nil
}

// FetchState retrieves the current NFL season state. A missing week defaults
// to 1 so early-season reports still render.
func (c *Client) FetchState(ctx context.Context) (domain.SeasonState, error) {
	var payload stateResponse
	if err := c.getJSON(ctx, "/state/"+sport, "state", &payload); err != nil {
		return domain.SeasonState{}, err
	}
	state := mapState(payload)
	if state.Week < 1 {
		state.Week = 1
	}
	return state, nil
}

// FetchUsers retrieves the league's member profiles.
func (c *Client) FetchUsers(ctx context.Context, leagueID string) ([]domain.User, error) {
	var payload []userResponse
	path := "/league/" + url.PathEscape(leagueID) + "/users"
	if err := c.getJSON(ctx, path, "league users", &payload); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(payload))
	for _, u := range payload {
		users = append(users, mapUser(u))
	}
	return users, nil
}

// FetchRosters retrieves the league's rosters.
func (c *Client) FetchRosters(ctx context.Context, leagueID string) ([]domain.Roster, error) {
	var payload []rosterResponse
	path := "/league/" + url.PathEscape(leagueID) + "/rosters"
	if err := c.getJSON(ctx, path, "league rosters", &payload); err != nil {
		return nil, err
	}

	rosters := make([]domain.Roster, 0, len(payload))
	for _, r := range payload {
		rosters = append(rosters, mapRoster(r))
	}
	return rosters, nil
}

// FetchMatchups retrieves one week's matchups.
func (c *Client) FetchMatchups(ctx context.Context, leagueID string, week int) ([]domain.Matchup, error) {
	var payload []matchupResponse
	path := fmt.Sprintf("/league/%s/matchups/%d", url.PathEscape(leagueID), week)
	if err := c.getJSON(ctx, path, fmt.Sprintf("matchups week %d", week), &payload); err != nil {
		return nil, err
	}

	matchups := make([]domain.Matchup, 0, len(payload))
	for _, m := range payload {
		matchups = append(matchups, mapMatchup(m))
	}
	return matchups, nil
}

// FetchPlayers retrieves the full NFL players catalog. This is a multi-MB
// response; Sleeper asks clients to fetch it sparingly.
func (c *Client) FetchPlayers(ctx context.Context) (map[string]domain.Player, error) {
	var payload map[string]playerResponse
	if err := c.getJSON(ctx, "/players/"+sport, "players catalog", &payload); err != nil {
		return nil, err
	}

	players := make(map[string]domain.Player, len(payload))
	for id, p := range payload {
		players[id] = mapPlayer(p)
	}
	return players, nil
}

// FetchUserByName resolves a username to a user profile.
func (c *Client) FetchUserByName(ctx context.Context, username string) (domain.User, error) {
	var payload userResponse
	path := "/user/" + url.PathEscape(username)
	if err := c.getJSON(ctx, path, "user "+username, &payload); err != nil {
		return domain.User{}, err
	}
	return mapUser(payload), nil
}

// FetchUserLeagues lists a user's NFL leagues for a season.
func (c *Client) FetchUserLeagues(ctx context.Context, userID, season string) ([]domain.LeagueSummary, error) {
	var payload []leagueSummaryResponse
	path := fmt.Sprintf("/user/%s/leagues/%s/%s", url.PathEscape(userID), sport, url.PathEscape(season))
	if err := c.getJSON(ctx, path, "user leagues", &payload); err != nil {
		return nil, err
	}

	leagues := make([]domain.LeagueSummary, 0, len(payload))
	for _, l := range payload {
		leagues = append(leagues, mapLeagueSummary(l))
	}
	return leagues, nil
}

func (c *Client) getJSON(ctx context.Context, path, resource string, dest any) error {
	if err := c.pause(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusNotFound:
		return &providers.NotFoundError{Provider: ProviderName, Resource: resource}
	case http.StatusTooManyRequests:
		return &providers.RateLimitError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Message:    "sleeper rate limited",
		}
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return fmt.Errorf("sleeper: unexpected status %d for %s: %s",
			resp.StatusCode, resource, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("sleeper: decoding %s: %w", resource, err)
	}
	return nil
}
