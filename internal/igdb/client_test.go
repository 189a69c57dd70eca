// TBP-Viz - Game Ranking Analytics and Visualization
// Copyright 2026 Wojciech Graj (wojciech-graj)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wojciech-graj/tbp-viz

package igdb

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/wojciech-graj/tbp-viz/internal/config"
	"github.com/wojciech-graj/tbp-viz/internal/models"
)

// recordedRequest captures a request for later assertions. Bodies are
// read eagerly because the handler's body is gone once it returns.
type recordedRequest struct {
	method string
	path   string
	query  map[string]string
	header http.Header
	body   string
}

// igdbStub fakes the token and games endpoints on one test server.
// gamesStatus is consumed one element per /games request; when it runs
// out, requests get 200.
type igdbStub struct {
	t *testing.T

	mu          sync.Mutex
	requests    []recordedRequest
	gamesStatus []int
	gamesBody   string
	tokenBody   string
}

func newStub(t *testing.T) *igdbStub {
	return &igdbStub{
		t:         t,
		tokenBody: `{"access_token":"tok123","expires_in":5000000,"token_type":"bearer"}`,
		gamesBody: `[{"id":1020,"name":"Grand Theft Auto V","first_release_date":1379376000}]`,
	}
}

func (s *igdbStub) record(r *http.Request) recordedRequest {
	body, _ := io.ReadAll(r.Body)
	query := make(map[string]string)
	for key := range r.URL.Query() {
		query[key] = r.URL.Query().Get(key)
	}
	rec := recordedRequest{
		method: r.Method,
		path:   r.URL.Path,
		query:  query,
		header: r.Header.Clone(),
		body:   string(body),
	}
	s.mu.Lock()
	s.requests = append(s.requests, rec)
	s.mu.Unlock()
	return rec
}

func (s *igdbStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.record(r)
	switch r.URL.Path {
	case "/oauth2/token":
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(s.tokenBody))
	case "/v4/games":
		s.mu.Lock()
		status := http.StatusOK
		if len(s.gamesStatus) > 0 {
			status = s.gamesStatus[0]
			s.gamesStatus = s.gamesStatus[1:]
		}
		s.mu.Unlock()
		if status != http.StatusOK {
			http.Error(w, "try later", status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(s.gamesBody))
	default:
		s.t.Errorf("unexpected request path %q", r.URL.Path)
		http.NotFound(w, r)
	}
}

// byPath returns the recorded requests hitting the given path.
func (s *igdbStub) byPath(path string) []recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []recordedRequest
	for _, req := range s.requests {
		if req.path == path {
			out = append(out, req)
		}
	}
	return out
}

func testClient(srv *httptest.Server) *Client {
	return NewClient(&config.IGDBConfig{
		ClientID:      "id123",
		ClientSecret:  "s3cret",
		APIURL:        srv.URL + "/v4",
		TokenURL:      srv.URL + "/oauth2/token",
		BatchSize:     500,
		RateLimit:     1000, // keep tests fast
		RetryCooldown: 10 * time.Millisecond,
		Timeout:       5 * time.Second,
	})
}

func TestGames(t *testing.T) {
	t.Parallel()

	stub := newStub(t)
	srv := httptest.NewServer(stub)
	defer srv.Close()

	client := testClient(srv)
	metas, err := client.Games(context.Background(), []models.GameID{
		models.IGDBGameID(1020),
		models.IGDBGameID(7346),
	})
	if err != nil {
		t.Fatalf("Games() error = %v", err)
	}

	if len(metas) != 1 || metas[0].Name != "Grand Theft Auto V" {
		t.Errorf("Games() = %+v, want one GTA V record", metas)
	}

	tokens := stub.byPath("/oauth2/token")
	if len(tokens) != 1 {
		t.Fatalf("token requests = %d, want 1", len(tokens))
	}
	tok := tokens[0]
	if tok.method != http.MethodPost {
		t.Errorf("token method = %s, want POST", tok.method)
	}
	if tok.query["client_id"] != "id123" || tok.query["client_secret"] != "s3cret" {
		t.Errorf("token credentials = %v, want id123/s3cret", tok.query)
	}
	if tok.query["grant_type"] != "client_credentials" {
		t.Errorf("grant_type = %q, want client_credentials", tok.query["grant_type"])
	}

	games := stub.byPath("/v4/games")
	if len(games) != 1 {
		t.Fatalf("games requests = %d, want 1", len(games))
	}
	game := games[0]
	if game.method != http.MethodPost {
		t.Errorf("games method = %s, want POST", game.method)
	}
	if got := game.header.Get("Client-ID"); got != "id123" {
		t.Errorf("Client-ID header = %q, want id123", got)
	}
	if got := game.header.Get("Authorization"); got != "Bearer tok123" {
		t.Errorf("Authorization header = %q, want Bearer tok123", got)
	}
	if !strings.HasPrefix(game.body, "fields age_ratings.category,") {
		t.Errorf("games body does not start with fields projection: %q", game.body)
	}
	if !strings.Contains(game.body, "total_rating_count;") {
		t.Errorf("games body projection truncated: %q", game.body)
	}
	if !strings.Contains(game.body, "where id=(1020,7346)") {
		t.Errorf("games body missing id clause: %q", game.body)
	}
	if !strings.HasSuffix(game.body, "limit 2;") {
		t.Errorf("games body missing limit clause: %q", game.body)
	}
}

func TestGames_TokenRequestedOnce(t *testing.T) {
	t.Parallel()

	stub := newStub(t)
	srv := httptest.NewServer(stub)
	defer srv.Close()

	client := testClient(srv)
	ids := []models.GameID{models.IGDBGameID(1020)}
	for i := 0; i < 3; i++ {
		if _, err := client.Games(context.Background(), ids); err != nil {
			t.Fatalf("Games() call %d error = %v", i, err)
		}
	}

	if got := len(stub.byPath("/oauth2/token")); got != 1 {
		t.Errorf("token requests = %d, want 1 (cached)", got)
	}
	if got := len(stub.byPath("/v4/games")); got != 3 {
		t.Errorf("games requests = %d, want 3", got)
	}
}

func TestGames_RateLimitReplaysIdenticalRequest(t *testing.T) {
	t.Parallel()

	stub := newStub(t)
	stub.gamesStatus = []int{http.StatusTooManyRequests}
	srv := httptest.NewServer(stub)
	defer srv.Close()

	client := testClient(srv)
	metas, err := client.Games(context.Background(), []models.GameID{models.IGDBGameID(1020)})
	if err != nil {
		t.Fatalf("Games() error = %v", err)
	}
	if len(metas) != 1 {
		t.Errorf("Games() returned %d records, want 1", len(metas))
	}

	games := stub.byPath("/v4/games")
	if len(games) != 2 {
		t.Fatalf("games requests = %d, want 2 (original + replay)", len(games))
	}
	if games[0].body != games[1].body {
		t.Errorf("replay body differs:\nfirst:  %q\nsecond: %q", games[0].body, games[1].body)
	}
	if games[0].header.Get("Authorization") != games[1].header.Get("Authorization") {
		t.Error("replay Authorization header differs")
	}
}

func TestGames_RateLimitTwiceFails(t *testing.T) {
	t.Parallel()

	stub := newStub(t)
	stub.gamesStatus = []int{http.StatusTooManyRequests, http.StatusTooManyRequests}
	srv := httptest.NewServer(stub)
	defer srv.Close()

	client := testClient(srv)
	_, err := client.Games(context.Background(), []models.GameID{models.IGDBGameID(1020)})
	if err == nil {
		t.Fatal("Games() = nil error, want rate limit failure")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error = %v, want mention of status 429", err)
	}

	if got := len(stub.byPath("/v4/games")); got != 2 {
		t.Errorf("games requests = %d, want exactly 2 (no third attempt)", got)
	}
}

func TestGames_ServerErrorIncludesBodyExcerpt(t *testing.T) {
	t.Parallel()

	stub := newStub(t)
	stub.gamesStatus = []int{http.StatusInternalServerError}
	srv := httptest.NewServer(stub)
	defer srv.Close()

	client := testClient(srv)
	_, err := client.Games(context.Background(), []models.GameID{models.IGDBGameID(1020)})
	if err == nil {
		t.Fatal("Games() = nil error, want server error")
	}
	if !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "try later") {
		t.Errorf("error = %v, want status and body excerpt", err)
	}

	if got := len(stub.byPath("/v4/games")); got != 1 {
		t.Errorf("games requests = %d, want 1 (500 is not retried)", got)
	}
}

func TestGames_MissingCredentials(t *testing.T) {
	t.Parallel()

	stub := newStub(t)
	srv := httptest.NewServer(stub)
	defer srv.Close()

	client := NewClient(&config.IGDBConfig{
		APIURL:   srv.URL + "/v4",
		TokenURL: srv.URL + "/oauth2/token",
	})
	_, err := client.Games(context.Background(), []models.GameID{models.IGDBGameID(1020)})
	if err == nil {
		t.Fatal("Games() = nil error, want missing credentials")
	}
	if !strings.Contains(err.Error(), "CLIENT_ID") || !strings.Contains(err.Error(), "CLIENT_SECRET") {
		t.Errorf("error = %v, want mention of CLIENT_ID and CLIENT_SECRET", err)
	}

	if got := len(stub.requests); got != 0 {
		t.Errorf("requests = %d, want 0 (fails before any network)", got)
	}
}

func TestGames_RejectsNonIGDBID(t *testing.T) {
	t.Parallel()

	stub := newStub(t)
	srv := httptest.NewServer(stub)
	defer srv.Close()

	client := testClient(srv)
	_, err := client.Games(context.Background(), []models.GameID{
		models.IGDBGameID(1020),
		models.OtherGameID("Minesweeper"),
	})
	if err == nil {
		t.Fatal("Games() = nil error, want rejection of non-IGDB id")
	}
	if !strings.Contains(err.Error(), "Minesweeper") {
		t.Errorf("error = %v, want the offending id named", err)
	}

	if got := len(stub.byPath("/v4/games")); got != 0 {
		t.Errorf("games requests = %d, want 0", got)
	}
}

func TestGames_EmptyIDsIsANoOp(t *testing.T) {
	t.Parallel()

	stub := newStub(t)
	srv := httptest.NewServer(stub)
	defer srv.Close()

	client := testClient(srv)
	metas, err := client.Games(context.Background(), nil)
	if err != nil {
		t.Fatalf("Games(nil) error = %v", err)
	}
	if metas != nil {
		t.Errorf("Games(nil) = %v, want nil", metas)
	}
	if got := len(stub.requests); got != 0 {
		t.Errorf("requests = %d, want 0", got)
	}
}
