package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handcoach/handtext"
	"github.com/lox/handcoach/poker"
	"github.com/lox/handcoach/spr"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New(log.New(io.Discard), nil))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestParseEndpointWorkedExample(t *testing.T) {
	srv := newTestServer(t)
	resp := postJSON(t, srv.URL+"/v1/parse", map[string]string{
		"text": "SRP. SB(Hero) vs BB. 120bb. KdJc. F(Ks 7h 2d): b33, C.",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out handtext.Analysis
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	assert.Equal(t, "SB", out.Fields.Position)
	assert.Equal(t, "Kd Jc", out.Fields.HeroCards.Text)
	assert.Equal(t, "Flop: Ks 7h 2d", out.Fields.Board)
	assert.Equal(t, 120, out.Fields.EffectiveStack)
	require.NotNil(t, out.Hand)
	assert.Equal(t, "Pair of Kings", out.Hand.Label)
}

func TestParseEndpointNormalizesTags(t *testing.T) {
	srv := newTestServer(t)
	resp := postJSON(t, srv.URL+"/v1/parse", map[string]any{
		"text": "BTN opens, Hero calls in the BB with Th 9h",
		"tags": []string{"C-Bet", "c bet", "Pot Odds"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out handtext.Analysis
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, []string{"c_bet", "pot_odds"}, out.Fields.Tags)
}

func TestEvaluateEndpoint(t *testing.T) {
	srv := newTestServer(t)
	resp := postJSON(t, srv.URL+"/v1/evaluate", map[string]string{
		"cards": "Kh Kd Ks 5c 5h",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out poker.EvaluatedHand
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, poker.FullHouse, out.Category)
	assert.Equal(t, "Full House, Kings over Fives", out.Label)
}

func TestEvaluateEndpointInsufficientCards(t *testing.T) {
	srv := newTestServer(t)
	resp := postJSON(t, srv.URL+"/v1/evaluate", map[string]string{"cards": "Kh"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out poker.EvaluatedHand
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Insufficient cards", out.Label)
}

func TestSPREndpoint(t *testing.T) {
	srv := newTestServer(t)
	resp := postJSON(t, srv.URL+"/v1/spr", map[string]any{
		"pot_sizes": map[string]float64{"flop": 10},
		"stacks":    map[string]float64{"hero": 100, "villain": 80},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out spr.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 80.0, out.EffectiveStack)
	require.NotNil(t, out.Flop)
	assert.Equal(t, 8.0, out.Flop.SPR)
	assert.Contains(t, out.Flop.Commitment, "medium-high")
}

func TestBadJSONBody(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Post(srv.URL+"/v1/parse", "application/json", bytes.NewReader([]byte("{")))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestParseEndpointUsesConfiguredNormalizer(t *testing.T) {
	rule, err := handtext.NewRule(`\bstabs?\b`, "bets")
	require.NoError(t, err)
	srv := httptest.NewServer(New(log.New(io.Discard), handtext.NewNormalizer(rule)))
	t.Cleanup(srv.Close)

	resp := postJSON(t, srv.URL+"/v1/parse", map[string]string{
		"text": "Hero stabs the flop from the cutoff",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out handtext.Analysis
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "CO", out.Fields.Position)
}
