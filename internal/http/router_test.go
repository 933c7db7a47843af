package http

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	applineups "github.com/preston-bernstein/pickup-teams-service/internal/app/lineups"
	"github.com/preston-bernstein/pickup-teams-service/internal/http/handlers"
	"github.com/preston-bernstein/pickup-teams-service/internal/metrics"
	"github.com/preston-bernstein/pickup-teams-service/internal/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	sessions, _ := testutil.NewSessionService()
	lineups := applineups.NewService(nil, metrics.NewRecorder(), nil, 8)
	return NewRouter(handlers.NewHandler(lineups, sessions, nil, 4096, nil))
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{method: http.MethodGet, path: "/health", want: http.StatusOK},
		{method: http.MethodGet, path: "/ready", want: http.StatusOK},
		{method: http.MethodPost, path: "/teams", body: `{"roster":"A, B","teamCount":2}`, want: http.StatusOK},
		{method: http.MethodPost, path: "/sessions", want: http.StatusCreated},
		{method: http.MethodGet, path: "/sessions/missing", want: http.StatusNotFound},
		{method: http.MethodGet, path: "/sessions/missing/teams", want: http.StatusNotFound},
	}

	for _, tc := range cases {
		rr := testutil.Serve(router, tc.method, tc.path, strings.NewReader(tc.body))
		assert.Equal(t, tc.want, rr.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRouterRejectsWrongMethod(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.Serve(router, http.MethodGet, "/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)

	rr = testutil.Serve(router, http.MethodPost, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newTestRouter(t)
	rr := testutil.Serve(router, http.MethodGet, "/does-not-exist", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestRouterSessionFlow(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.Serve(router, http.MethodPost, "/sessions", nil)
	testutil.AssertStatus(t, rr, http.StatusCreated)
	var session struct {
		ID string `json:"id"`
	}
	testutil.DecodeJSON(t, rr, &session)
	require.NotEmpty(t, session.ID)
	base := "/sessions/" + session.ID

	rr = testutil.Serve(router, http.MethodPut, base+"/members/Ana@Example.com",
		strings.NewReader(`{"firstName":"Ana","surname":"Silva"}`))
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodPut, base+"/members/not-an-email",
		strings.NewReader(`{"firstName":"Ana","surname":"Silva"}`))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	rr = testutil.Serve(router, http.MethodPut, base+"/members/ana@example.com/payment",
		strings.NewReader(`{"paid":true}`))
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodPost, base+"/teams",
		strings.NewReader(`{"roster":"Joe (5), Jane (3), GK-Bob (4), Frank (2)","teamCount":2}`))
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodGet, base+"/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodGet, base, nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var view struct {
		PaidCount int  `json:"paidCount"`
		HasLineup bool `json:"hasLineup"`
	}
	testutil.DecodeJSON(t, rr, &view)
	assert.Equal(t, 1, view.PaidCount)
	assert.True(t, view.HasLineup)

	rr = testutil.Serve(router, http.MethodDelete, base, nil)
	testutil.AssertStatus(t, rr, http.StatusNoContent)
}
