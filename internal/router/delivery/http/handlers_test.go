package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-assistant/config"
	"shop-assistant/internal/middleware"
	"shop-assistant/internal/router"
	"shop-assistant/pkg/log"
	"shop-assistant/pkg/response"
)

type fakeRouter struct {
	result        router.Result
	err           error
	gotThreshold  float64
	classifyCalls int
}

func (f *fakeRouter) Classify(_ context.Context, _ string, threshold float64) (router.Result, error) {
	f.classifyCalls++
	f.gotThreshold = threshold
	return f.result, f.err
}

func (f *fakeRouter) Routes() []router.Route { return router.DefaultRoutes() }

func setup(r *fakeRouter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	mw := middleware.New(log.NewNop(), config.RateLimitConfig{})
	RegisterRoutes(e.Group("/api/v1/router"), New(log.NewNop(), r, router.DefaultThreshold), mw)
	return e
}

func post(e *gin.Engine, body string) (*httptest.ResponseRecorder, response.Resp) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/router/classify", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestClassify(t *testing.T) {
	tcs := map[string]struct {
		body          string
		result        router.Result
		err           error
		wantCode      int
		wantThreshold float64
		wantCalls     int
	}{
		"default threshold": {
			body:          `{"text":"what is your return policy"}`,
			result:        router.Result{Route: router.RouteFAQ, Score: 0.71},
			wantCode:      http.StatusOK,
			wantThreshold: router.DefaultThreshold,
			wantCalls:     1,
		},
		"explicit threshold": {
			body:          `{"text":"show my orders","threshold":0.6}`,
			result:        router.Result{Route: router.RouteUnknown, Score: 0.4},
			wantCode:      http.StatusOK,
			wantThreshold: 0.6,
			wantCalls:     1,
		},
		"zero threshold is honoured": {
			body:          `{"text":"hello","threshold":0}`,
			result:        router.Result{Route: router.RouteSQL, Score: 0.01},
			wantCode:      http.StatusOK,
			wantThreshold: 0,
			wantCalls:     1,
		},
		"threshold out of range": {
			body:     `{"text":"hello","threshold":2}`,
			wantCode: http.StatusBadRequest,
		},
		"blank text": {
			body:     `{"text":"  "}`,
			wantCode: http.StatusBadRequest,
		},
		"provider failure": {
			body:          `{"text":"hello"}`,
			err:           errors.New("embed: 503"),
			wantCode:      http.StatusInternalServerError,
			wantThreshold: router.DefaultThreshold,
			wantCalls:     1,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			fr := &fakeRouter{result: tc.result, err: tc.err}
			w, resp := post(setup(fr), tc.body)

			require.Equal(t, tc.wantCode, w.Code)
			assert.Equal(t, tc.wantCalls, fr.classifyCalls)
			if tc.wantCode != http.StatusOK {
				return
			}
			assert.Equal(t, tc.wantThreshold, fr.gotThreshold)
			data := resp.Data.(map[string]interface{})
			assert.Equal(t, tc.result.Route, data["route"])
			assert.InDelta(t, tc.result.Score, data["score"], 1e-9)
		})
	}
}

func TestRoutes(t *testing.T) {
	e := setup(&fakeRouter{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/router/routes", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	routes := resp.Data.(map[string]interface{})["routes"].([]interface{})
	require.Len(t, routes, 2)
	assert.Equal(t, router.RouteFAQ, routes[0].(map[string]interface{})["name"])
}
