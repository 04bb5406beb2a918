package ui

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShuleiCao/halotools/app"
	"github.com/ShuleiCao/halotools/internal/rng"
	"github.com/ShuleiCao/halotools/internal/testkit"
)

func testApp(t *testing.T) *App {
	t.Helper()
	simCfg := testkit.DefaultFakeSimConfig()
	simCfg.HaloCount = 300
	service := app.NewPopulationService(testkit.NewFakeSim(simCfg), rng.NewStreamSource(), nil, nil)
	return NewApp(Config{Port: "0"}, service)
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	testApp(t).Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestPopulate_Defaults(t *testing.T) {
	body := bytes.NewBufferString(`{"seed": 43}`)
	req := httptest.NewRequest(http.MethodPost, "/api/populate", body)
	rec := httptest.NewRecorder()
	testApp(t).Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp PopulateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Run)
	assert.Equal(t, "smhm_binary_sfr", resp.Run.ModelName)
	assert.Equal(t, 300, resp.Run.HaloCount)
	assert.Equal(t, 300, resp.Run.GalaxyCount)
	assert.Len(t, resp.SampleGalaxies, 10)
	assert.Greater(t, resp.QuiescentFraction, 0.0)
	assert.Less(t, resp.QuiescentFraction, 1.0)
	for _, g := range resp.SampleGalaxies {
		assert.Greater(t, g.StellarMass, 0.0)
	}
}

func TestPopulate_Deterministic(t *testing.T) {
	a := testApp(t)

	call := func() PopulateResponse {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/populate", strings.NewReader(`{"seed": 7}`))
		a.Router().ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var resp PopulateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp
	}

	first := call()
	second := call()
	assert.Equal(t, first.QuiescentFraction, second.QuiescentFraction)
	assert.Equal(t, first.SampleGalaxies, second.SampleGalaxies)
}

func TestPopulate_Threshold(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/populate",
		strings.NewReader(`{"seed": 43, "threshold": 1e10}`))
	testApp(t).Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp PopulateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Less(t, resp.Run.GalaxyCount, resp.Run.HaloCount)
	require.NotNil(t, resp.Run.Threshold)
	assert.Equal(t, 1e10, *resp.Run.Threshold)
	for _, g := range resp.SampleGalaxies {
		assert.Greater(t, g.StellarMass, 1e10)
	}
}

func TestPopulate_AssemblyBias(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/populate",
		strings.NewReader(`{"seed": 43, "assembias_strength": 0.9, "assembias_split": 0.5}`))
	testApp(t).Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp PopulateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 300, resp.Run.GalaxyCount)
	assert.Greater(t, resp.QuiescentFraction, 0.0)
	assert.Less(t, resp.QuiescentFraction, 1.0)
}

func TestPopulate_BadRequests(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"seed": `},
		{"unknown smhm model", `{"smhm_model": "press_schechter"}`},
		{"bad sfr ordinates", `{"sfr_abcissa": [12, 15], "sfr_ordinates": [0.25, 1.5]}`},
		{"mismatched sfr points", `{"sfr_abcissa": [12, 13, 15], "sfr_ordinates": [0.25, 0.75]}`},
		{"assembias strength out of range", `{"assembias_strength": 1.5}`},
	}
	a := testApp(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/populate", strings.NewReader(tc.body))
			a.Router().ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestGetRun_NotFoundWithoutRepository(t *testing.T) {
	rec := httptest.NewRecorder()
	testApp(t).Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/runs/some-id", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListRuns_EmptyWithoutRepository(t *testing.T) {
	rec := httptest.NewRecorder()
	testApp(t).Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/runs", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"runs":[]}`, rec.Body.String())
}
