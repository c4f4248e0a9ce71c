package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clpeek/clpeek/api"
)

func TestClassifyAdreno640(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := Router()

	body := `{
		"vendor_name": "Qualcomm",
		"device_name": "QUALCOMM Adreno(TM)",
		"device_version": "OpenCL C 2.0 Adreno(TM) 640",
		"extensions": ["cl_khr_fp16"],
		"sub_group_sizes": [64, 128]
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/classify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	var resp api.CapabilityReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "Qualcomm", resp.Vendor)
	assert.Equal(t, "Adreno 640", resp.Model)
	assert.Equal(t, "2.0", resp.CLVersion)
	assert.True(t, resp.CL20OrHigher)
	assert.True(t, resp.SupportsFP16)
	assert.Equal(t, 128, resp.WaveSizeFull)
	assert.Equal(t, 30, resp.MaximumWaveCount)
	assert.Equal(t, 128*144*16, resp.RegisterFileSize)
}

func TestClassifyRejectsEmptyDescriptor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := Router()

	req := httptest.NewRequest(http.MethodPost, "/api/classify", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "empty device descriptor")
}

func TestClassifyRejectsBadJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := Router()

	req := httptest.NewRequest(http.MethodPost, "/api/classify", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVersionRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := Router()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.VersionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Version)
}

func TestRequestIDPassthrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := Router()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set("X-Request-Id", "fixed-id")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "fixed-id", w.Header().Get("X-Request-Id"))
}
