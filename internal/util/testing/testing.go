package test_utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func MakeAPIRequest(
	router *gin.Engine,
	method string,
	url string,
	authHeader string,
	body any,
) *httptest.ResponseRecorder {
	var requestBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		requestBody = bytes.NewBuffer(jsonBody)
	} else {
		requestBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, url, requestBody)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func MakeGetRequest(
	t *testing.T,
	router *gin.Engine,
	url string,
	authHeader string,
) *httptest.ResponseRecorder {
	t.Helper()
	return MakeAPIRequest(router, http.MethodGet, url, authHeader, nil)
}

func MakeGetRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url string,
	authHeader string,
	expectedStatusCode int,
	out any,
) {
	t.Helper()

	w := MakeGetRequest(t, router, url, authHeader)
	assert.Equal(t, expectedStatusCode, w.Code, "unexpected status, body: %s", w.Body.String())

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func MakeRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	method string,
	url string,
	authHeader string,
	body any,
	expectedStatusCode int,
	out any,
) {
	t.Helper()

	w := MakeAPIRequest(router, method, url, authHeader, body)
	assert.Equal(t, expectedStatusCode, w.Code, "unexpected status, body: %s", w.Body.String())

	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
}
