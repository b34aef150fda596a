// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-translate/auth"
	"github.com/danielhkuo/quickly-translate/cliparse"
)

// Test credentials understood by the fake providers
const (
	TestBaiduAppID  = "test-app-id"
	TestBaiduSecret = "test-secret"
	TestPixabayKey  = "test-pixabay-key"
)

// Upstreams holds fake provider servers for one test
type Upstreams struct {
	Baidu      *httptest.Server
	Dictionary *httptest.Server
	Pixabay    *httptest.Server
}

// NewUpstreams starts fake providers. A nil handler gets a default one.
func NewUpstreams(t *testing.T, baidu, dictionary, pixabay http.HandlerFunc) *Upstreams {
	t.Helper()

	if baidu == nil {
		baidu = BaiduEcho(t)
	}
	if dictionary == nil {
		dictionary = JSONHandler(http.StatusOK, `[{"word":"hello","meanings":[]}]`)
	}
	if pixabay == nil {
		pixabay = JSONHandler(http.StatusOK, `{"total":0,"totalHits":0,"hits":[]}`)
	}

	u := &Upstreams{
		Baidu:      httptest.NewServer(baidu),
		Dictionary: httptest.NewServer(dictionary),
		Pixabay:    httptest.NewServer(pixabay),
	}
	t.Cleanup(func() {
		u.Baidu.Close()
		u.Dictionary.Close()
		u.Pixabay.Close()
	})
	return u
}

// Config returns a relay configuration pointing at the fake providers
func (u *Upstreams) Config() cliparse.Config {
	return cliparse.Config{
		Port:              3000,
		Env:               "test",
		LogLevel:          "error",
		BaiduAppID:        TestBaiduAppID,
		BaiduSecretKey:    TestBaiduSecret,
		PixabayKey:        TestPixabayKey,
		BaiduURL:          u.Baidu.URL,
		DictionaryURL:     u.Dictionary.URL,
		PixabayURL:        u.Pixabay.URL,
		DictionaryTimeout: 2 * time.Second,
	}
}

// JSONHandler answers every request with status and body
func JSONHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

// SlowHandler blocks until the client gives up or d passes
func SlowHandler(d time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(d):
		}
	}
}

// BaiduEcho verifies the request signature and echoes q prefixed with the
// target language as the translation.
func BaiduEcho(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("fake provider: ParseForm: %v", err)
		}
		f := r.PostForm
		if err := auth.VerifySign(TestBaiduAppID, f.Get("q"), f.Get("salt"), TestBaiduSecret, f.Get("sign")); err != nil {
			JSONHandler(http.StatusOK, `{"error_code":"54001","error_msg":"Invalid Sign"}`)(w, r)
			return
		}

		from := f.Get("from")
		if from == "auto" {
			from = "zh"
		}
		body, _ := json.Marshal(map[string]any{
			"from": from,
			"to":   f.Get("to"),
			"trans_result": []map[string]string{
				{"src": f.Get("q"), "dst": "[" + f.Get("to") + "] " + f.Get("q")},
			},
		})
		JSONHandler(http.StatusOK, string(body))(w, r)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
