package site_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bistro/modules/site"
	"github.com/dmitrymomot/bistro/modules/site/views"
	"github.com/dmitrymomot/bistro/pkg/logger"
	"github.com/dmitrymomot/bistro/pkg/validator"
)

// Saturday, 2026-10-17 14:30:20 UTC.
var fixedNow = time.Date(2026, time.October, 17, 14, 30, 20, 0, time.UTC)

func newValidator() *validator.Validator {
	return validator.New(validator.Config{
		Rules:                  validator.DefaultRules(),
		DateField:              validator.FieldBookingDate,
		TimeField:              validator.FieldBookingTime,
		FallbackPatternMessage: "Please check this value",
		Location:               time.UTC,
	}, validator.WithClock(func() time.Time { return fixedNow }))
}

type testSite struct {
	handler http.Handler
	logs    *bytes.Buffer
}

func newTestSite(t *testing.T, opts ...site.ServiceOption) *testSite {
	t.Helper()
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))
	opts = append([]site.ServiceOption{site.WithReferenceGenerator(func() string { return "ref-1" })}, opts...)
	svc := site.NewService(newValidator(), views.New(), log, opts...)
	return &testSite{handler: svc.Handle(), logs: &buf}
}

func (s *testSite) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

// logRecords decodes every JSON log line with the given message.
func (s *testSite) logRecords(t *testing.T, msg string) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(s.logs.Bytes()))
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		if rec["msg"] == msg {
			out = append(out, rec)
		}
	}
	return out
}

type signals struct {
	Fields  map[string]string `json:"fields,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Invalid map[string]bool   `json:"invalid,omitempty"`
	Notices map[string]string `json:"notices,omitempty"`
}

func datastarRequest(t *testing.T, target string, s signals) *http.Request {
	t.Helper()
	body, err := json.Marshal(s)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Datastar-Request", "true")
	req.Header.Set("Content-Type", "application/json")
	return req
}

func formRequest(target string, values map[string]string) *http.Request {
	form := url.Values{}
	for k, v := range values {
		form.Set(k, v)
	}
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// patches extracts the JSON payload of every datastar-patch-signals event.
func patches(t *testing.T, body string) []signals {
	t.Helper()
	var out []signals
	for _, event := range strings.Split(body, "\n\n") {
		if !strings.Contains(event, "datastar-patch-signals") {
			continue
		}
		for _, line := range strings.Split(event, "\n") {
			data, ok := strings.CutPrefix(line, "data: signals ")
			if !ok {
				continue
			}
			var s signals
			require.NoError(t, json.Unmarshal([]byte(data), &s))
			out = append(out, s)
		}
	}
	return out
}

func withTimeout(t *testing.T, req *http.Request, d time.Duration) *http.Request {
	t.Helper()
	ctx, cancel := context.WithTimeout(req.Context(), d)
	t.Cleanup(cancel)
	return req.WithContext(ctx)
}
