package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bistro/handler"
	"github.com/dmitrymomot/bistro/pkg/binder"
)

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

type greetRequest struct {
	Name string `query:"name" form:"name"`
}

func datastarPost(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(handler.DataStarRequestHeader, "true")
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestWrap_Binders(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(func(_ handler.Context, req greetRequest) handler.Response {
		return handler.Templ(text("hello " + req.Name))
	}, handler.WithBinders[handler.Context, greetRequest](binder.Query(), binder.Form()))

	t.Run("query", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/?name=ada", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "hello ada", rec.Body.String())
	})

	t.Run("form overrides query", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/?name=ada", strings.NewReader(url.Values{"name": {"grace"}}.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h(rec, req)
		assert.Equal(t, "hello grace", rec.Body.String())
	})

	t.Run("bind error uses error handler", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("x"))
		req.Header.Set("Content-Type", "application/xml")
		rec := httptest.NewRecorder()
		h(rec, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}

func TestWrap_Decorators(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) handler.Decorator[handler.Context, struct{}] {
		return func(next handler.HandlerFunc[handler.Context, struct{}]) handler.HandlerFunc[handler.Context, struct{}] {
			return func(ctx handler.Context, req struct{}) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.Wrap(func(handler.Context, struct{}) handler.Response {
		order = append(order, "handler")
		return handler.Templ(text("ok"))
	}, handler.WithDecorators(mark("outer"), mark("inner")))

	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestWrap_Errors(t *testing.T) {
	t.Parallel()

	var got error
	onErr := handler.WithErrorHandler[handler.Context, struct{}](func(ctx handler.Context, err error) {
		got = err
		ctx.ResponseWriter().WriteHeader(handler.StatusCode(err))
	})

	rec := httptest.NewRecorder()
	handler.Wrap(func(handler.Context, struct{}) handler.Response { return nil }, onErr)(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, got, handler.ErrNilResponse)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	teapot := handler.NewHTTPError(http.StatusTeapot, "teapot")
	handler.Wrap(func(handler.Context, struct{}) handler.Response { return handler.Error(teapot) }, onErr)(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, teapot, got)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestStatusCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusOK, handler.StatusCode(nil))
	assert.Equal(t, http.StatusNotFound, handler.StatusCode(handler.NewHTTPError(http.StatusNotFound, "nf")))
	assert.Equal(t, http.StatusBadRequest, handler.StatusCode(binder.ErrInvalidSignals))
	assert.Equal(t, http.StatusUnsupportedMediaType, handler.StatusCode(binder.ErrUnsupportedMediaType))
	assert.Equal(t, http.StatusInternalServerError, handler.StatusCode(errors.New("boom")))
	assert.Equal(t, "nf", handler.NewHTTPError(http.StatusNotFound, "nf").Error())
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, handler.IsDataStar(req))

	req.Header.Set(handler.DataStarRequestHeader, "true")
	assert.True(t, handler.IsDataStar(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "text/event-stream")
	assert.True(t, handler.IsDataStar(req))

	assert.True(t, handler.IsDataStar(httptest.NewRequest(http.MethodGet, "/?datastar=%7B%7D", nil)))
}

func TestTempl(t *testing.T) {
	t.Parallel()

	t.Run("html with status", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		require.NoError(t, handler.TemplStatus(http.StatusUnprocessableEntity, text("<p>x</p>")).Render(rec, httptest.NewRequest(http.MethodPost, "/", nil)))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "<p>x</p>", rec.Body.String())
	})

	t.Run("datastar patch", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		resp := handler.Templ(text(`<p id="x">x</p>`), handler.WithTarget("#x"), handler.WithPatchMode(handler.PatchInner))
		require.NoError(t, resp.Render(rec, datastarPost("/", "{}")))
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
		assert.Contains(t, rec.Body.String(), "datastar-patch-elements")
		assert.Contains(t, rec.Body.String(), `<p id="x">x</p>`)
	})

	t.Run("partial", func(t *testing.T) {
		t.Parallel()
		resp := handler.TemplPartial(text("<form></form>"), text("<html></html>"))

		rec := httptest.NewRecorder()
		require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, "<html></html>", rec.Body.String())

		rec = httptest.NewRecorder()
		require.NoError(t, resp.Render(rec, datastarPost("/", "{}")))
		assert.Contains(t, rec.Body.String(), "<form></form>")
	})
}

func TestSSE(t *testing.T) {
	t.Parallel()

	resp := handler.SSE(func(s handler.StreamContext) error {
		if err := s.SendSignals(map[string]any{"notices": map[string]string{"formSuccess": "hi"}}); err != nil {
			return err
		}
		return s.SendComponent(text(`<div id="a"></div>`))
	})

	rec := httptest.NewRecorder()
	require.NoError(t, resp.Render(rec, datastarPost("/", "{}")))
	body := rec.Body.String()
	assert.Contains(t, body, "datastar-patch-signals")
	assert.Contains(t, body, `{"notices":{"formSuccess":"hi"}}`)
	assert.Contains(t, body, `<div id="a"></div>`)

	err := resp.Render(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
	assert.ErrorIs(t, err, handler.ErrNotDataStar)

	bad := handler.SSE(func(s handler.StreamContext) error { return s.SendSignals(make(chan int)) })
	assert.Error(t, bad.Render(httptest.NewRecorder(), datastarPost("/", "{}")))
}
