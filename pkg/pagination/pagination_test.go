package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func ctxWithQuery(query string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestFromContextDefaults(t *testing.T) {
	p := FromContext(ctxWithQuery(""))
	if p.Page != 1 || p.PageSize != DefaultPageSize {
		t.Errorf("params = %+v, want page 1 size %d", p, DefaultPageSize)
	}
}

func TestFromContextExplicit(t *testing.T) {
	p := FromContext(ctxWithQuery("page=3&pageSize=50"))
	if p.Page != 3 || p.PageSize != 50 {
		t.Errorf("params = %+v, want page 3 size 50", p)
	}
	if p.Offset() != 100 {
		t.Errorf("offset = %d, want 100", p.Offset())
	}
}

func TestFromContextCountFallback(t *testing.T) {
	p := FromContext(ctxWithQuery("_count=10"))
	if p.PageSize != 10 {
		t.Errorf("pageSize = %d, want 10", p.PageSize)
	}
}

func TestFromContextClampsSize(t *testing.T) {
	p := FromContext(ctxWithQuery("pageSize=9999"))
	if p.PageSize != MaxPageSize {
		t.Errorf("pageSize = %d, want %d", p.PageSize, MaxPageSize)
	}
}

func TestFromContextBadValues(t *testing.T) {
	p := FromContext(ctxWithQuery("page=-2&pageSize=abc"))
	if p.Page != 1 || p.PageSize != DefaultPageSize {
		t.Errorf("params = %+v, want defaults", p)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, pageSize, want int
	}{
		{0, 20, 1},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{5, 2, 3},
		{5, 0, 1},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.pageSize); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.pageSize, got, tc.want)
		}
	}
}
