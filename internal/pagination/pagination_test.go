package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/blogforge/blog-backend/internal/pagination"
)

func TestParse_Defaults(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/posts", nil)
	p := pagination.Parse(req)

	if p.Page != 1 || p.Limit != 10 {
		t.Errorf("expected defaults 1/10, got %d/%d", p.Page, p.Limit)
	}
	if p.Offset() != 0 {
		t.Errorf("expected offset 0, got %d", p.Offset())
	}
}

func TestParse_ExplicitValues(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/posts?page=3&limit=5", nil)
	p := pagination.Parse(req)

	if p.Page != 3 || p.Limit != 5 {
		t.Errorf("expected 3/5, got %d/%d", p.Page, p.Limit)
	}
	if p.Offset() != 10 {
		t.Errorf("expected offset 10, got %d", p.Offset())
	}
}

func TestParse_IgnoresGarbage(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/posts?page=abc&limit=-2", nil)
	p := pagination.Parse(req)

	if p.Page != 1 || p.Limit != 10 {
		t.Errorf("expected defaults on bad input, got %d/%d", p.Page, p.Limit)
	}
}

func TestNewMeta_RoundsUp(t *testing.T) {
	meta := pagination.NewMeta(pagination.Params{Page: 1, Limit: 10}, 21)

	if meta.TotalPages != 3 {
		t.Errorf("expected ceil(21/10)=3 pages, got %d", meta.TotalPages)
	}
	if !meta.HasNextPage || meta.HasPrevPage {
		t.Errorf("unexpected paging flags on first page: %+v", meta)
	}
}

func TestNewMeta_LastPage(t *testing.T) {
	meta := pagination.NewMeta(pagination.Params{Page: 3, Limit: 10}, 21)

	if meta.HasNextPage {
		t.Error("last page should not have a next page")
	}
	if !meta.HasPrevPage {
		t.Error("last page should have a previous page")
	}
}

func TestNewMeta_Empty(t *testing.T) {
	meta := pagination.NewMeta(pagination.Params{Page: 1, Limit: 10}, 0)

	if meta.TotalPages != 0 || meta.HasNextPage || meta.HasPrevPage {
		t.Errorf("unexpected meta for empty result set: %+v", meta)
	}
}
