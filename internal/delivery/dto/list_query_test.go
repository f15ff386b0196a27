package dto

import (
	"errors"
	"net/url"
	"testing"
)

func patientTestOptions() ListQueryOptions {
	return ListQueryOptions{
		DefaultSortBy:    "created_at",
		DefaultSortOrder: "desc",
		SortColumns: map[string]string{
			"name":       "name",
			"created_at": "created_at",
		},
	}
}

func TestParseListQueryDefaults(t *testing.T) {
	q, err := ParseListQuery(url.Values{}, patientTestOptions())
	if err != nil {
		t.Fatalf("ParseListQuery error = %v", err)
	}

	if q.Page != 1 {
		t.Errorf("Page = %d, want 1", q.Page)
	}
	if q.Limit != 10 {
		t.Errorf("Limit = %d, want 10", q.Limit)
	}
	if q.SortBy != "created_at" {
		t.Errorf("SortBy = %q, want created_at", q.SortBy)
	}
	if q.SortOrder != "desc" {
		t.Errorf("SortOrder = %q, want desc", q.SortOrder)
	}
}

func TestParseListQueryValidation(t *testing.T) {
	tests := []struct {
		name    string
		values  url.Values
		wantErr error
	}{
		{name: "page zero", values: url.Values{"page": {"0"}}, wantErr: ErrInvalidPage},
		{name: "page negative", values: url.Values{"page": {"-2"}}, wantErr: ErrInvalidPage},
		{name: "page not a number", values: url.Values{"page": {"abc"}}, wantErr: ErrInvalidPage},
		{name: "limit zero", values: url.Values{"limit": {"0"}}, wantErr: ErrInvalidLimit},
		{name: "limit above max", values: url.Values{"limit": {"101"}}, wantErr: ErrInvalidLimit},
		{name: "limit not a number", values: url.Values{"limit": {"ten"}}, wantErr: ErrInvalidLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseListQuery(tt.values, patientTestOptions())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseListQuery error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseListQueryBounds(t *testing.T) {
	q, err := ParseListQuery(url.Values{"page": {"3"}, "limit": {"100"}}, patientTestOptions())
	if err != nil {
		t.Fatalf("ParseListQuery error = %v", err)
	}
	if q.Page != 3 || q.Limit != 100 {
		t.Errorf("got page=%d limit=%d, want page=3 limit=100", q.Page, q.Limit)
	}
}

func TestParseListQuerySortAllowList(t *testing.T) {
	// Allowed sortBy names map onto real column names.
	q, err := ParseListQuery(url.Values{"sortBy": {"name"}, "sortOrder": {"asc"}}, patientTestOptions())
	if err != nil {
		t.Fatalf("ParseListQuery error = %v", err)
	}
	if q.SortBy != "name" || q.SortOrder != "asc" {
		t.Errorf("got sortBy=%q sortOrder=%q, want name asc", q.SortBy, q.SortOrder)
	}

	// Unknown sortBy falls back to the default instead of passing through.
	q, err = ParseListQuery(url.Values{"sortBy": {"password; DROP TABLE"}}, patientTestOptions())
	if err != nil {
		t.Fatalf("ParseListQuery error = %v", err)
	}
	if q.SortBy != "created_at" {
		t.Errorf("SortBy = %q, want created_at fallback", q.SortBy)
	}

	// Unknown sortOrder keeps the default.
	q, err = ParseListQuery(url.Values{"sortOrder": {"sideways"}}, patientTestOptions())
	if err != nil {
		t.Fatalf("ParseListQuery error = %v", err)
	}
	if q.SortOrder != "desc" {
		t.Errorf("SortOrder = %q, want desc fallback", q.SortOrder)
	}
}

func TestParseListQuerySearch(t *testing.T) {
	q, err := ParseListQuery(url.Values{"search": {"maria"}}, patientTestOptions())
	if err != nil {
		t.Fatalf("ParseListQuery error = %v", err)
	}
	if q.Search != "maria" {
		t.Errorf("Search = %q, want maria", q.Search)
	}
}
