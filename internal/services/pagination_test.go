package services

import (
	"errors"
	"testing"

	"campusmarket/internal/domain"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		page       int
		limit      int
		wantOffset int
		wantTotal  int
		wantErr    error
	}{
		{name: "first page of 23 rows", total: 23, page: 1, limit: 10, wantOffset: 0, wantTotal: 3},
		{name: "middle page", total: 23, page: 2, limit: 10, wantOffset: 10, wantTotal: 3},
		{name: "last partial page", total: 23, page: 3, limit: 10, wantOffset: 20, wantTotal: 3},
		{name: "exact multiple", total: 20, page: 2, limit: 10, wantOffset: 10, wantTotal: 2},
		{name: "single page", total: 3, page: 1, limit: 10, wantOffset: 0, wantTotal: 1},
		{name: "page past the end", total: 23, page: 4, limit: 10, wantErr: ErrPageOutOfRange},
		{name: "page zero", total: 23, page: 0, limit: 10, wantErr: ErrPageOutOfRange},
		{name: "negative page", total: 23, page: -5, limit: 10, wantErr: ErrPageOutOfRange},
		{name: "no matches", total: 0, page: 1, limit: 10, wantErr: ErrPageOutOfRange},
		{name: "no matches high page", total: 0, page: 7, limit: 10, wantErr: ErrPageOutOfRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page, err := Paginate(tc.total, tc.page, tc.limit)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if page.Offset != tc.wantOffset {
				t.Fatalf("offset = %d, want %d", page.Offset, tc.wantOffset)
			}
			if page.Total != tc.wantTotal {
				t.Fatalf("total pages = %d, want %d", page.Total, tc.wantTotal)
			}
			if page.Limit != tc.limit || page.Current != tc.page {
				t.Fatalf("limit/current not carried through: %+v", page)
			}
			if page.Offset < 0 {
				t.Fatalf("offset must never be negative")
			}
		})
	}
}

func TestPaginateZeroTotalReportsZeroPages(t *testing.T) {
	page, err := Paginate(0, 1, 10)
	if !errors.Is(err, ErrPageOutOfRange) {
		t.Fatalf("expected redirect signal, got %v", err)
	}
	if page.Total != 0 {
		t.Fatalf("total pages must be 0 when nothing matches, got %d", page.Total)
	}
}

func TestPaginateRejectsBadLimit(t *testing.T) {
	if _, err := Paginate(10, 1, 0); !domain.IsValidation(err) {
		t.Fatalf("zero limit must be a validation error, got %v", err)
	}
	if _, err := Paginate(-1, 1, 10); !domain.IsValidation(err) {
		t.Fatalf("negative total must be a validation error, got %v", err)
	}
}
