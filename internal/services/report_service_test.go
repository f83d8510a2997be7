package services

import (
	"bytes"
	"testing"

	"campusmarket/internal/domain"
)

func TestSellerListingsPDF(t *testing.T) {
	svc := ReportService{
		Loader: func(sellerID int64) ([]domain.SellerListing, error) {
			if sellerID != 9 {
				t.Fatalf("unexpected seller id %d", sellerID)
			}
			return []domain.SellerListing{
				{ID: 1, Name: "Mountain bike", Status: domain.StatusActive, CategoryName: "Sports", Price: "149.99"},
				{ID: 2, Name: "Desk lamp", Status: domain.StatusUnapproved, CategoryName: "Furniture", Price: "19.90"},
			}, nil
		},
	}

	pdfBytes, filename, err := svc.SellerListingsPDF(9, "gator")
	if err != nil {
		t.Fatalf("report error: %v", err)
	}
	if len(pdfBytes) == 0 || !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatalf("expected PDF output, got %d bytes", len(pdfBytes))
	}
	if filename != "MY_LISTINGS_gator.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestSellerListingsPDFRejectsMissingUser(t *testing.T) {
	svc := ReportService{}
	if _, _, err := svc.SellerListingsPDF(0, ""); !domain.IsValidation(err) {
		t.Fatalf("missing seller id must be a validation error, got %v", err)
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := safeFilenamePart("g?tor 99"); got != "g_tor_99" {
		t.Fatalf("safeFilenamePart = %q", got)
	}
	if got := safeFilenamePart("  "); got != "seller" {
		t.Fatalf("blank input must fall back, got %q", got)
	}
}
