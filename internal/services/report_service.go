package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"campusmarket/internal/domain"
	"campusmarket/internal/repositories"
	"campusmarket/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReportService renders a seller's listings as a PDF summary.
type ReportService struct {
	Listings  repositories.ListingRepository
	RequestID string
	Loader    func(int64) ([]domain.SellerListing, error)
}

func (s ReportService) SellerListingsPDF(sellerID int64, displayName string) ([]byte, string, error) {
	if sellerID <= 0 {
		return nil, "", domain.ValidationError{Field: "seller", Msg: "missing user id"}
	}

	load := s.Loader
	if load == nil {
		load = s.Listings.SellerListings
	}
	rows, err := load(sellerID)
	if err != nil {
		return nil, "", domain.InternalError{Msg: "report query failed", Err: err}
	}

	utils.LogEvent(s.RequestID, "report", "seller_listings_pdf",
		fmt.Sprintf("seller_id=%d rows=%d", sellerID, len(rows)))
	return buildSellerListingsPDF(displayName, rows)
}

func buildSellerListingsPDF(displayName string, rows []domain.SellerListing) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("My Listings", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "MY LISTINGS")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Seller : %s", displayName))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Date   : %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	widths := []float64{70, 35, 30, 30}
	headers := []string{"Item", "Category", "Status", "Price"}
	pdf.SetFont("Helvetica", "B", 11)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 11)
	var totalCents int64
	for _, row := range rows {
		pdf.CellFormat(widths[0], 8, row.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 8, row.CategoryName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 8, string(row.Status), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 8, row.Price, "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
		if cents, err := utils.MoneyCents(row.Price); err == nil {
			totalCents += cents
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, fmt.Sprintf("%d listing(s), combined asking price %s", len(rows), utils.FormatCents(totalCents)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("MY_LISTINGS_%s.pdf", safeFilenamePart(displayName))
	return buf.Bytes(), filename, nil
}

func safeFilenamePart(s string) string {
	var out strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out.WriteRune(r)
		default:
			out.WriteByte('_')
		}
	}
	if out.Len() == 0 {
		return "seller"
	}
	return out.String()
}
