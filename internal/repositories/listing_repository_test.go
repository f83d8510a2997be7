package repositories

import (
	"testing"

	"campusmarket/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestUpdateStatusAppliedThenNoOp(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := ListingRepository{DB: db}
	from := []domain.ListingStatus{domain.StatusUnapproved}

	mock.ExpectExec("UPDATE listings SET status").
		WithArgs("Active", int64(7), "Unapproved").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE listings SET status").
		WithArgs("Active", int64(7), "Unapproved").
		WillReturnResult(sqlmock.NewResult(0, 0))

	applied, err := repo.UpdateStatus(7, from, domain.StatusActive)
	if err != nil {
		t.Fatalf("first update error: %v", err)
	}
	if !applied {
		t.Fatalf("first conditional update should apply")
	}

	applied, err = repo.UpdateStatus(7, from, domain.StatusActive)
	if err != nil {
		t.Fatalf("second update error: %v", err)
	}
	if applied {
		t.Fatalf("second conditional update must be a no-op")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateStatusRejectsBadInput(t *testing.T) {
	repo := ListingRepository{}

	if _, err := repo.UpdateStatus(0, []domain.ListingStatus{domain.StatusUnapproved}, domain.StatusActive); err == nil {
		t.Fatalf("zero id must be rejected before touching the store")
	}
	if _, err := repo.UpdateStatus(1, nil, domain.StatusActive); err == nil {
		t.Fatalf("empty source state list must be rejected")
	}
	if _, err := repo.UpdateStatus(1, []domain.ListingStatus{domain.StatusActive}, domain.ListingStatus("Broken")); err == nil {
		t.Fatalf("unknown target status must be rejected")
	}
}

func TestSearchScansDecoratedRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := ListingRepository{DB: db}
	plan := BuildSearchPlan(domain.SearchRequest{Keyword: "bike"})

	rows := sqlmock.NewRows([]string{
		"id", "name", "description", "price", "category_id", "category_name",
		"seller_id", "seller_name", "item_condition", "status",
	}).AddRow(1, "Mountain bike", "barely used", "149.99", 3, "Sports", 9, "osbaldo", "Used", "Active")

	mock.ExpectQuery("FROM listings l").
		WithArgs("Active", "Ended", "%bike%", 10, 0).
		WillReturnRows(rows)

	got, err := repo.Search(plan, 10, 0)
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	row := got[0]
	if row.Price != "149.99" {
		t.Fatalf("price must stay exact decimal text, got %q", row.Price)
	}
	if row.CategoryName != "Sports" || row.SellerName != "osbaldo" {
		t.Fatalf("row not decorated: %+v", row)
	}
	if row.Status != domain.StatusActive {
		t.Fatalf("status mismatch: %s", row.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCountSharesPlanPredicates(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := ListingRepository{DB: db}
	plan := BuildSearchPlan(domain.SearchRequest{Keyword: "bike", CategoryID: 3})

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM listings l`).
		WithArgs("Active", "Ended", "%bike%", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(23))

	total, err := repo.Count(plan)
	if err != nil {
		t.Fatalf("count error: %v", err)
	}
	if total != 23 {
		t.Fatalf("expected 23, got %d", total)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSellerListingsCastsPriceToText(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := ListingRepository{DB: db}

	rows := sqlmock.NewRows([]string{"id", "name", "status", "category_name", "price"}).
		AddRow(4, "Desk lamp", "Unapproved", "Furniture", "19.90").
		AddRow(2, "Textbook", "Active", "", "80.00")

	mock.ExpectQuery(`CAST\(l.price AS CHAR\)`).
		WithArgs(int64(9)).
		WillReturnRows(rows)

	got, err := repo.SellerListings(9)
	if err != nil {
		t.Fatalf("seller listings error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].Price != "19.90" || got[1].Price != "80.00" {
		t.Fatalf("prices must be exact decimal text: %+v", got)
	}
	if got[1].CategoryName != "" {
		t.Fatalf("missing category must resolve to empty name")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSuggestionsReturnsNamesOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := ListingRepository{DB: db}

	mock.ExpectQuery("SELECT l.name FROM listings l").
		WithArgs("Active", "Ended", "%bi%", "%bi%", 20).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Bike").AddRow("Binder"))

	names, err := repo.Suggestions("bi", 20)
	if err != nil {
		t.Fatalf("suggestions error: %v", err)
	}
	if len(names) != 2 || names[0] != "Bike" {
		t.Fatalf("unexpected names: %v", names)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
