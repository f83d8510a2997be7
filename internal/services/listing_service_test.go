package services

import (
	"testing"

	"campusmarket/internal/domain"
	"campusmarket/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newListingService(t *testing.T) (ListingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := ListingService{
		Listings:   repositories.ListingRepository{DB: db},
		Categories: repositories.CategoryRepository{DB: db},
	}
	return svc, mock, func() { db.Close() }
}

func TestCreateListingStartsUnapproved(t *testing.T) {
	svc, mock, done := newListingService(t)
	defer done()

	mock.ExpectQuery("SELECT name FROM categories").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Sports"))
	mock.ExpectExec("INSERT INTO listings").
		WithArgs("Mountain bike", "barely used", "149.90", int64(3), "Used", int64(9), "Unapproved").
		WillReturnResult(sqlmock.NewResult(42, 1))

	listing, err := svc.Create(9, NewListing{
		Name:        " Mountain  bike ",
		Description: " barely used ",
		Price:       "149.9",
		CategoryID:  3,
		Condition:   "Used",
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if listing.ID != 42 {
		t.Fatalf("expected id 42, got %d", listing.ID)
	}
	if listing.Status != domain.StatusUnapproved {
		t.Fatalf("new listings must start Unapproved, got %s", listing.Status)
	}
	if listing.Price != "149.90" {
		t.Fatalf("price must be normalized decimal text, got %q", listing.Price)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateListingValidation(t *testing.T) {
	svc, _, done := newListingService(t)
	defer done()

	cases := []NewListing{
		{Name: "", Price: "10.00", CategoryID: 1, Condition: "New"},
		{Name: "Bike", Price: "-5", CategoryID: 1, Condition: "New"},
		{Name: "Bike", Price: "10.00", CategoryID: 0, Condition: "New"},
		{Name: "Bike", Price: "10.00", CategoryID: 1, Condition: "Broken"},
	}
	for i, in := range cases {
		if _, err := svc.Create(9, in); !domain.IsValidation(err) {
			t.Fatalf("case %d must fail validation, got %v", i, err)
		}
	}

	if _, err := svc.Create(0, NewListing{Name: "Bike", Price: "10.00", CategoryID: 1, Condition: "New"}); !domain.IsValidation(err) {
		t.Fatalf("missing seller must fail validation, got %v", err)
	}
}

func TestCreateListingUnknownCategory(t *testing.T) {
	svc, mock, done := newListingService(t)
	defer done()

	mock.ExpectQuery("SELECT name FROM categories").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}))

	_, err := svc.Create(9, NewListing{Name: "Bike", Price: "10.00", CategoryID: 99, Condition: "New"})
	if !domain.IsValidation(err) {
		t.Fatalf("unknown category must fail validation, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
