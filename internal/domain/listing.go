package domain

// ListingStatus is the closed set of lifecycle states for a listing.
// Stored as-is in the listings.status column; never compare against
// raw strings outside this package.
type ListingStatus string

const (
	StatusUnapproved  ListingStatus = "Unapproved"
	StatusActive      ListingStatus = "Active"
	StatusDisapproved ListingStatus = "Disapproved"
	StatusEnded       ListingStatus = "Ended"
	StatusRemoved     ListingStatus = "Removed"
)

// Valid reports whether s is one of the known lifecycle states.
func (s ListingStatus) Valid() bool {
	switch s {
	case StatusUnapproved, StatusActive, StatusDisapproved, StatusEnded, StatusRemoved:
		return true
	}
	return false
}

// PubliclyVisible reports whether the listing shows up in the public
// catalog. Ended listings stay visible alongside Active ones.
func (s ListingStatus) PubliclyVisible() bool {
	return s == StatusActive || s == StatusEnded
}

// Listing is one for-sale item. Price travels as exact decimal text
// (the store casts DECIMAL to CHAR) so currency never touches a float.
type Listing struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       string        `json:"price"`
	CategoryID  int64         `json:"categoryId"`
	Condition   string        `json:"condition"`
	SellerID    int64         `json:"sellerId"`
	Status      ListingStatus `json:"status"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// User is a registered seller. Listings reference users by id only.
type User struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	CampusID    string `json:"campusId"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}
