package domain

// SearchRequest carries every filter/sort/paging value of one catalog
// query. It is built once per request and passed through the query
// plan builder and pagination unchanged; nothing request-scoped lives
// anywhere else.
type SearchRequest struct {
	Keyword    string
	CategoryID int64 // 0 = no category filter
	PriceMin   string
	PriceMax   string
	Condition  string
	Sort       string
	Page       int
}

// SearchRow is one catalog hit decorated for presentation. The
// category name is empty when the referenced category vanished
// between write and read.
type SearchRow struct {
	Listing
	CategoryName string `json:"categoryName"`
	SellerName   string `json:"sellerName"`
}

// SearchResult is the assembled, paginated answer to one request.
type SearchResult struct {
	Items                []SearchRow `json:"items"`
	Total                int         `json:"total"`
	TotalPages           int         `json:"totalPages"`
	CurrentPage          int         `json:"currentPage"`
	PageLimit            int         `json:"pageLimit"`
	SelectedCategoryName string      `json:"selectedCategoryName,omitempty"`
}

// SellerListing is one row of the seller dashboard.
type SellerListing struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Status       ListingStatus `json:"status"`
	CategoryName string        `json:"categoryName"`
	Price        string        `json:"price"`
}

// ModerationRow is one row of the administrator dashboard.
type ModerationRow struct {
	Listing
	SellerEmail string `json:"sellerEmail"`
}
