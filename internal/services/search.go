package services

// SearchItem is a single name-search hit
type SearchItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// SearchResults carries the hits for a name search together with the count
type SearchResults struct {
	Count int          `json:"count"`
	Data  []SearchItem `json:"data"`
}
