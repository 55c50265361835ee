package models

// SearchResult holds the matches of one recursive search, in visit order
type SearchResult struct {
	Root    string   `json:"root"`
	Pattern string   `json:"pattern"`
	Paths   []string `json:"paths"`
}

// Len returns the number of matches
func (r *SearchResult) Len() int {
	return len(r.Paths)
}

// IsEmpty reports whether nothing matched
func (r *SearchResult) IsEmpty() bool {
	return len(r.Paths) == 0
}
