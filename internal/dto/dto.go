package dto

// SnapshotRequest represents the query string of an expiry snapshot request
type SnapshotRequest struct {
	Date   string `schema:"date"`   // YYYY-MM-DD, empty = today
	Locale string `schema:"locale"` // pt-BR, en-US; empty = Accept-Language
}

// TableRequest represents the query string of a contract table request
type TableRequest struct {
	Locale string `schema:"locale"`
	Format string `schema:"format"` // "json" (default) or "csv"
}
