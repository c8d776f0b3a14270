package models

// FieldValue represents a field with both raw data and formatted display
type FieldValue struct {
	Raw     interface{} `json:"raw"`     // For clients doing their own formatting: 7, "2024-01-19"
	Display string      `json:"display"` // For UI: "7 dias úteis", "19/01/2024"
	Type    string      `json:"type"`    // For CSS: "date", "business_days", "text"
}

// ExpiryView is one expiry (current or next month) as seen from the reference date
type ExpiryView struct {
	Date         FieldValue `json:"date"`
	BusinessDays FieldValue `json:"business_days"`
	Status       string     `json:"status"` // "pending", "expiry_day" or "expired"
	IsToday      bool       `json:"is_today"`
}

// FormattedSnapshot is the rendered expiry snapshot
type FormattedSnapshot struct {
	ReferenceDate  FieldValue `json:"reference_date"`
	Month          FieldValue `json:"month"`
	CallLetter     string     `json:"call_letter"`
	PutLetter      string     `json:"put_letter"`
	Current        ExpiryView `json:"current_expiry"`
	Next           ExpiryView `json:"next_expiry"`
	NextExpiration FieldValue `json:"next_expiration"`
}

// ResponseMetadata is attached to every successful API response
type ResponseMetadata struct {
	Locale    string `json:"locale"`
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id,omitempty"`
}

// SnapshotResponse represents the complete expiry API response
type SnapshotResponse struct {
	Success bool              `json:"success"`
	Data    FormattedSnapshot `json:"data"`
	Meta    ResponseMetadata  `json:"meta"`
}

// ContractRow is one line of the monthly letter table
type ContractRow struct {
	Month     int    `json:"month" csv:"month"`
	MonthName string `json:"month_name" csv:"month_name"`
	Call      string `json:"call" csv:"call"`
	Put       string `json:"put" csv:"put"`
}

// TableResponse represents the contract table API response
type TableResponse struct {
	Success bool             `json:"success"`
	Data    []ContractRow    `json:"data"`
	Meta    ResponseMetadata `json:"meta"`
}

// LetterInfo describes the series a single contract letter belongs to
type LetterInfo struct {
	Letter     string `json:"letter"`
	Month      int    `json:"month"`
	MonthName  string `json:"month_name"`
	OptionType string `json:"option_type"` // "call" or "put"
}

// LetterResponse represents the letter lookup API response
type LetterResponse struct {
	Success bool             `json:"success"`
	Data    LetterInfo       `json:"data"`
	Meta    ResponseMetadata `json:"meta"`
}

// ErrorResponse is returned with every non-2xx status
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}
