package delete_booking

// DeleteResponse HTTP response model
type DeleteResponse struct {
	Deleted   bool `json:"deleted"`
	Persisted bool `json:"persisted"`
}
