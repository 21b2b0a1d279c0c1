package models

// WriteResult mirrors the acknowledgement MongoDB returns for a write.
type WriteResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	InsertedID    any   `json:"insertedId,omitempty"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId,omitempty"`
	DeletedCount  int64 `json:"deletedCount"`
}
