package models

// Vote choice constants
const (
	VoteYes = "yes"
	VoteNo  = "no"
)

// Request types

type CreateFeatureRequest struct {
	Name string `json:"name"`
}

type AddVoteRequest struct {
	FeatureID string `json:"featureId"`
	Vote      string `json:"vote"`
}

// Response types

type AddVoteResponse struct {
	Message string `json:"message"`
	Data    Vote   `json:"data"`
}

// Domain types

type Feature struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Vote is the yes/no tally for a single feature, not an individual ballot.
// Feature holds the referenced feature's ID.
type Vote struct {
	ID       string `json:"id"`
	Feature  string `json:"feature"`
	YesCount int64  `json:"yesCount"`
	NoCount  int64  `json:"noCount"`
}

// VoteWithFeature is a tally with its feature resolved inline.
// Feature is nil when the referenced feature no longer exists.
type VoteWithFeature struct {
	ID       string   `json:"id"`
	Feature  *Feature `json:"feature"`
	YesCount int64    `json:"yesCount"`
	NoCount  int64    `json:"noCount"`
}

// IsValidVote reports whether v is one of the accepted vote choices
func IsValidVote(v string) bool {
	return v == VoteYes || v == VoteNo
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
