package valueobjects

import "fmt"

// DocumentStatus models the document workflow. Transitions run along an
// explicit table; writing a status outside it is rejected. The "expired"
// condition (published document past its review-due date) is computed, never
// stored as a status.
type DocumentStatus string

const (
	StatusDraft         DocumentStatus = "draft"
	StatusPendingReview DocumentStatus = "pending_review"
	StatusApproved      DocumentStatus = "approved"
	StatusPublished     DocumentStatus = "published"
	StatusArchived      DocumentStatus = "archived"
)

var validDocumentStatuses = map[DocumentStatus]bool{
	StatusDraft:         true,
	StatusPendingReview: true,
	StatusApproved:      true,
	StatusPublished:     true,
	StatusArchived:      true,
}

var documentStatusTransitions = map[DocumentStatus][]DocumentStatus{
	StatusDraft: {
		StatusPendingReview,
	},
	StatusPendingReview: {
		StatusDraft, // rejected back to author
		StatusApproved,
	},
	StatusApproved: {
		StatusPublished,
		StatusDraft, // reopened for edits before publication
	},
	StatusPublished: {
		StatusArchived,
	},
	StatusArchived: {
		// terminal
	},
}

func (s DocumentStatus) String() string {
	return string(s)
}

func (s DocumentStatus) IsValid() bool {
	return validDocumentStatuses[s]
}

func (s DocumentStatus) CanTransitionTo(target DocumentStatus) bool {
	for _, allowed := range documentStatusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the statuses reachable from s.
func (s DocumentStatus) AllowedTransitions() []DocumentStatus {
	return append([]DocumentStatus(nil), documentStatusTransitions[s]...)
}

func (s DocumentStatus) IsDraft() bool         { return s == StatusDraft }
func (s DocumentStatus) IsPendingReview() bool { return s == StatusPendingReview }
func (s DocumentStatus) IsApproved() bool      { return s == StatusApproved }
func (s DocumentStatus) IsPublished() bool     { return s == StatusPublished }
func (s DocumentStatus) IsArchived() bool      { return s == StatusArchived }

// IsTerminal reports whether no further transitions are possible.
func (s DocumentStatus) IsTerminal() bool {
	return len(documentStatusTransitions[s]) == 0
}

func NewDocumentStatus(value string) (DocumentStatus, error) {
	s := DocumentStatus(value)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid document status: %s", value)
	}
	return s, nil
}
