// Package bookmark lets users pin documents for quick access.
package bookmark

import (
	"context"
	"fmt"
	"time"

	"github.com/agewithcare/policyhub/internal/shared/biztime"
)

// Bookmark links a user to a document they pinned.
type Bookmark struct {
	UserID     uint
	DocumentID uint
	CreatedAt  time.Time
}

func NewBookmark(userID, documentID uint) (*Bookmark, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if documentID == 0 {
		return nil, fmt.Errorf("document ID is required")
	}
	return &Bookmark{
		UserID:     userID,
		DocumentID: documentID,
		CreatedAt:  biztime.NowUTC(),
	}, nil
}

type Repository interface {
	// Add is idempotent: bookmarking an already-bookmarked document succeeds.
	Add(ctx context.Context, b *Bookmark) error
	Remove(ctx context.Context, userID, documentID uint) error
	ListDocumentIDs(ctx context.Context, userID uint) ([]uint, error)
	Exists(ctx context.Context, userID, documentID uint) (bool, error)
}
