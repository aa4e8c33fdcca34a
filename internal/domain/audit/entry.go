// Package audit records an immutable trail of privileged actions.
package audit

import (
	"context"
	"time"

	"github.com/agewithcare/policyhub/internal/shared/biztime"
)

// Action names the audited operation.
type Action string

const (
	ActionLogin          Action = "login"
	ActionLogout         Action = "logout"
	ActionDocumentCreate Action = "document.create"
	ActionDocumentUpdate Action = "document.update"
	ActionDocumentDelete Action = "document.delete"
	ActionStatusChange   Action = "document.status_change"
	ActionVersionUpload  Action = "document.version_upload"
	ActionUserCreate     Action = "user.create"
	ActionUserUpdate     Action = "user.update"
	ActionUserDelete     Action = "user.delete"
	ActionRolesAssign    Action = "user.roles_assign"
)

// Entry is one append-only audit record. Entries are never updated or
// deleted.
type Entry struct {
	ID         uint
	ActorID    uint
	Action     Action
	ObjectType string
	ObjectID   uint
	Changes    map[string]interface{}
	IPAddress  string
	UserAgent  string
	RequestID  string
	CreatedAt  time.Time
}

// NewEntry builds an audit record for the given actor and action.
func NewEntry(actorID uint, action Action, objectType string, objectID uint) *Entry {
	return &Entry{
		ActorID:    actorID,
		Action:     action,
		ObjectType: objectType,
		ObjectID:   objectID,
		Changes:    map[string]interface{}{},
		CreatedAt:  biztime.NowUTC(),
	}
}

// WithChange adds a key to the change payload.
func (e *Entry) WithChange(key string, value interface{}) *Entry {
	e.Changes[key] = value
	return e
}

// WithRequest attaches request metadata.
func (e *Entry) WithRequest(ip, userAgent, requestID string) *Entry {
	e.IPAddress = ip
	e.UserAgent = userAgent
	e.RequestID = requestID
	return e
}

// Recorder persists audit entries. Writes are best-effort: callers log a
// failed write but never fail the originating request on it.
type Recorder interface {
	Record(ctx context.Context, entry *Entry) error
	List(ctx context.Context, actorID uint, limit int) ([]*Entry, error)
}
