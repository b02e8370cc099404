package contract

import (
	"context"

	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/pkg/store"
)

// SessionRepository persists the whole session as one opaque blob under the
// fixed storage key. Load returns (nil, nil) when nothing was stored yet;
// corrupt data surfaces as an error the caller absorbs into default state.
type SessionRepository interface {
	Load(ctx context.Context) (*store.Session, error)
	Save(ctx context.Context, session *store.Session) error
}
