package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/dto"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/pkg/store"
)

func newTestPacketService(t *testing.T) (IPacketService, ISessionService) {
	t.Helper()
	sessionSvc, _ := newTestSessionService(&fakeSessionRepo{})
	return NewPacketService(sessionSvc), sessionSvc
}

func TestCreatePrepends(t *testing.T) {
	svc, sessionSvc := newTestPacketService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, &dto.CreatePacketRequest{Title: "first", Content: "a"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, &dto.CreatePacketRequest{Title: "second", Content: "b"})
	require.NoError(t, err)

	packets := sessionSvc.Current(ctx).Packets
	require.Len(t, packets, 2)
	assert.Equal(t, second.Id, packets[0].Id)
	assert.Equal(t, first.Id, packets[1].Id)
	assert.NotEqual(t, first.Id, second.Id)
}

func TestTogglePinIsIdempotentInPairs(t *testing.T) {
	svc, _ := newTestPacketService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreatePacketRequest{Title: "t", Content: "c"})
	require.NoError(t, err)
	assert.False(t, created.Pinned)

	once, err := svc.TogglePin(ctx, created.Id)
	require.NoError(t, err)
	assert.True(t, once.Pinned)

	twice, err := svc.TogglePin(ctx, created.Id)
	require.NoError(t, err)
	assert.False(t, twice.Pinned)
}

func TestTogglePinUnknownPacket(t *testing.T) {
	svc, _ := newTestPacketService(t)

	_, err := svc.TogglePin(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPacketNotFound)
}

func TestDeleteResetsFocusSelector(t *testing.T) {
	svc, sessionSvc := newTestPacketService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreatePacketRequest{Title: "t", Content: "c"})
	require.NoError(t, err)

	require.NoError(t, svc.SetFocus(ctx, &dto.SetFocusRequest{PacketId: created.Id.String()}))
	assert.Equal(t, created.Id.String(), sessionSvc.Current(ctx).FocusPacketId)

	require.NoError(t, svc.Delete(ctx, created.Id))

	session := sessionSvc.Current(ctx)
	assert.Empty(t, session.Packets)
	// The mutation itself resolves the stale pointer, not the resolver.
	assert.Equal(t, store.FocusAll, session.FocusPacketId)
}

func TestDeleteKeepsUnrelatedFocus(t *testing.T) {
	svc, sessionSvc := newTestPacketService(t)
	ctx := context.Background()

	keep, err := svc.Create(ctx, &dto.CreatePacketRequest{Title: "keep", Content: "c"})
	require.NoError(t, err)
	drop, err := svc.Create(ctx, &dto.CreatePacketRequest{Title: "drop", Content: "c"})
	require.NoError(t, err)

	require.NoError(t, svc.SetFocus(ctx, &dto.SetFocusRequest{PacketId: keep.Id.String()}))
	require.NoError(t, svc.Delete(ctx, drop.Id))

	assert.Equal(t, keep.Id.String(), sessionSvc.Current(ctx).FocusPacketId)
}

func TestDeleteUnknownPacket(t *testing.T) {
	svc, _ := newTestPacketService(t)
	assert.ErrorIs(t, svc.Delete(context.Background(), uuid.New()), ErrPacketNotFound)
}

func TestSetFocusValidatesSelector(t *testing.T) {
	svc, sessionSvc := newTestPacketService(t)
	ctx := context.Background()

	assert.NoError(t, svc.SetFocus(ctx, &dto.SetFocusRequest{PacketId: store.FocusAll}))
	assert.ErrorIs(t, svc.SetFocus(ctx, &dto.SetFocusRequest{PacketId: uuid.NewString()}), ErrPacketNotFound)
	assert.ErrorIs(t, svc.SetFocus(ctx, &dto.SetFocusRequest{PacketId: "not-a-uuid"}), ErrPacketNotFound)

	assert.Equal(t, store.FocusAll, sessionSvc.Current(ctx).FocusPacketId)
}
