package focus

import (
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/entity"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/pkg/store"
)

// Resolve returns the packets in scope for a generation request. The "all"
// sentinel and any selector that no longer names a live packet (e.g. a stale
// pointer left by a delete) resolve to the full sequence in store order;
// otherwise the result is the singleton matching the selector.
//
// Pure function of its inputs; callers recompute it on every request because
// packets can mutate between calls.
func Resolve(selector string, packets []*entity.Packet) []*entity.Packet {
	if selector == store.FocusAll {
		return packets
	}
	for _, p := range packets {
		if p.Id.String() == selector {
			return []*entity.Packet{p}
		}
	}
	return packets
}

// Scoped reports whether the selector actually narrows scope to one live
// packet. A stale selector is not scoped: it falls back to "all" semantics.
func Scoped(selector string, packets []*entity.Packet) bool {
	if selector == store.FocusAll {
		return false
	}
	for _, p := range packets {
		if p.Id.String() == selector {
			return true
		}
	}
	return false
}
