package privilege

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/upkeep/internal/core/ports"
)

// NodeID is the unique identifier for the privilege guard Graft node.
const NodeID graft.ID = "adapter.privilege"

func init() {
	graft.Register(graft.Node[ports.PrivilegeGuard]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.PrivilegeGuard, error) {
			return NewGuard(), nil
		},
	})
}
