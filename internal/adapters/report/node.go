package report

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/upkeep/internal/core/ports"
)

// NodeID is the unique identifier for the report sink factory Graft node.
const NodeID graft.ID = "adapter.report"

func init() {
	graft.Register(graft.Node[ports.SinkFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.SinkFactory, error) {
			// The sink itself is opened per run, once the date-stamped
			// path is known.
			return func(path string) (ports.ReportSink, error) {
				return Open(path, os.Stdout)
			}, nil
		},
	})
}
