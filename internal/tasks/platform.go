package tasks

import (
	"context"

	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
)

// osRelease is the detection pseudo-task. It is the single writer of the
// run context's OS field; every later precondition only reads it.
func osRelease(detector ports.PlatformDetector) domain.Task {
	return domain.Task{
		Name: "os-release",
		Body: func(ctx context.Context, rc *domain.RunContext) domain.Outcome {
			id, err := detector.Detect(ctx)
			if err != nil {
				return domain.Failure("host identity unknown: " + err.Error())
			}
			rc.OS = id
			return domain.Success("detected " + id.PrettyName)
		},
	}
}
