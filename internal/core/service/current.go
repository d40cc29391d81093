package service

import (
	"context"
	"fmt"

	"github.com/yndnr/iotlab-go/internal/cli/connection"
	"github.com/yndnr/iotlab-go/internal/core/domain"
)

// CurrentExperiment returns the id of the user's only running experiment.
func CurrentExperiment(ctx context.Context, l ExperimentLister) (int, error) {
	res, err := l.GetExperiments(ctx, domain.DefaultExperimentState, 0, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to list running experiments: %w", err)
	}

	s, ok := res.(connection.Structured)
	if !ok {
		return 0, domain.ErrUnexpectedResponse.WithDetails("experiment list is not JSON")
	}
	var list domain.ExperimentList
	if err := s.Decode(&list); err != nil {
		return 0, domain.ErrUnexpectedResponse.WithCause(err)
	}

	switch len(list.Items) {
	case 0:
		return 0, domain.ErrNoRunningExperiment
	case 1:
		return list.Items[0].ID, nil
	default:
		ids := make([]int, len(list.Items))
		for i, e := range list.Items {
			ids[i] = e.ID
		}
		return 0, domain.ErrAmbiguousExperiment.WithDetails(fmt.Sprint(ids))
	}
}
