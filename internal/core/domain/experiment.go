package domain

// InfoOption restricts what GetExperimentInfo returns.
type InfoOption string

const (
	InfoAll       InfoOption = ""          // experiment submission
	InfoResources InfoOption = "resources" // resources list
	InfoIDs       InfoOption = "id"        // resources id list, "1-34+72" format
	InfoState     InfoOption = "state"     // experiment state
	InfoData      InfoOption = "data"      // tar.gz with description and firmwares
)

// Validate returns ErrInvalidInfoOption for unknown options.
func (o InfoOption) Validate() error {
	switch o {
	case InfoAll, InfoResources, InfoIDs, InfoState, InfoData:
		return nil
	}
	return ErrInvalidInfoOption.WithDetails(string(o))
}

// DefaultExperimentState is the state filter used when listing experiments.
const DefaultExperimentState = "Running"

// ExperimentSummary is the subset of an experiment listing entry the
// client needs to pick the current experiment.
type ExperimentSummary struct {
	ID    int    `json:"id"`
	State string `json:"state,omitempty"`
}

// ExperimentList is the answer to an experiment listing.
type ExperimentList struct {
	Items []ExperimentSummary `json:"items"`
	Total int                 `json:"total,omitempty"`
}
