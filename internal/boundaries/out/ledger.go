package out

import "github.com/bnema/edgeselect/internal/domain"

// ResponseLedger stores the latest probe result per hostname.
type ResponseLedger interface {
	Record(result domain.ProbeResult)
	Get(hostname string) (domain.ProbeResult, bool)
	All() []domain.ProbeResult
}
