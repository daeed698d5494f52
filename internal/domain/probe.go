package domain

import "time"

// Challenge endpoints and markers served by every delivery host.
const (
	ChallengePath = "/blocked_res.txt"
	EmbedPath     = "/test_availability.html"

	MarkerNotBlocked = "===NOT_BLOCKED==="
	MarkerSecondary  = `SOmehtin23"`

	MessageInitialized       = "INITIALIZED"
	MessageCheckAvailability = "CHECK_AVAILABILITY"

	// EmbedDeadline is measured from the start of the probe, not from the embed.
	EmbedDeadline = 3000 * time.Millisecond
)

// ProbeReason classifies the outcome of a probe.
type ProbeReason string

const (
	ReasonSuccess          ProbeReason = "success"
	ReasonBadStatus        ProbeReason = "bad status"
	ReasonNetworkError     ProbeReason = "network error"
	ReasonTimeout          ProbeReason = "timeout"
	ReasonContentMismatch  ProbeReason = "content mismatch"
	ReasonEmbedTimeout     ProbeReason = "timeout waiting for embed"
	ReasonEmbedMismatch    ProbeReason = "incorrect embed challenge response"
	ReasonEmbedUnavailable ProbeReason = "embed unavailable"
	ReasonCanceled         ProbeReason = "probe canceled"
)

// ProbeStage is the challenge stage that concluded a probe.
type ProbeStage int

const (
	StageFetch ProbeStage = 1
	StageEmbed ProbeStage = 2
)

// ProbeResult is the outcome of a single probe of one candidate.
type ProbeResult struct {
	Hostname  string
	Success   bool
	Stage     ProbeStage
	Reason    ProbeReason
	Detail    string
	Latency   time.Duration // stage-1 request to final byte
	Elapsed   time.Duration // whole probe wall-clock
	CheckedAt time.Time
}

// EmbedMessage is a cross-document message received from an embedded frame.
type EmbedMessage struct {
	Origin string
	Data   string
}
