package model

// ResponseKind tags a classified completion.
type ResponseKind string

const (
	KindNaturalLanguage ResponseKind = "natural_language"
	KindAction          ResponseKind = "action"
)

// ActionRecommend is the only action the model is authorized to emit.
const ActionRecommend = "recommend"

// Action is a structured request decoded from a completion.
type Action struct {
	Name   string
	Params map[string]any
}

// Classified is one raw completion after classification.
type Classified struct {
	Kind   ResponseKind
	Text   string // raw completion; normalized text for accepted prose
	Action Action
}

// Failure names the error taxonomy used in logs.
type Failure string

const (
	FailureInferenceUnavailable Failure = "inference_unavailable"
	FailureMalformedAction      Failure = "malformed_action"
	FailurePolicyViolation      Failure = "policy_violation"
	FailureRetriesExhausted     Failure = "retries_exhausted"
)
