package enums

// Provenance records which generation path produced an icebreaker batch:
// the completion API, the embedded generic set substituted when the model
// ignored the output contract, or the rule-based fallback generator.
type Provenance string

const (
	ProvenanceAI       Provenance = "ai"
	ProvenanceGeneric  Provenance = "generic"
	ProvenanceFallback Provenance = "fallback"
)
