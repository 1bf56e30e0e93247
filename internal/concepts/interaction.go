package concepts

// Interaction types for sandbox exercises.
const (
	InteractionMatching    = "matching"
	InteractionSequencing  = "sequencing"
	InteractionFillInBlank = "fill_in_blank"
	InteractionFreeText    = "free_text"
)

// Cognitive types describe what kind of thinking an exercise demands.
const (
	CognitiveRecall      = "recall"
	CognitiveApplication = "application"
	CognitiveConnection  = "connection"
)
