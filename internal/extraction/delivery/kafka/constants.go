package kafka

// Consumer group IDs.
const (
	ConsumerGroupActivityEvents = "usecase-consumer-activity"
)

// Event types carried on the activity topic (for routing).
const (
	EventTypeUseCasesExtracted = "use_cases.extracted"
	EventTypeUseCaseRefined    = "use_case.refined"
)
