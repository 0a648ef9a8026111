package constants

// NATS Subjects
const (
	// Route compliance events
	SubjectCalculationCompleted = "routecheck.calculation.completed"

	// Depot events
	SubjectDepotCreated = "routecheck.depot.created"
	SubjectDepotDeleted = "routecheck.depot.deleted"
)
