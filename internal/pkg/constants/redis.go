package constants

// Redis key formats
const (
	// Recent searches, one capped list per user
	KeyRecentSearches = "routecheck:recent:%s" // Format: routecheck:recent:{user_id}
)

// Plans carried in the JWT "plan" claim
const (
	PlanFree = "free"
	PlanPro  = "pro"
)
