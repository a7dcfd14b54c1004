package handler

// Request error messages
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Request validation failed"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
	ErrMsgMissingCallerIdentity = "Caller identity is required"
)

// Success messages
const (
	MsgTournamentResolved = "Tournament resolved"
)
