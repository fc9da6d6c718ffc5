package respond

// Fixed user-facing messages. Kept deliberately generic so store internals
// never leak into responses.
const (
	MsgBadRequest       = "Bad Request"
	MsgNotFound         = "Resource not found"
	MsgMethodNotAllowed = "Method not allowed"
	MsgUnprocessable    = "Unable to process request"
	MsgInternalError    = "Internal server error"

	MsgQuestionDeleted = "Question successfully deleted"
	MsgQuestionAdded   = "Question successfully added"
)
