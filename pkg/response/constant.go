package response

// Response messages
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"
)

// Error codes
const (
	InternalServerErrorCode = 500
)

// Time formats used by Date and DateTime marshaling.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
