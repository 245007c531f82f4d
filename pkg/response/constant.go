package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	ErrorCodeBadRequest      = 1
	ErrorCodeNotFound        = 404
	ErrorCodeConflict        = 409
	ErrorCodeTooManyRequests = 429
	InternalServerErrorCode  = 500
)
