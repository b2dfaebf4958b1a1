package response

const (
	// DateFormat is the wire format for Date values.
	DateFormat = "2006-01-02"
	// DateTimeFormat is the wire format for DateTime values.
	DateTimeFormat = "2006-01-02 15:04:05"
)

const (
	codeOK            = 0
	codeInternalError = 500
	codeUnauthorized  = 401
)

const (
	msgSuccess       = "Success"
	msgInternalError = "Something went wrong"
	msgUnauthorized  = "Unauthorized"
)
