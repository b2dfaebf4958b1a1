package paginator

const (
	// DefaultPage is used when the requested page is missing or invalid.
	DefaultPage = 1
	// DefaultLimit is used when the requested limit is missing or invalid.
	DefaultLimit = 15
	// MaxLimit caps the page size.
	MaxLimit = 100
)
