package exchange

//
// APIError generically provides an interface to objects that represent a first-class rejection
// returned by a cryptocurrency exchange's API after a request was actually delivered to it.
//
type APIError interface {
	error

	//
	// ErrorCode returns the status code the API answered with.
	//
	ErrorCode() int

	//
	// ErrorMessage returns the message provided by the API, verbatim.
	//
	ErrorMessage() string
}
