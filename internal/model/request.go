package model

// RequestOptions describes an outbound call a node asks the runtime to make on its behalf.
// Authentication is not part of the options: the runtime attaches it for the named credential.
type RequestOptions struct {
	Method  string
	URL     string
	Body    any
	JSON    bool
	Headers map[string]string
}
