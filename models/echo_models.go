package models

// EchoRequest is the JSON body accepted by POST and PUT /echo.
type EchoRequest struct {
	Message *string `json:"message" binding:"required" example:"hello"`
}

// RequestDetails mirrors an incoming request back to the client.
type RequestDetails struct {
	Method      string       `json:"method" example:"POST"`
	Path        string       `json:"path" example:"/echo"`
	Headers     []HeaderPair `json:"headers"`
	QueryString string       `json:"query_string" example:"a=1&b=2"`
	Body        *string      `json:"body" example:"hello"`
}
