package contract

// Response is the status + body pair handed to an HTTP layer. The library
// never writes it to the wire itself; transport adapters encode it.
type Response struct {
	Status int          `json:"status"`
	Body   ResponseBody `json:"body"`
}

// ResponseBody carries the client-safe subset of an error. Message holds the
// user-facing text only; internal detail stays on the logging side. Data has
// no omitempty on purpose: consumers rely on the key being present (null
// when there is nothing to attach).
type ResponseBody struct {
	Code     string         `json:"code"`
	Category Category       `json:"category"`
	Message  string         `json:"message"`
	Data     map[string]any `json:"data"`
}

// Serialized is the structured-logging shape of an error. Unlike
// ResponseBody it includes the internal message, the stack and the cause, so
// it must never be surfaced to clients.
type Serialized struct {
	Name        string           `json:"name"`
	Code        string           `json:"code"`
	Category    Category         `json:"category"`
	Status      int              `json:"status"`
	Message     string           `json:"message"`
	UserMessage string           `json:"userMessage"`
	Data        map[string]any   `json:"data,omitempty"`
	Stack       []string         `json:"stack,omitempty"`
	Cause       *SerializedCause `json:"cause,omitempty"`
}

// SerializedCause is the one-level serialization of an error's cause. Code
// and Stack are filled only when the cause is itself a library error.
type SerializedCause struct {
	Name    string   `json:"name"`
	Message string   `json:"message"`
	Code    string   `json:"code,omitempty"`
	Stack   []string `json:"stack,omitempty"`
}
