package protocol

type StringMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var SuccessMessage = &StringMessage{Message: "success"}

type ErrorResponse struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}
