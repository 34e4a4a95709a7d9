package helpers

import (
	"encoding/json"
	"net/http"

	"github.com/isometry/msg-app/internal/models"
)

type httpResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// RespondHTTP writes response wrapped in a {"message","error"} envelope. It is used for responses produced by the
// local runtime itself rather than by the message handler.
func RespondHTTP(response models.Response, err error, rw http.ResponseWriter) {
	hR := httpResponse{
		Message: response.Body,
	}
	if err != nil {
		hR.Error = err.Error()
	}

	respBody, _ := json.Marshal(hR)
	rw.Header().Set("Content-Type", "application/json")
	writeHTTP(response, respBody, rw)
}

// WriteHTTP writes response verbatim: headers, status code and body.
func WriteHTTP(response models.Response, rw http.ResponseWriter) {
	writeHTTP(response, []byte(response.Body), rw)
}

func writeHTTP(response models.Response, body []byte, rw http.ResponseWriter) {
	for k, v := range response.Headers {
		rw.Header().Set(k, v)
	}
	statusCode := response.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	rw.WriteHeader(statusCode)
	_, _ = rw.Write(body)
}
