package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// rejectionBody covers both rejection shapes: register/login answer with
// "message", collection routes with "error".
type rejectionBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Kind    string `json:"kind"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusUnprocessableEntity:
		return decodeRejection(resp.Body())
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

func decodeRejection(raw []byte) error {
	var body rejectionBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return &RejectionError{Message: strings.TrimSpace(string(raw))}
	}

	message := body.Message
	if message == "" {
		message = body.Error
	}

	return &RejectionError{Kind: body.Kind, Message: message}
}
