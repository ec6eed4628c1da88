package dogapi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

const statusSuccess = "success"

var (
	// ErrInvalidBody is returned when the response is not a JSON object.
	ErrInvalidBody = errors.New("response body is not a JSON object")

	// ErrNotSuccess is returned when the status field is not "success".
	ErrNotSuccess = errors.New("response status is not success")
)

// parseSubBreeds extracts the message array from a dog.ceo list response:
//
//	{"status":"success","message":["afghan","basset"]}
//
// A missing or non-array message yields an empty list.
func parseSubBreeds(body []byte) ([]string, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrInvalidBody
	}

	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return nil, ErrInvalidBody
	}

	status := doc.Get("status")
	if status.Type != gjson.String || !strings.EqualFold(status.Str, statusSuccess) {
		return nil, fmt.Errorf("%w: %q", ErrNotSuccess, status.String())
	}

	message := doc.Get("message")
	if !message.IsArray() {
		return []string{}, nil
	}

	items := message.Array()
	subs := make([]string, 0, len(items))
	for i, item := range items {
		if item.Type != gjson.String {
			return nil, fmt.Errorf("message[%d] is not a string", i)
		}
		subs = append(subs, item.Str)
	}
	return subs, nil
}
