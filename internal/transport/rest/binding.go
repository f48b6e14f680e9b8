package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	maxBodyBytes = 1 << 20
	dateLayout   = "2006-01-02"
)

var validate = newValidator()

// newValidator reports fields by their `label` tag so declarative messages
// read the same as the ones produced by the services.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})
	return v
}

var tagMessages = map[string]string{
	"required": "%s is required.",
	"max":      "%s cannot exceed %s characters.",
}

func fieldMessage(e validator.FieldError) string {
	msg, ok := tagMessages[e.Tag()]
	if !ok {
		return fmt.Sprintf("%s is invalid.", e.Field())
	}
	if e.Param() != "" {
		return fmt.Sprintf(msg, e.Field(), e.Param())
	}
	return fmt.Sprintf(msg, e.Field())
}

// badRequest carries client-facing messages for a request that never
// reached a service.
type badRequest struct {
	messages []string
}

func (e *badRequest) Error() string {
	return fmt.Sprintf("bad request: %v", e.messages)
}

func newBadRequest(messages ...string) *badRequest {
	return &badRequest{messages: messages}
}

// decodeBody reads a JSON body into dst and applies its `validate` tags.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return bodyError(err)
	}
	// The body must hold exactly one JSON value.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err != nil {
			return bodyError(err)
		}
		return newBadRequest("Request body is not valid JSON.")
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate request: %w", err)
		}
		messages := make([]string, len(verrs))
		for i, e := range verrs {
			messages[i] = fieldMessage(e)
		}
		return newBadRequest(messages...)
	}
	return nil
}

func bodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return newBadRequest("Request body is too large.")
	}
	return newBadRequest("Request body is not valid JSON.")
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, newBadRequest(fmt.Sprintf("'%s' is not a valid ID.", r.PathValue("id")))
	}
	return id, nil
}

// queryDate parses ?date=YYYY-MM-DD as a UTC calendar day. ok is false when
// the parameter is absent.
func queryDate(r *http.Request) (date time.Time, ok bool, err error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Time{}, false, nil
	}
	date, err = time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, false, newBadRequest(fmt.Sprintf("'%s' is not a valid date. Use YYYY-MM-DD.", raw))
	}
	return date, true, nil
}
