// Package httputil holds the JSON response and error conventions shared by
// every handler.
package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"slices"

	dErrors "github.com/henriqueinonhe/intergalactic-federation-api/pkg/domain-errors"
	"github.com/henriqueinonhe/intergalactic-federation-api/pkg/requestcontext"
)

// maxBodyBytes bounds request bodies; payload id lists are the largest input.
const maxBodyBytes = 1 << 20

// ErrorBody is the wire shape of every error response:
//
//	{"error": {"message": "...", "code": "...", "entries": [{"message", "code"}]}}
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Entries []dErrors.Entry `json:"entries"`
}

type errorMapping struct {
	status int
	code   string
}

var errorMappings = map[dErrors.Code]errorMapping{
	dErrors.CodeBadRequest:      {http.StatusBadRequest, "BadRequest"},
	dErrors.CodeInvalidInput:    {http.StatusBadRequest, "BadRequest"},
	dErrors.CodeUnauthorized:    {http.StatusUnauthorized, "Unauthorized"},
	dErrors.CodeNotFound:        {http.StatusNotFound, "ResourceNotFound"},
	dErrors.CodeConflict:        {http.StatusConflict, "Conflict"},
	dErrors.CodeTooManyRequests: {http.StatusTooManyRequests, "TooManyRequests"},
	dErrors.CodeTimeout:         {http.StatusGatewayTimeout, "Timeout"},
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// StatusFor returns the HTTP status WriteError would use for err.
func StatusFor(err error) int {
	var ve *dErrors.ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity
	}
	if m, ok := errorMappings[dErrors.CodeOf(err)]; ok {
		return m.status
	}
	return http.StatusInternalServerError
}

// WriteError translates err into the error envelope. Validation aggregates
// become 422 with their entries; internal errors never expose their message.
func WriteError(w http.ResponseWriter, err error) {
	var ve *dErrors.ValidationError
	if errors.As(err, &ve) {
		entries := ve.Entries
		if entries == nil {
			entries = []dErrors.Entry{}
		}
		WriteJSON(w, http.StatusUnprocessableEntity, ErrorBody{Error: ErrorDetail{
			Message: ve.Message,
			Code:    ve.Code,
			Entries: entries,
		}})
		return
	}

	m, ok := errorMappings[dErrors.CodeOf(err)]
	if !ok {
		WriteJSON(w, http.StatusInternalServerError, ErrorBody{Error: ErrorDetail{
			Message: "Internal server error",
			Code:    "InternalServerError",
			Entries: []dErrors.Entry{},
		}})
		return
	}

	message := err.Error()
	var de *dErrors.Error
	if errors.As(err, &de) {
		message = de.Message
	}
	WriteJSON(w, m.status, ErrorBody{Error: ErrorDetail{
		Message: message,
		Code:    m.code,
		Entries: []dErrors.Entry{},
	}})
}

// DecodeJSON decodes a bounded JSON body into dst. Unknown fields are allowed.
// Syntax errors surface as CodeBadRequest. A value of the wrong type for a
// field also returns CodeBadRequest, but dst is still filled with every other
// field; use MismatchedField to turn it into a validation entry.
func DecodeJSON(r *http.Request, dst any) error {
	body, err := readBody(r)
	if err != nil {
		return err
	}
	return unmarshal(body, dst)
}

func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "failed to read request body")
	}
	return body, nil
}

func unmarshal(body []byte, dst any) error {
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return dErrors.New(dErrors.CodeBadRequest, "request body is required")
		}
		return dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid JSON body")
	}
	return nil
}

// MismatchedField returns the JSON field name that held a value of the wrong
// type, when err came from DecodeJSON for that reason.
func MismatchedField(err error) (string, bool) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return typeErr.Field, true
	}
	return "", false
}

// Validatable is implemented by request bodies that check and normalize
// themselves after decoding.
type Validatable interface {
	Validate() error
}

// TypeMismatches is embedded in request bodies so fields sent with the wrong
// JSON type are reported as schema entries instead of a 400.
type TypeMismatches struct {
	fields []string
}

func (m *TypeMismatches) RecordTypeMismatch(field string) {
	if !slices.Contains(m.fields, field) {
		m.fields = append(m.fields, field)
	}
}

func (m *TypeMismatches) Mismatched(field string) bool {
	return slices.Contains(m.fields, field)
}

type typeMismatchRecorder interface {
	RecordTypeMismatch(field string)
}

// Decode decodes the body into a new T. When T records type mismatches, every
// wrong-typed field is recorded on it and decoding still succeeds.
func Decode[T any, PT interface {
	*T
	Validatable
}](r *http.Request) (PT, error) {
	body, err := readBody(r)
	if err != nil {
		return nil, err
	}
	req := PT(new(T))
	if err := unmarshal(body, req); err != nil {
		recorder, canRecord := any(req).(typeMismatchRecorder)
		if _, ok := MismatchedField(err); !ok || !canRecord {
			return nil, err
		}
		for _, field := range mismatchedFields[T](body) {
			recorder.RecordTypeMismatch(field)
		}
	}
	return req, nil
}

// mismatchedFields decodes each top-level field of body on its own, since
// encoding/json reports only the first type error of a document.
func mismatchedFields[T any](body []byte) []string {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	var fields []string
	for _, key := range keys {
		single, err := json.Marshal(map[string]json.RawMessage{key: raw[key]})
		if err != nil {
			continue
		}
		if field, ok := MismatchedField(json.Unmarshal(single, new(T))); ok {
			fields = append(fields, field)
		}
	}
	return fields
}

// DecodeAndPrepare decodes and validates a request body, writing the error
// response itself. Handlers return early when ok is false.
func DecodeAndPrepare[T any, PT interface {
	*T
	Validatable
}](w http.ResponseWriter, r *http.Request, logger *slog.Logger) (PT, bool) {
	ctx := r.Context()
	req, err := Decode[T, PT](r)
	if err != nil {
		logger.WarnContext(ctx, "invalid request body",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		WriteError(w, err)
		return nil, false
	}
	if err := req.Validate(); err != nil {
		logger.InfoContext(ctx, "request failed validation",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		WriteError(w, err)
		return nil, false
	}
	return req, true
}
