package response

import (
	"encoding/json"
	"mime"
	"net/http"
	"rimbest/shared/constant"
	"rimbest/shared/failure"
	"rimbest/shared/logger"
	"strconv"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

// Error is what every failed request answers. Field is set for validation
// failures bound to one input.
type Error struct {
	Error *string      `json:"error,omitempty"`
	Kind  failure.Kind `json:"kind,omitempty"`
	Field string       `json:"field,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError sends a response with an error message. Errors that are not a
// Failure are answered with a generic message.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := failure.GetMessage(err)

	response(writer, code, Error{
		Error: &errMsg,
		Kind:  failure.GetKind(err),
		Field: failure.GetField(err),
	})
}

// WithFile sends content as a download named fileName.
func WithFile(writer http.ResponseWriter, contentType, fileName string, content []byte) {
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": fileName})

	writer.Header().Set(constant.RequestHeaderContentType, contentType)
	writer.Header().Set(constant.RequestHeaderContentDisposition, disposition)
	writer.Header().Set("Content-Length", strconv.Itoa(len(content)))
	writer.WriteHeader(http.StatusOK)

	if _, err := writer.Write(content); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithPDF sends a PDF download.
func WithPDF(writer http.ResponseWriter, fileName string, content []byte) {
	WithFile(writer, constant.ContentTypePDF, fileName, content)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
