package handler

import (
	"net/http"
	"sort"
)

// errorResponse sends a JSON error body of the form {"message": ...}.
// message is either a single string or a list of strings.
func errorResponse(w http.ResponseWriter, status int, message any) {
	env := envelope{"message": message}

	// Write the response using the writeJSON() helper. If this happens to return an
	// error then fall back to sending the client an empty response with a
	// 500 Internal Server Error status code.
	if err := writeJSON(w, status, env, nil); err != nil {
		w.WriteHeader(500)
	}
}

// failedValidationResponse returns 422 UnprocessableEntity status.
//
// The HTTP 422 Unprocessable Content client error response status code indicates
// that the server understood the content type of the request content, and the
// syntax of the request content was correct, but it was unable to process the
// contained instructions.
// Clients that receive a 422 response should expect that repeating the request
// without modification will fail with the same error.
//
// The per-field error map is flattened into a list of messages so the client
// always receives {"message": string | []string}.
func failedValidationResponse(w http.ResponseWriter, errs map[string]string) {
	messages := make([]string, 0, len(errs))
	for _, msg := range errs {
		messages = append(messages, msg)
	}
	sort.Strings(messages)
	errorResponse(w, http.StatusUnprocessableEntity, messages)
}

// badRequestResponse returns 400 BadRequest status.
func badRequestResponse(w http.ResponseWriter, message any) {
	errorResponse(w, http.StatusBadRequest, message)
}

// internalErrorResponse returns 500 InternalServerError status.
func internalErrorResponse(w http.ResponseWriter, message any) {
	errorResponse(w, http.StatusInternalServerError, message)
}
