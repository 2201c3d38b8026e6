package httpx

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/sainikhil1483/quick-poll-anonymous-views/log"
)

// Will log an error, and send an HTTP response with status 500 and default text
func LogInternalError(w http.ResponseWriter, code string, err error) {
	log.Errorf("%s: %s", code, err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Will log a debug message, and send an HTTP response with status 404 and default text
func LogNotFound(w http.ResponseWriter, code string, id any) {
	log.Debugf("%s: not found (%v)", code, id)
	w.WriteHeader(http.StatusNotFound)
}

// Will log an error code at the given level, and send
// an HTTP response with status and default text
func LogStatus(w http.ResponseWriter, status int, level log.Level, code string) {
	log.Log(level, code)
	http.Error(w, http.StatusText(status), status)
}

// Will log a validation failure, and send a 422 with the reason and any
// extra detail fields as JSON
func LogValidation(w http.ResponseWriter, r *http.Request, code string, reason error, detail map[string]any) {
	log.Debugf("%s: %s", code, reason)

	body := map[string]any{"error": reason.Error()}
	for k, v := range detail {
		body[k] = v
	}
	w.WriteHeader(http.StatusUnprocessableEntity)
	render.JSON(w, r, body)
}
