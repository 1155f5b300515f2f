package http

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/collab/pkg/adminsdk"
	"github.com/aussiebroadwan/collab/pkg/slogx"
)

// HandlePanicReport logs a client crash report. It always acknowledges:
// a reporting client is already in a bad state and there is nothing
// useful it could do with a failure response.
func HandlePanicReport(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	var report adminsdk.PanicReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		log.Warn("malformed panic report", "err", err)
		w.WriteHeader(http.StatusOK)
		return
	}

	log.Error("client panic report",
		"client_version", report.Version,
		"text", report.Text,
	)
	w.WriteHeader(http.StatusOK)
}
