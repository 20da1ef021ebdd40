package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/itg-platform/docverse/internal/gateway"
)

// writeEnvelope serializes a gateway envelope. Data routes always
// answer 200: success and failure both live inside the envelope, which
// is the contract the front end consumes.
func writeEnvelope(w http.ResponseWriter, env gateway.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(env)
}

// writeBadRequest reports a malformed request body, still envelope-shaped.
func writeBadRequest(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(gateway.Fail(msg))
}
