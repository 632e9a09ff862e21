package utils

import (
	"log"
	"strings"
)

// LogEvent prints a standardized log line with module/action and the
// session's request id. Passenger and contact data stay out of the
// message; log the ids and counts instead.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, req, message)
}
