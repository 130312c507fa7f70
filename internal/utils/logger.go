package utils

import (
	"log"
	"strings"
)

// LogEvent writes one line per domain action. Module is the subsystem name
// (membership, report); message stays short and carries no payload data.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	if req == "" {
		req = "-"
	}
	log.Printf("[%s] action=%s request_id=%s %s", strings.ToUpper(module), action, req, message)
}
