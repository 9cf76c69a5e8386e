package validation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const maxTitleLength = 200

// ValidateReportID checks that id is a well-formed report identifier (UUID).
func ValidateReportID(id string) error {
	if id == "" {
		return fmt.Errorf("report id is empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("report id must be a UUID: %w", err)
	}
	return nil
}

// ValidateTitle checks report title constraints before sending to the server.
func ValidateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("title is empty")
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("title exceeds %d characters", maxTitleLength)
	}
	return nil
}

// ValidateEmail performs a minimal sanity check on login emails.
// Full validation belongs to the server; this only catches obvious typos
// before a network round trip.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email is empty")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("invalid email format")
	}
	return nil
}
