package crm

import "fmt"

// APIError is a non-success answer from the order backend.
type APIError struct {
	Status int
	Msg    string
}

func (e *APIError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("crm: http %d", e.Status)
	}
	return fmt.Sprintf("crm: http %d: %s", e.Status, e.Msg)
}
