package exemption

import "errors"

var (
	ErrExemptionNotFound = errors.New("exemption not found")
	ErrAlreadyProcessed  = errors.New("exemption has already been approved or rejected")
)
