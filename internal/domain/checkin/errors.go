package checkin

import "errors"

var (
	ErrAlreadyCheckedIn = errors.New("you have already checked in today")
	ErrCheckinNotFound  = errors.New("check-in not found")
)
