package member

import "errors"

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrNotOnTeam      = errors.New("member is not assigned to a team")

	ErrLeadAccessRequired    = errors.New("team lead access required")
	ErrManagerAccessRequired = errors.New("manager access required")
	ErrNotTeamAuthority      = errors.New("no authority over this member's team")
)
