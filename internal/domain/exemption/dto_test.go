package exemption

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestExemptionRequestValidate(t *testing.T) {
	valid := RequestExemptionRequest{
		MemberID:  "member-1",
		StartDate: "2025-03-10",
		EndDate:   "2025-03-12",
		Reason:    "Annual leave",
	}

	t.Run("valid range", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("single day", func(t *testing.T) {
		req := valid
		req.EndDate = req.StartDate
		assert.NoError(t, req.Validate())
	})

	t.Run("missing member", func(t *testing.T) {
		req := valid
		req.MemberID = ""
		assert.Error(t, req.Validate())
	})

	t.Run("malformed date", func(t *testing.T) {
		req := valid
		req.StartDate = "10-03-2025"
		assert.Error(t, req.Validate())
	})

	t.Run("inverted range", func(t *testing.T) {
		req := valid
		req.StartDate = "2025-03-12"
		req.EndDate = "2025-03-10"
		assert.Error(t, req.Validate())
	})

	t.Run("reason too long", func(t *testing.T) {
		req := valid
		req.Reason = strings.Repeat("r", 501)
		assert.Error(t, req.Validate())
	})
}
