package absence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamready/readiness-backend-go/internal/pkg/validator"
)

func TestJustifyRequestValidate(t *testing.T) {
	valid := JustifyItem{
		AbsenceID:      "abs-1",
		ReasonCategory: "ILLNESS",
		Explanation:    "Caught the flu",
	}

	t.Run("valid", func(t *testing.T) {
		req := JustifyRequest{Items: []JustifyItem{valid}}
		assert.NoError(t, req.Validate())
	})

	t.Run("empty items", func(t *testing.T) {
		req := JustifyRequest{}
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, "items", errs[0].Field)
	})

	t.Run("missing absence id", func(t *testing.T) {
		item := valid
		item.AbsenceID = ""
		req := JustifyRequest{Items: []JustifyItem{item}}
		assert.Error(t, req.Validate())
	})

	t.Run("unknown reason category", func(t *testing.T) {
		item := valid
		item.ReasonCategory = "OVERSLEPT"
		req := JustifyRequest{Items: []JustifyItem{item}}
		assert.Error(t, req.Validate())
	})

	t.Run("explanation too long", func(t *testing.T) {
		item := valid
		item.Explanation = strings.Repeat("a", 1001)
		req := JustifyRequest{Items: []JustifyItem{item}}
		assert.Error(t, req.Validate())
	})

	t.Run("one bad item fails the batch", func(t *testing.T) {
		bad := valid
		bad.Explanation = ""
		req := JustifyRequest{Items: []JustifyItem{valid, bad}}
		assert.Error(t, req.Validate())
	})
}

func TestReviewRequestValidate(t *testing.T) {
	t.Run("excused", func(t *testing.T) {
		req := ReviewRequest{Verdict: "EXCUSED"}
		assert.NoError(t, req.Validate())
	})

	t.Run("unexcused with notes", func(t *testing.T) {
		notes := "No prior notice"
		req := ReviewRequest{Verdict: "UNEXCUSED", Notes: &notes}
		assert.NoError(t, req.Validate())
	})

	t.Run("unknown verdict", func(t *testing.T) {
		req := ReviewRequest{Verdict: "MAYBE"}
		assert.Error(t, req.Validate())
	})

	t.Run("notes too long", func(t *testing.T) {
		notes := strings.Repeat("n", 501)
		req := ReviewRequest{Verdict: "EXCUSED", Notes: &notes}
		assert.Error(t, req.Validate())
	})
}
