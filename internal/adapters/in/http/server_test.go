package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError_MapsApplicationErrorsToStatusCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "not found maps to 404",
			err:      errs.NewObjectNotFoundError("order", "abc"),
			expected: http.StatusNotFound,
		},
		{
			name:     "already assigned maps to 409",
			err:      errs.NewAlreadyAssignedError("order-1", "driver-1"),
			expected: http.StatusConflict,
		},
		{
			name:     "version conflict maps to 409",
			err:      errs.NewVersionConflictError("order", "abc", 3),
			expected: http.StatusConflict,
		},
		{
			name:     "invalid state maps to 409",
			err:      errs.NewInvalidStateError("accept", "Completed"),
			expected: http.StatusConflict,
		},
		{
			name:     "missing value maps to 400",
			err:      errs.NewValueIsRequiredError("driverId"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "out of range maps to 400",
			err:      errs.NewValueIsOutOfRangeError("rating", 9, 1, 5),
			expected: http.StatusBadRequest,
		},
		{
			name:     "unclassified error maps to 500",
			err:      assert.AnError,
			expected: http.StatusInternalServerError,
		},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			rec := httptest.NewRecorder()
			ctx := e.NewContext(req, rec)

			require.NoError(t, writeError(ctx, tt.err))
			assert.Equal(t, tt.expected, rec.Code)
			assert.Contains(t, rec.Body.String(), `"message"`)
		})
	}
}
