package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	apperrors "dealhunt/internal/errors"
)

func TestHTTPErrorHandler_DetailShape(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedDetail string
	}{
		{
			name:           "echo http error with string message",
			err:            echo.NewHTTPError(http.StatusNotFound, "Offer not found"),
			expectedStatus: http.StatusNotFound,
			expectedDetail: "Offer not found",
		},
		{
			name:           "domain error",
			err:            apperrors.ErrAdminRequired,
			expectedStatus: http.StatusForbidden,
			expectedDetail: "Admin access required",
		},
		{
			name:           "unknown error hides detail",
			err:            assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedDetail: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			httpErrorHandler(tt.err, c)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var resp apperrors.ErrorResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedDetail, resp.Detail)
		})
	}
}

func TestCustomValidator(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
	}

	e := echo.New()
	cv := &CustomValidator{validator: validator.New()}
	e.Validator = cv

	assert.NoError(t, cv.Validate(&payload{Email: "user@example.com"}))
	assert.Error(t, cv.Validate(&payload{Email: "not-an-email"}))
	assert.Error(t, cv.Validate(&payload{}))
}
