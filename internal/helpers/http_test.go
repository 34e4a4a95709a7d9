package helpers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/isometry/msg-app/internal/helpers"
	"github.com/isometry/msg-app/internal/models"
	"github.com/stretchr/testify/assert"
)

type testCase struct {
	Name     string
	Response models.Response
	Error    error
	Expected expectedResponse
}

type expectedResponse struct {
	StatusCode int
	Body       string
	Origin     string
}

func TestRespondHTTP(t *testing.T) {
	testCases := []testCase{
		{
			Name: "with_valid_response_and_no_error",
			Response: models.Response{
				StatusCode: http.StatusOK,
				Body:       "Success",
				Headers:    map[string]string{"Access-Control-Allow-Origin": "*"},
			},
			Expected: expectedResponse{
				StatusCode: http.StatusOK,
				Body:       "Success",
				Origin:     "*",
			},
		},
		{
			Name: "with_valid_response_and_error",
			Response: models.Response{
				StatusCode: http.StatusInternalServerError,
				Body:       "Failure",
			},
			Error: errors.New("internal Server Error"),
			Expected: expectedResponse{
				StatusCode: http.StatusInternalServerError,
				Body:       "Failure",
			},
		},
		{
			Name:     "with_empty_response_and_no_error",
			Response: models.Response{},
			Expected: expectedResponse{
				StatusCode: http.StatusOK,
			},
		},
		{
			Name:     "with_empty_response_and_error",
			Response: models.Response{},
			Error:    errors.New("internal Server Error"),
			Expected: expectedResponse{
				StatusCode: http.StatusOK,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			rw := httptest.NewRecorder()

			helpers.RespondHTTP(tc.Response, tc.Error, rw)

			result := rw.Result()
			assert.Equal(t, tc.Expected.StatusCode, result.StatusCode)
			assert.Equal(t, "application/json", result.Header.Get("Content-Type"))
			assert.Equal(t, tc.Expected.Origin, result.Header.Get("Access-Control-Allow-Origin"))
			assert.Contains(t, rw.Body.String(), tc.Expected.Body)
			if tc.Error != nil {
				assert.Contains(t, rw.Body.String(), tc.Error.Error())
			} else {
				assert.NotContains(t, rw.Body.String(), "error")
			}
		})
	}
}

func TestWriteHTTP(t *testing.T) {
	rw := httptest.NewRecorder()

	helpers.WriteHTTP(models.Response{
		StatusCode: http.StatusCreated,
		Headers:    map[string]string{"Access-Control-Allow-Origin": "*"},
		Body:       `{"id":"m1"}`,
	}, rw)

	result := rw.Result()
	assert.Equal(t, http.StatusCreated, result.StatusCode)
	assert.Equal(t, "*", result.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, `{"id":"m1"}`, rw.Body.String())
}
