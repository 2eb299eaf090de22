package helper

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pollsapp/internal/adapter/http/validation"
	"pollsapp/internal/core/apperror"
	"pollsapp/internal/core/model/request"
	"pollsapp/internal/core/model/response"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
)

func send(fn func(c *gin.Context)) (*httptest.ResponseRecorder, response.ErrorResponse) {
	gin.SetMode(gin.TestMode)

	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	fn(c)

	var body response.ErrorResponse
	json.Unmarshal(rr.Body.Bytes(), &body)

	return rr, body
}

func TestSendAppError_NotFound(t *testing.T) {
	RegisterTestingT(t)

	rr, body := send(func(c *gin.Context) {
		SendAppError(c, apperror.NotFound("Todo not found."))
	})

	Expect(rr.Code).To(Equal(http.StatusNotFound))
	Expect(body.Error).To(Equal("Todo not found."))
	Expect(body.Code).To(Equal("NOT_FOUND"))
	Expect(body.Fields).To(BeEmpty())
}

func TestSendAppError_UnclassifiedIsInternal(t *testing.T) {
	RegisterTestingT(t)

	rr, body := send(func(c *gin.Context) {
		SendAppError(c, errors.New("connection reset"))
	})

	Expect(rr.Code).To(Equal(http.StatusInternalServerError))
	Expect(body.Code).To(Equal("INTERNAL_ERROR"))
	Expect(body.Error).NotTo(ContainSubstring("connection reset"))
}

func TestSendBadRequestError(t *testing.T) {
	RegisterTestingT(t)

	rr, body := send(func(c *gin.Context) {
		SendBadRequestError(c, "Invalid JSON.")
	})

	Expect(rr.Code).To(Equal(http.StatusBadRequest))
	Expect(body.Error).To(Equal("Invalid JSON."))
}

func TestSendAppError_ValidationListsFields(t *testing.T) {
	RegisterTestingT(t)

	err := validation.Validator.Struct(request.CreateTodoRequest{})
	Expect(err).To(HaveOccurred())

	rr, body := send(func(c *gin.Context) {
		SendAppError(c, apperror.Validation("Missing required fields.", err))
	})

	Expect(rr.Code).To(Equal(http.StatusBadRequest))
	Expect(body.Code).To(Equal("VALIDATION_ERROR"))
	Expect(body.Error).To(Equal("Missing required fields."))
	Expect(body.Fields).To(Equal([]response.ValidationError{
		{Field: "text", Message: "text is required"},
	}))
}
