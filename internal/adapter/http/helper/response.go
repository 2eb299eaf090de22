package helper

import (
	"net/http"

	"pollsapp/internal/adapter/http/validation"
	"pollsapp/internal/core/apperror"
	"pollsapp/internal/core/model/response"

	"github.com/gin-gonic/gin"
)

func SendSuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func SendError(c *gin.Context, code apperror.Code, message string, fields []response.ValidationError) {
	c.JSON(code.HTTPStatus(), response.ErrorResponse{
		Error:  message,
		Code:   string(code),
		Fields: fields,
	})
}

// SendAppError writes err using its code and client-facing message.
// Errors without a code are reported as internal errors.
func SendAppError(c *gin.Context, err error) {
	code := apperror.GetCode(err)
	if code == apperror.CodeUnknown {
		code = apperror.CodeInternal
	}

	if code == apperror.CodeValidation {
		SendValidationError(c, err)
		return
	}

	SendError(c, code, apperror.MessageOf(err), nil)
}

func SendValidationError(c *gin.Context, err error) {
	SendError(c, apperror.CodeValidation, "Missing required fields.", validation.FormatValidationErrors(err))
}

func SendBadRequestError(c *gin.Context, message string) {
	SendError(c, apperror.CodeBadRequest, message, nil)
}

func SendNotFoundError(c *gin.Context, message string) {
	SendError(c, apperror.CodeNotFound, message, nil)
}

func SendInternalError(c *gin.Context) {
	SendError(c, apperror.CodeInternal, "internal server error", nil)
}
