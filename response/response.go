package response

import (
	"errors"
	"net/http"

	"metaapi/dao"
	"metaapi/logutils"

	"github.com/gin-gonic/gin"
)

// Used by swagger to generate documentation
type Response[T any] struct {
	Code ErrorCode `json:"code"`
	Data T         `json:"data"`
	Msg  string    `json:"msg"`
}

// wrapResponse wraps the response data and sends it back to the client.
// The function sets the appropriate HTTP status code based on the ErrorCode.
func wrapResponse(c *gin.Context, msg string, data any, code ErrorCode) {
	httpCode := http.StatusOK
	if code != OK {
		httpCode = http.StatusInternalServerError
	}
	c.JSON(httpCode, Response[any]{Code: code, Data: data, Msg: msg})
}

// Success sends a successful response to the client with the provided data.
func Success(c *gin.Context, data any) {
	wrapResponse(c, "", data, OK)
}

// Error sends an error response to the client with the specified message and error code.
func Error(c *gin.Context, msg string, errorCode ErrorCode) {
	wrapResponse(c, msg, nil, errorCode)
}

// HTTPError sends an HTTP error response with the specified HTTP code, error message, and error code.
func HTTPError(c *gin.Context, httpCode int, msg string, errorCode ErrorCode) {
	c.JSON(httpCode, Response[any]{Code: errorCode, Data: nil, Msg: msg})
}

// BadRequestError is used when ShouldBindJSON, ShouldBindQuery and friends fail.
func BadRequestError(c *gin.Context, msg string) {
	HTTPError(c, http.StatusBadRequest, msg, InvalidRequest)
}

// FromError maps a store-layer error to its HTTP response: not found to
// 404, store failures to 500 with the underlying message.
func FromError(c *gin.Context, err error) {
	_ = c.Error(err)

	var se *dao.StoreError
	switch {
	case errors.Is(err, dao.ErrNotFound):
		HTTPError(c, http.StatusNotFound, err.Error(), NotFound)
	case errors.As(err, &se):
		logutils.Log.WithFields(logutils.Fields{
			"op":   se.Op,
			"code": se.Code,
		}).Error(se.Err)
		Error(c, "store error: "+se.Error(), StoreFailure)
	default:
		Error(c, err.Error(), NotSpecified)
	}
}
