package httperr

import (
	"github.com/gin-gonic/gin"
)

// Machine-readable error codes the calendar view switches on.
const (
	CodeInvalidRequest      = "invalid_request"
	CodeListingNotFound     = "listing_not_found"
	CodeReservationNotFound = "reservation_not_found"
	CodeOutsideWindow       = "outside_booking_window"
	CodeToggleInFlight      = "toggle_in_flight"
	CodeUpstreamFailed      = "upstream_failed"
	CodeInternal            = "internal"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code,omitempty"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	AbortWithCode(c, status, codeForStatus(status), err, msg, detail)
}

func AbortWithCode(c *gin.Context, status int, code string, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithCode: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func codeForStatus(status int) string {
	switch {
	case status >= 500:
		return CodeInternal
	case status >= 400:
		return CodeInvalidRequest
	default:
		return ""
	}
}
