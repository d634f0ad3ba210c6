package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Result is the uniform envelope for every API response.
// Code mirrors the HTTP status so clients can branch on either.
type Result struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// PageResult wraps a page of rows together with paging metadata.
type PageResult struct {
	Page  int         `json:"page"`
	Size  int         `json:"size"`
	Total int64       `json:"total"`
	Pages int         `json:"pages"`
	List  interface{} `json:"list"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Result{Code: http.StatusOK, Message: "success", Data: data})
}

// OKMsg sends a 200 response with a custom message and no data.
func OKMsg(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Result{Code: http.StatusOK, Message: message})
}

// Created sends a 201 response with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Result{Code: http.StatusCreated, Message: "created", Data: data})
}

// Paged sends a 200 response carrying a PageResult.
func Paged(c *gin.Context, page PageResult) {
	c.JSON(http.StatusOK, Result{Code: http.StatusOK, Message: "success", Data: page})
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Result{Code: http.StatusBadRequest, Message: message})
}

// Unauthorized sends a 401 error response.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "unauthorized"
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, Result{Code: http.StatusUnauthorized, Message: message})
}

// Forbidden sends a 403 error response.
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "forbidden"
	}
	c.AbortWithStatusJSON(http.StatusForbidden, Result{Code: http.StatusForbidden, Message: message})
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "resource not found"
	}
	c.AbortWithStatusJSON(http.StatusNotFound, Result{Code: http.StatusNotFound, Message: message})
}

// MethodNotAllowed sends a 405 error response.
func MethodNotAllowed(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusMethodNotAllowed, Result{Code: http.StatusMethodNotAllowed, Message: "method not allowed"})
}

// InternalError sends a 500 error response. The cause is attached to the
// gin context for the request logger; the client only sees a generic message.
func InternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, Result{Code: http.StatusInternalServerError, Message: "internal server error"})
}
