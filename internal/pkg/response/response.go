package response

import (
	"SocialPulse/internal/api/dto"
	"SocialPulse/internal/service"
	stdjson "encoding/json"
	"errors"
	log "log/slog"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	Ok                  = 200
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

// Success 成功返回封装
func Success(c *gin.Context, data interface{}) {
	c.JSON(Ok, dto.Response{
		Code:    Ok,
		Message: "success",
		Data:    data,
	})
}

// Fail 失败返回封装，HTTP 状态码与业务码一致
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, dto.Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// Error 将错误翻译为统一响应
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, BadRequest, service.ErrParamInvalid.Error())
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, BadRequest, "Invalid JSON field: "+unmarshalTypeError.Field)
		return
	}

	var stdTypeError *stdjson.UnmarshalTypeError
	if errors.As(err, &stdTypeError) {
		Fail(c, BadRequest, "Invalid JSON field: "+stdTypeError.Field)
		return
	}

	var syntaxError *json.SyntaxError
	var stdSyntaxError *stdjson.SyntaxError
	if errors.As(err, &syntaxError) || errors.As(err, &stdSyntaxError) {
		Fail(c, BadRequest, "Invalid JSON body")
		return
	}

	code, ok := service.CodeOf(err)
	if !ok {
		log.ErrorContext(c.Request.Context(), "unhandled error", "err", err)
		Fail(c, InternalServerError, service.UnExpectedError.Error())
		return
	}
	Fail(c, code, err.Error())
}
