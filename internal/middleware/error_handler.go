package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/billplz/internal/dto"
	"github.com/anyulbade/billplz/internal/service"
	"github.com/anyulbade/billplz/pkg/billplz"
)

type ErrorResponse struct {
	Error      string                `json:"error"`
	Details    string                `json:"details,omitempty"`
	Type       string                `json:"type,omitempty"`
	StatusCode int                   `json:"upstream_status,omitempty"`
	Errors     []dto.ValidationError `json:"errors,omitempty"`
}

// MapError picks the HTTP status and body for an error raised by a handler.
func MapError(err error) (int, ErrorResponse) {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, ErrorResponse{Error: "validation failed", Errors: vErr.Fields}
	}
	if errors.Is(err, service.ErrInputType) {
		return http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: err.Error()}
	}
	if errors.Is(err, service.ErrUnknownTool) {
		return http.StatusNotFound, ErrorResponse{Error: "tool not found", Details: err.Error()}
	}

	var bErr *billplz.Error
	if errors.As(err, &bErr) {
		switch bErr.Kind {
		case billplz.KindAPI:
			return http.StatusBadGateway, ErrorResponse{
				Error:      "billplz api error",
				Details:    bErr.Message,
				Type:       bErr.Type,
				StatusCode: bErr.StatusCode,
			}
		case billplz.KindTransport:
			return http.StatusBadGateway, ErrorResponse{Error: "billplz unreachable", Details: err.Error()}
		default:
			return http.StatusBadGateway, ErrorResponse{
				Error:      "unexpected billplz response",
				Details:    err.Error(),
				StatusCode: bErr.StatusCode,
			}
		}
	}

	return MapDBError(err)
}

func MapDBError(err error) (int, ErrorResponse) {
	if errors.Is(err, pgx.ErrNoRows) {
		return http.StatusNotFound, ErrorResponse{Error: "resource not found"}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return http.StatusConflict, ErrorResponse{
				Error:   "resource already exists",
				Details: pgErr.Detail,
			}
		case "23514": // check_violation
			return http.StatusBadRequest, ErrorResponse{
				Error:   "constraint violation",
				Details: pgErr.Detail,
			}
		}
	}

	log.Error().Err(err).Msg("unhandled error")
	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
}

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last().Err
			status, resp := MapError(err)
			c.JSON(status, resp)
		}
	}
}
