package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crewboard/crewboard/internal/app/models/dto"
	"github.com/crewboard/crewboard/internal/pkg/apperrors"
	"github.com/crewboard/crewboard/internal/pkg/logger"
)

// HandleAPIError translates errors attached to the context into the error
// envelope. Handlers never write error responses themselves; they call
// ctx.Error and return.
//
// Internal details never reach the client. Unexpected failures get a fixed
// generic message and the real error only goes to the logs.
func HandleAPIError() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var verr *apperrors.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Success: false,
				Message: "Erro de validação",
				Errors:  verr.Fields,
			})

		case errors.Is(err, apperrors.ErrInvalidID):
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("ID inválido"))

		case errors.Is(err, apperrors.ErrAlunoNotFound):
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("Aluno não encontrado"))

		case errors.Is(err, apperrors.ErrBackendUnavailable):
			logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Record store unavailable")
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Erro interno do servidor"))

		default:
			logger.Error().Err(err).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Msg("Unhandled error")
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Erro interno do servidor"))
		}
	}
}
