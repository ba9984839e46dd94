package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/crewboard/crewboard/internal/app/models/dto"
	"github.com/crewboard/crewboard/internal/app/repositories"
	"github.com/crewboard/crewboard/internal/app/services"
	"github.com/crewboard/crewboard/internal/pkg/apperrors"
	"github.com/crewboard/crewboard/internal/pkg/helpers"
)

// allowedFilters is the allow-list of query parameters forwarded to the list
// query as filters. Anything else in the query string is ignored, never an
// error, so stale dashboard links keep working.
var allowedFilters = []string{
	"turma",
	"situacao_financeira",
	"tripulante",
	"certificado",
	"pais",
	"situacao_atual",
}

// AlunoController handles the aluno HTTP endpoints.
type AlunoController struct {
	alunoService services.AlunoService
}

// NewAlunoController creates a new AlunoController.
func NewAlunoController(alunoService services.AlunoService) *AlunoController {
	return &AlunoController{alunoService: alunoService}
}

// List handles GET /api/alunos.
func (c *AlunoController) List(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	filters := map[string]string{}
	for _, key := range allowedFilters {
		if value, ok := ctx.GetQuery(key); ok && value != "" {
			filters[key] = value
		}
	}

	params := repositories.ListParams{
		Page:     page,
		PageSize: pageSize,
		Search:   ctx.Query("search"),
		Filters:  filters,
	}

	alunos, total, err := c.alunoService.List(ctx, params)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ListAlunosResponse{
		Data:       alunos,
		Pagination: helpers.NewPaginationInfo(page, pageSize, total),
	})
}

// GetByID handles GET /api/alunos/:id. The record is returned bare, without
// an envelope.
func (c *AlunoController) GetByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		ctx.Error(err)
		return
	}

	aluno, err := c.alunoService.GetByID(ctx, id)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, aluno)
}

// Create handles POST /api/alunos.
func (c *AlunoController) Create(ctx *gin.Context) {
	var req dto.CreateAlunoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		verr := apperrors.NewValidationError()
		verr.Add("", "payload JSON inválido")
		ctx.Error(verr)
		return
	}

	created, err := c.alunoService.Create(ctx, &req)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MutationResponse{
		Success: true,
		Message: "Aluno cadastrado com sucesso",
		Data:    created,
	})
}

// Update handles PUT /api/alunos/:id.
func (c *AlunoController) Update(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		ctx.Error(err)
		return
	}

	var req dto.UpdateAlunoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		verr := apperrors.NewValidationError()
		verr.Add("", "payload JSON inválido")
		ctx.Error(verr)
		return
	}

	updated, err := c.alunoService.Update(ctx, id, &req)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MutationResponse{
		Success: true,
		Message: "Aluno atualizado com sucesso",
		Data:    updated,
	})
}

// Delete handles DELETE /api/alunos/:id.
func (c *AlunoController) Delete(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		ctx.Error(err)
		return
	}

	if err := c.alunoService.Delete(ctx, id); err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MutationResponse{
		Success: true,
		Message: "Aluno excluído com sucesso",
	})
}

// Stats handles GET /api/alunos/stats.
func (c *AlunoController) Stats(ctx *gin.Context) {
	stats, err := c.alunoService.Stats(ctx)
	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// parseIDParam reads and validates the :id path parameter.
func parseIDParam(ctx *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ErrInvalidID
	}
	return id, nil
}
