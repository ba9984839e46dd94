package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crewboard/crewboard/internal/app/controllers"
)

// SetupRouter registers the API routes. The static /alunos/stats route is
// declared alongside /alunos/:id; gin resolves the literal segment first.
func SetupRouter(router *gin.Engine, alunoController *controllers.AlunoController) {
	api := router.Group("/api")
	{
		alunos := api.Group("/alunos")
		{
			alunos.GET("", alunoController.List)
			alunos.GET("/stats", alunoController.Stats)
			alunos.GET("/:id", alunoController.GetByID)
			alunos.POST("", alunoController.Create)
			alunos.PUT("/:id", alunoController.Update)
			alunos.DELETE("/:id", alunoController.Delete)
		}

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}
}
