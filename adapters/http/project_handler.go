package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	projectUC "github.com/khoahotran/portfolio/internal/application/usecase/project"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type ProjectHandler struct {
	listProjectsUseCase *projectUC.ListProjectsUseCase
	getProjectUseCase   *projectUC.GetProjectUseCase
	logger              logger.Logger
}

func NewProjectHandler(
	listUC *projectUC.ListProjectsUseCase,
	getUC *projectUC.GetProjectUseCase,
	log logger.Logger,
) *ProjectHandler {
	return &ProjectHandler{
		listProjectsUseCase: listUC,
		getProjectUseCase:   getUC,
		logger:              log,
	}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	output, err := h.listProjectsUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]ProjectDTO, len(output.Projects))
	for i, p := range output.Projects {
		dtos[i] = ToProjectDTO(p)
	}
	c.JSON(http.StatusOK, ProjectListResponse{Projects: dtos})
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	input := projectUC.GetProjectInput{ID: c.Param("id")}
	output, err := h.getProjectUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ProjectResponse{Project: ToProjectDTO(output.Project)})
}
