package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	technologyUC "github.com/khoahotran/portfolio/internal/application/usecase/technology"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type TechnologyHandler struct {
	listTechnologiesUseCase *technologyUC.ListTechnologiesUseCase
	logger                  logger.Logger
}

func NewTechnologyHandler(uc *technologyUC.ListTechnologiesUseCase, log logger.Logger) *TechnologyHandler {
	return &TechnologyHandler{listTechnologiesUseCase: uc, logger: log}
}

// ListTechnologies accepts an optional ?category= filter.
func (h *TechnologyHandler) ListTechnologies(c *gin.Context) {
	input := technologyUC.ListTechnologiesInput{Category: c.Query("category")}
	output, err := h.listTechnologiesUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, TechnologyListResponse{Technologies: ToTechnologyDTOs(output.Technologies)})
}
