package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	contactUC "github.com/khoahotran/portfolio/internal/application/usecase/contact"
	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type ContactHandler struct {
	submitContactUseCase *contactUC.SubmitContactUseCase
	logger               logger.Logger
}

func NewContactHandler(uc *contactUC.SubmitContactUseCase, log logger.Logger) *ContactHandler {
	return &ContactHandler{submitContactUseCase: uc, logger: log}
}

func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("name, email, subject and message are required", err))
		return
	}

	input := contactUC.SubmitContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	output, err := h.submitContactUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ContactResponse{Status: output.Status, Message: output.Message})
}
