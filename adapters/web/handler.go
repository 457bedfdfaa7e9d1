package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/khoahotran/portfolio/internal/site/contact"
	"github.com/khoahotran/portfolio/internal/site/shell"
	"github.com/khoahotran/portfolio/internal/site/theme"
	"github.com/khoahotran/portfolio/internal/site/view"
	"github.com/khoahotran/portfolio/pkg/logger"
)

type SiteHandler struct {
	shell     *shell.Shell
	submitter contact.Submitter
	logger    logger.Logger
}

func NewSiteHandler(sh *shell.Shell, sub contact.Submitter, log logger.Logger) *SiteHandler {
	return &SiteHandler{shell: sh, submitter: sub, logger: log}
}

func (h *SiteHandler) render(c *gin.Context, status int, node g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := node.Render(c.Writer); err != nil {
		h.logger.Error("Failed to render page", err, zap.String("path", c.Request.URL.Path))
	}
}

func (h *SiteHandler) page(c *gin.Context, status int, form contact.View) {
	cfg := h.shell.Configure(c.Writer, c.Request, c.Query("category"))
	page := h.shell.Compose(c.Request.Context(), cfg)
	if c.Request.Context().Err() != nil {
		return
	}
	h.render(c, status, view.Document(page, form))
}

// Index renders the page. ?category= selects the technology filter tab.
func (h *SiteHandler) Index(c *gin.Context) {
	h.page(c, http.StatusOK, contact.View{})
}

// SubmitContact posts the form to the API and renders the page with the
// outcome banner.
func (h *SiteHandler) SubmitContact(c *gin.Context) {
	var fields contact.Fields
	if err := c.ShouldBind(&fields); err != nil {
		h.page(c, http.StatusBadRequest, contact.View{})
		return
	}

	form := contact.NewForm(h.submitter, h.logger)
	if err := form.Submit(c.Request.Context(), fields); err != nil {
		var vErr *contact.ValidationError
		if errors.As(err, &vErr) {
			h.logger.Warn("Contact form rejected", zap.Strings("missing", vErr.Missing))
			h.page(c, http.StatusBadRequest, contact.View{Fields: fields})
			return
		}
		h.logger.Error("Contact form failed", err)
	}
	h.page(c, http.StatusOK, form.View())
}

// ToggleTheme flips and persists the dark-mode preference. Script callers
// asking for JSON get the new value; plain form posts are redirected home.
func (h *SiteHandler) ToggleTheme(c *gin.Context) {
	pref := theme.Resolve(c.Request).Toggled()
	theme.Persist(c.Writer, pref.Dark)

	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		c.JSON(http.StatusOK, gin.H{"darkMode": pref.Dark})
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Visibility records one intersection report for a section.
func (h *SiteHandler) Visibility(c *gin.Context) {
	id := c.Param("section")
	if !shell.KnownSection(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown section"})
		return
	}

	ratio, err := strconv.ParseFloat(c.PostForm("ratio"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ratio must be a number"})
		return
	}

	flipped := shell.ObserveSection(c.Writer, c.Request, id, ratio)
	c.JSON(http.StatusOK, gin.H{"section": id, "entered": flipped})
}
