package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peakops/website/internal/api/dto/v1/forms"
	"github.com/peakops/website/internal/api/validation"
	"github.com/peakops/website/internal/assets"
	"github.com/peakops/website/internal/logging"
	"github.com/peakops/website/internal/service"
)

// FormsHandler processes the lead-capture forms. Validated submissions are
// forwarded to the spreadsheet webhook; forwarding failures are logged and
// never shown to the visitor.
type FormsHandler struct {
	baseURL string
	sheets  *service.SheetsService
	logger  *logging.Logger
}

func NewFormsHandler(baseURL string, sheets *service.SheetsService) *FormsHandler {
	return &FormsHandler{
		baseURL: baseURL,
		sheets:  sheets,
		logger:  logging.GetGlobalLogger(),
	}
}

// ShowLeadMagnet renders the landing page for m. After a successful signup
// the visitor lands back here with ?download=1 set.
func (h *FormsHandler) ShowLeadMagnet(m assets.LeadMagnet) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.renderLead(c, m, forms.LeadRequest{}, nil)
	}
}

// SubmitLeadMagnet validates the signup and redirects to the download state.
func (h *FormsHandler) SubmitLeadMagnet(m assets.LeadMagnet) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req forms.LeadRequest
		if err := c.ShouldBind(&req); err != nil {
			h.logger.Warn("Failed to bind %s form: %v", m.Path(), err)
		}
		req.Normalize()

		if err := validation.Struct(&req); err != nil {
			h.renderLead(c, m, req, validation.Messages(err))
			return
		}

		h.forward(c, m.Path(), req.Fields())
		c.Redirect(http.StatusSeeOther, m.Path()+"?download=1")
	}
}

func (h *FormsHandler) renderLead(c *gin.Context, m assets.LeadMagnet, form forms.LeadRequest, errs []string) {
	data := pageData(h.baseURL, m.Path(), gin.H{
		"Magnet":   m,
		"Form":     form,
		"Errors":   errs,
		"Download": c.Query("download") == "1",
	})
	c.HTML(http.StatusOK, "lead.html", data)
}

// ShowContact renders the contact page. After a successful submission the
// visitor lands back here with ?sent=1 set.
func (h *FormsHandler) ShowContact(c *gin.Context) {
	h.renderContact(c, forms.ContactRequest{}, nil)
}

// SubmitContact validates the contact form and redirects to the sent state.
func (h *FormsHandler) SubmitContact(c *gin.Context) {
	var req forms.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("Failed to bind contact form: %v", err)
	}
	req.Normalize()

	if err := validation.Struct(&req); err != nil {
		h.renderContact(c, req, validation.Messages(err))
		return
	}

	h.forward(c, "/contact", req.Fields())
	c.Redirect(http.StatusSeeOther, "/contact?sent=1")
}

func (h *FormsHandler) renderContact(c *gin.Context, form forms.ContactRequest, errs []string) {
	data := pageData(h.baseURL, "/contact", gin.H{
		"Form":   form,
		"Errors": errs,
		"Sent":   c.Query("sent") == "1",
	})
	c.HTML(http.StatusOK, "contact.html", data)
}

// forward ships a validated submission to the spreadsheet webhook. Errors are
// logged and swallowed; the visitor's flow already succeeded.
func (h *FormsHandler) forward(c *gin.Context, source string, fields map[string]string) {
	sub := service.Submission{Source: source, Fields: fields}
	if err := h.sheets.Forward(c.Request.Context(), sub); err != nil {
		h.logger.Warn("Failed to forward %s submission: %v", source, err)
	}
}
