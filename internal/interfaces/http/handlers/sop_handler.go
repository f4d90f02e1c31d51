package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"nika-sop.backend/internal/domain/entities"
	domainerrors "nika-sop.backend/internal/domain/errors"
	"nika-sop.backend/internal/infrastructure/mailer"
	"nika-sop.backend/internal/interfaces/http/middleware"
	"nika-sop.backend/internal/interfaces/http/response"
	"nika-sop.backend/internal/metrics"
	"nika-sop.backend/internal/usecases"
	"nika-sop.backend/pkg/docfile"
	"nika-sop.backend/pkg/logger"
)

const (
	sopEmailSubject = "Your Statement of Purpose (Nika SOP Assistant)"
	sopEmailBody    = "Dear user,\n\nHere is your SOP as a DOCX attachment.\n\nBest wishes,\nNika SOP Assistant"
)

// SOPHandler handles the generation, history, download and delivery endpoints
type SOPHandler struct {
	sopUsecase *usecases.SOPUsecase
	mail       mailer.Sender
}

// NewSOPHandler creates a new SOP handler
func NewSOPHandler(sopUsecase *usecases.SOPUsecase, mail mailer.Sender) *SOPHandler {
	return &SOPHandler{
		sopUsecase: sopUsecase,
		mail:       mail,
	}
}

// pageContext builds the session fields every page template expects. Credit
// lookups are best-effort: a storage error renders the page as if no credits
// remain rather than failing the request.
func (h *SOPHandler) pageContext(c *gin.Context) gin.H {
	data := gin.H{"IsLoggedIn": false, "Message": "", "Success": true}
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		return data
	}

	data["IsLoggedIn"] = true
	data["UserEmail"] = email
	data["FreeLimit"] = h.sopUsecase.FreeLimit()

	left, err := h.sopUsecase.CreditsLeft(c.Request.Context(), email)
	if err != nil {
		logger.Error(c.Request.Context(), "failed to derive credits", zap.Error(err))
		left = 0
	}
	data["CreditsLeft"] = left
	return data
}

// Home renders the landing page
// GET /
func (h *SOPHandler) Home(c *gin.Context) {
	response.Page(c, "index.html", h.pageContext(c))
}

// Upgrade renders the out-of-credits page
// GET /upgrade
func (h *SOPHandler) Upgrade(c *gin.Context) {
	response.Page(c, "upgrade.html", h.pageContext(c))
}

// GenerateForm renders the generation form
// GET /generate-sop
func (h *SOPHandler) GenerateForm(c *gin.Context) {
	response.Page(c, "generate_sop.html", h.pageContext(c))
}

// Generate runs the full generation workflow: optional CV upload, text
// extraction, quota-gated provider call, result rendering
// POST /generate-sop
func (h *SOPHandler) Generate(c *gin.Context) {
	var input entities.GenerateSOPInput
	if err := c.ShouldBind(&input); err != nil {
		appErr := domainerrors.BadRequest("malformed form submission")
		c.String(appErr.Code, appErr.Message)
		return
	}
	if email, ok := middleware.GetUserEmail(c); ok {
		input.SessionEmail = email
	}

	if file, err := c.FormFile("cv_file"); err == nil && file != nil && file.Filename != "" {
		text, err := h.extractUpload(c, file)
		if err != nil {
			if errors.Is(err, docfile.ErrUnsupportedFormat) {
				response.Page(c, "generate_sop.html", response.Merge(h.pageContext(c), gin.H{
					"Message": "Unsupported file format. Please upload PDF or DOCX.",
					"Success": false,
				}))
				return
			}
			logger.Error(c.Request.Context(), "cv extraction failed", zap.Error(err))
			response.Page(c, "generate_sop.html", response.Merge(h.pageContext(c), gin.H{
				"Message": "Could not read the uploaded file. Please try another file.",
				"Success": false,
			}))
			return
		}
		input.CVText = text
	}

	text, err := h.sopUsecase.Generate(c.Request.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrQuotaExceeded):
			response.Redirect(c, "/upgrade")
		case errors.Is(err, domainerrors.ErrEmptySubmission):
			response.Page(c, "generate_sop.html", response.Merge(h.pageContext(c), gin.H{
				"Message": "Please either upload a CV or fill in the form fields.",
				"Success": false,
			}))
		case errors.Is(err, domainerrors.ErrInvalidInput):
			response.Page(c, "generate_sop.html", response.Merge(h.pageContext(c), gin.H{
				"Message": "Please provide at least your name and field of study.",
				"Success": false,
			}))
		default:
			// Provider and storage failures still render the result page,
			// with the error text standing in for the document.
			logger.Error(c.Request.Context(), "sop generation failed", zap.Error(err))
			response.Page(c, "result.html", response.Merge(h.pageContext(c), gin.H{
				"SOPText": fmt.Sprintf("Error generating SOP: %v", err),
			}))
		}
		return
	}

	response.Page(c, "result.html", response.Merge(h.pageContext(c), gin.H{"SOPText": text}))
}

// extractUpload spools the multipart file to a temp path and extracts its
// text. The temp file is removed before returning, on every path.
func (h *SOPHandler) extractUpload(c *gin.Context, header *multipart.FileHeader) (string, error) {
	tmpPath := filepath.Join(os.TempDir(),
		fmt.Sprintf("cv_%d%s", time.Now().UnixNano(), filepath.Ext(filepath.Base(header.Filename))))
	if err := c.SaveUploadedFile(header, tmpPath); err != nil {
		return "", err
	}
	defer os.Remove(tmpPath)

	return docfile.ExtractText(tmpPath)
}

// MySOPs lists the session user's generation history, newest first
// GET /my-sops
func (h *SOPHandler) MySOPs(c *gin.Context) {
	email, _ := middleware.GetUserEmail(c)
	sops, err := h.sopUsecase.ListSOPs(c.Request.Context(), email)
	if err != nil {
		logger.Error(c.Request.Context(), "failed to list sops", zap.Error(err))
		sops = nil
	}
	response.Page(c, "my_sops.html", response.Merge(h.pageContext(c), gin.H{"SOPs": sops}))
}

// Download renders the posted text as a DOCX attachment
// POST /download-sop
func (h *SOPHandler) Download(c *gin.Context) {
	text := c.PostForm("sop_text")
	if text == "" {
		response.Redirect(c, "/generate-sop")
		return
	}

	doc, err := docfile.Build(text)
	if err != nil {
		logger.Error(c.Request.Context(), "failed to build docx", zap.Error(err))
		appErr := domainerrors.InternalError(err)
		c.String(appErr.Code, appErr.Message)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, mailer.AttachmentFilename))
	c.Data(http.StatusOK, docfile.ContentType, doc)
}

// EmailSOPLoggedIn emails the posted text to the session user. The
// confirmation page greets the user by the local part of their email.
// POST /email-sop-logged-in
func (h *SOPHandler) EmailSOPLoggedIn(c *gin.Context) {
	email, _ := middleware.GetUserEmail(c)
	name := email
	if at := strings.Index(email, "@"); at >= 0 {
		name = email[:at]
	}
	h.sendSOP(c, name, email, "Your Statement of Purpose has been sent to your registered email.")
}

// EmailSOP emails the posted text to an anonymous visitor, capturing the
// name/email pair as a lead first
// POST /email-sop
func (h *SOPHandler) EmailSOP(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	if name == "" || email == "" {
		response.Page(c, "result.html", response.Merge(h.pageContext(c), gin.H{
			"SOPText": c.PostForm("sop_text"),
			"Message": "Please provide your name and email.",
			"Success": false,
		}))
		return
	}

	// Duplicate leads are fine; only storage failures are worth logging.
	if err := h.sopUsecase.CaptureLead(c.Request.Context(), name, email); err != nil &&
		!errors.Is(err, domainerrors.ErrAlreadyExists) {
		logger.Error(c.Request.Context(), "failed to capture lead", zap.Error(err))
	}

	h.sendSOP(c, name, email, "Your Statement of Purpose has been sent to your email.")
}

// sendSOP builds the attachment and delivers it best-effort, then renders the
// confirmation page either way.
func (h *SOPHandler) sendSOP(c *gin.Context, name, email, sentMessage string) {
	text := c.PostForm("sop_text")
	if text == "" {
		response.Redirect(c, "/generate-sop")
		return
	}

	message := sentMessage
	doc, err := docfile.Build(text)
	if err == nil {
		err = h.mail.SendSOP(c.Request.Context(), email, sopEmailSubject, sopEmailBody, doc)
	}
	if err != nil {
		logger.Error(c.Request.Context(), "failed to email sop",
			zap.String("to", email), zap.Error(err))
		metrics.EmailsTotal.WithLabelValues("sop", "error").Inc()
		message = "We could not send the email right now. You can still download your SOP."
	} else {
		metrics.EmailsTotal.WithLabelValues("sop", "success").Inc()
	}

	response.Page(c, "email_sent.html", response.Merge(h.pageContext(c), gin.H{
		"Message":   message,
		"LeadName":  name,
		"LeadEmail": email,
	}))
}
