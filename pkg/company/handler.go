package company

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/takimet-io/takimet/internal/errdef"
	"github.com/takimet-io/takimet/internal/handler"
	"github.com/takimet-io/takimet/pkg/model"
)

func NewHandler(companyService companyService) Handler {
	return Handler{companyService: companyService}
}

type Handler struct {
	companyService companyService
}

type companyService interface {
	Register(ctx context.Context, userId uint, name, description, contactEmail, contactPhone string) (*model.Company, error)
	Update(ctx context.Context, id, userId uint, name, description, contactEmail, contactPhone string) (*model.Company, error)
	UploadLogo(ctx context.Context, id, userId uint, body io.Reader, size int64, contentType string) (*model.Company, error)
	Approve(ctx context.Context, id uint) (*model.Company, error)
	Reject(ctx context.Context, id uint) (*model.Company, error)
	SetStatus(ctx context.Context, id uint, status model.VerificationStatus) (*model.Company, error)
	ListPending(ctx context.Context) ([]*model.Company, error)
	FindAll(ctx context.Context) ([]*model.Company, error)
	FindById(ctx context.Context, id uint) (*model.Company, error)
	FindByUserID(ctx context.Context, userId uint) (*model.Company, error)
}

type RegisterRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	ContactEmail string `json:"contactEmail" binding:"required,email"`
	ContactPhone string `json:"contactPhone"`
}

// Register company
func (h Handler) Register(c *gin.Context) {
	// swagger:route POST /companies registerCompany
	//
	// Register company
	//
	// Register a company profile for the signed in account. The profile enters
	// the moderation queue and events can only be published once an
	// administrator approves it.
	//
	// responses:
	//   201: Company
	//   400: Error
	//   401: Error
	//   409: Error
	//   415: Error
	var request RegisterRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	company, err := h.companyService.Register(c.Request.Context(), user.ID, request.Name, request.Description, request.ContactEmail, request.ContactPhone)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "company": company})
}

type UpdateRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	ContactEmail string `json:"contactEmail" binding:"required,email"`
	ContactPhone string `json:"contactPhone"`
}

// Update company
func (h Handler) Update(c *gin.Context) {
	// swagger:route PUT /companies/{id} updateCompany
	//
	// Update company
	//
	// Update the company profile. Only the owning account may edit it.
	//
	// responses:
	//   200: Company
	//   400: Error
	//   401: Error
	//   403: Error
	//   404: Error
	//   415: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	var request UpdateRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	company, err := h.companyService.Update(c.Request.Context(), id, user.ID, request.Name, request.Description, request.ContactEmail, request.ContactPhone)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "company": company})
}

// UploadLogo company
func (h Handler) UploadLogo(c *gin.Context) {
	// swagger:route POST /companies/{id}/logo uploadCompanyLogo
	//
	// Upload company logo
	//
	// responses:
	//   200: Company
	//   400: Error
	//   401: Error
	//   403: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		_ = c.Error(errdef.NewBadRequest("logo file is required: %v", err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		_ = c.Error(errdef.NewBadRequest("failed to open logo file: %v", err))
		return
	}
	defer func(file io.ReadCloser) {
		_ = file.Close()
	}(file)

	company, err := h.companyService.UploadLogo(c.Request.Context(), id, user.ID, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "company": company})
}

// MyCompany company
func (h Handler) MyCompany(c *gin.Context) {
	// swagger:route GET /companies/my-company myCompany
	//
	// Company of the signed in account
	//
	// responses:
	//   200: Company
	//   401: Error
	//   404: Error
	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	company, err := h.companyService.FindByUserID(c.Request.Context(), user.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "company": company})
}

// FindById company
func (h Handler) FindById(c *gin.Context) {
	// swagger:route GET /companies/{id} findCompanyById
	//
	// Find company
	//
	// responses:
	//   200: Company
	//   400: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	company, err := h.companyService.FindById(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "company": company})
}

// List companies
func (h Handler) List(c *gin.Context) {
	// swagger:route GET /admin/companies listCompanies
	//
	// List companies
	//
	// List companies pending verification. Pass status=all to list every
	// company regardless of status.
	//
	// responses:
	//   200: Companies
	//   401: Error
	//   403: Error
	var companies []*model.Company
	var err error
	if c.Query("status") == "all" {
		companies, err = h.companyService.FindAll(c.Request.Context())
	} else {
		companies, err = h.companyService.ListPending(c.Request.Context())
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "companies": companies})
}

// Approve company
func (h Handler) Approve(c *gin.Context) {
	// swagger:route POST /admin/companies/{id}/approve approveCompany
	//
	// Approve company
	//
	// responses:
	//   200: Company
	//   400: Error
	//   401: Error
	//   403: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	company, err := h.companyService.Approve(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "company": company})
}

// Reject company
func (h Handler) Reject(c *gin.Context) {
	// swagger:route POST /admin/companies/{id}/deny rejectCompany
	//
	// Reject company
	//
	// responses:
	//   200: Company
	//   400: Error
	//   401: Error
	//   403: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	company, err := h.companyService.Reject(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "company": company})
}

type SetStatusRequest struct {
	Status model.VerificationStatus `json:"status" binding:"required,oneOf=pending verified rejected"`
}

// SetStatus company
func (h Handler) SetStatus(c *gin.Context) {
	// swagger:route PUT /admin/companies/{id}/status setCompanyStatus
	//
	// Set company status
	//
	// Administrator override moving a company between any two verification
	// states without sending a decision mail.
	//
	// responses:
	//   200: Company
	//   400: Error
	//   401: Error
	//   403: Error
	//   404: Error
	//   415: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	var request SetStatusRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	company, err := h.companyService.SetStatus(c.Request.Context(), id, request.Status)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "company": company})
}
