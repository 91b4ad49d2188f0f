package v1

import (
	"net/http"

	"go-workerconnect-backend/config"
	"go-workerconnect-backend/internal/delivery/http/response"
	"go-workerconnect-backend/internal/domain"
	"go-workerconnect-backend/pkg/apperror"
	"go-workerconnect-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type RegistrationHandler struct {
	registrationUC domain.RegistrationUsecase
	validate       *validator.Validate
	config         *config.Config
}

// NewRegistrationHandler wires the multi-step registration wizard. The flow
// id returned by start identifies the transient workflow across requests.
func NewRegistrationHandler(public *gin.RouterGroup, registrationUC domain.RegistrationUsecase, validate *validator.Validate, cfg *config.Config) {
	handler := &RegistrationHandler{registrationUC: registrationUC, validate: validate, config: cfg}

	register := public.Group("/register")
	{
		register.POST("/start", handler.Start)
		register.GET("/:flow", handler.Get)
		register.PATCH("/:flow", handler.Update)
		register.POST("/:flow/next", handler.Next)
		register.POST("/:flow/previous", handler.Previous)
		register.POST("/:flow/submit", handler.Submit)
	}
}

// RegistrationState is the wizard payload returned by the state-reading
// endpoints. Hints are advisory notes about field formats; the wizard
// accepts the entered values either way.
type RegistrationState struct {
	Workflow *domain.RegistrationWorkflow `json:"workflow"`
	Hints    []string                     `json:"hints,omitempty"`
}

func (h *RegistrationHandler) state(wf *domain.RegistrationWorkflow) RegistrationState {
	hints := validation.Hints(h.validate, validation.AdvisoryInput{
		Name:         wf.Form.Name,
		Phone:        wf.Form.Phone,
		AadharNumber: wf.Form.AadharNumber,
	})
	return RegistrationState{Workflow: wf, Hints: hints}
}

type StartRegistrationRequest struct {
	Role string `json:"role" binding:"omitempty,oneof=customer worker"`
}

type UpdateRegistrationRequest struct {
	Role   *string          `json:"role" binding:"omitempty,oneof=customer worker"`
	Fields domain.FormPatch `json:"fields"`
}

func (h *RegistrationHandler) Start(c *gin.Context) {
	var req StartRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	wf, err := h.registrationUC.Start(req.Role)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Registration started", h.state(wf))
}

func (h *RegistrationHandler) Get(c *gin.Context) {
	wf, err := h.registrationUC.Get(c.Param("flow"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Registration state", h.state(wf))
}

// Update patches form fields and/or switches the selected role. A role
// switch resets the wizard to step 1 and clears entered fields.
func (h *RegistrationHandler) Update(c *gin.Context) {
	var req UpdateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	flowID := c.Param("flow")
	if req.Role != nil {
		wf, err := h.registrationUC.SelectRole(flowID, *req.Role)
		if err != nil {
			c.Error(err)
			return
		}
		response.Success(c, http.StatusOK, "Role selected", h.state(wf))
		return
	}

	wf, err := h.registrationUC.UpdateFields(flowID, req.Fields)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Registration updated", h.state(wf))
}

func (h *RegistrationHandler) Next(c *gin.Context) {
	wf, err := h.registrationUC.Next(c.Param("flow"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Step advanced", h.state(wf))
}

func (h *RegistrationHandler) Previous(c *gin.Context) {
	wf, err := h.registrationUC.Previous(c.Param("flow"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Step reverted", h.state(wf))
}

// Submit finalizes the wizard and creates the session. On success the
// workflow is gone; on validation failure it is left untouched so the
// client can correct and resubmit.
func (h *RegistrationHandler) Submit(c *gin.Context) {
	result, err := h.registrationUC.Submit(c.Request.Context(), c.Param("flow"))
	if err != nil {
		c.Error(err)
		return
	}

	setAuthCookie(c, h.config, result.Token)
	response.Success(c, http.StatusCreated, "Welcome to WorkerConnect!", result)
}
