package usecase

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"go-workerconnect-backend/internal/domain"
	"go-workerconnect-backend/pkg/apperror"
	"go-workerconnect-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// registrationUsecase keeps the transient wizard state for in-flight
// registrations. State is process-local by contract: it survives navigation,
// is reset by a role switch, and is discarded on successful submission.
type registrationUsecase struct {
	mu        sync.RWMutex
	workflows map[string]*domain.RegistrationWorkflow
	authUC    domain.AuthUsecase
	validate  *validator.Validate
}

func NewRegistrationUsecase(authUC domain.AuthUsecase, validate *validator.Validate) domain.RegistrationUsecase {
	return &registrationUsecase{
		workflows: make(map[string]*domain.RegistrationWorkflow),
		authUC:    authUC,
		validate:  validate,
	}
}

func (u *registrationUsecase) Start(role string) (*domain.RegistrationWorkflow, error) {
	if role == "" {
		role = domain.RoleCustomer
	}
	if role != domain.RoleCustomer && role != domain.RoleWorker {
		return nil, apperror.BadRequest("Unknown role: " + role)
	}

	wf := &domain.RegistrationWorkflow{
		ID:          uuid.NewString(),
		Role:        role,
		CurrentStep: 1,
		MaxSteps:    domain.MaxStepsForRole(role),
	}

	u.mu.Lock()
	u.workflows[wf.ID] = wf
	u.mu.Unlock()
	return copyWorkflow(wf), nil
}

func (u *registrationUsecase) Get(id string) (*domain.RegistrationWorkflow, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	wf, ok := u.workflows[id]
	if !ok {
		return nil, apperror.NotFound("Registration workflow not found")
	}
	return copyWorkflow(wf), nil
}

// Next advances one step, clamped at the final step.
func (u *registrationUsecase) Next(id string) (*domain.RegistrationWorkflow, error) {
	return u.step(id, +1)
}

// Previous goes back one step, clamped at step 1.
func (u *registrationUsecase) Previous(id string) (*domain.RegistrationWorkflow, error) {
	return u.step(id, -1)
}

func (u *registrationUsecase) step(id string, delta int) (*domain.RegistrationWorkflow, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	wf, ok := u.workflows[id]
	if !ok {
		return nil, apperror.NotFound("Registration workflow not found")
	}

	next := wf.CurrentStep + delta
	if next < 1 {
		next = 1
	}
	if next > wf.MaxSteps {
		next = wf.MaxSteps
	}
	wf.CurrentStep = next
	return copyWorkflow(wf), nil
}

// SelectRole switches the account type. A role switch is a hard reset of
// workflow progress: the step returns to 1 and every entered field is
// cleared.
func (u *registrationUsecase) SelectRole(id, role string) (*domain.RegistrationWorkflow, error) {
	if role != domain.RoleCustomer && role != domain.RoleWorker {
		return nil, apperror.BadRequest("Unknown role: " + role)
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	wf, ok := u.workflows[id]
	if !ok {
		return nil, apperror.NotFound("Registration workflow not found")
	}

	wf.Role = role
	wf.CurrentStep = 1
	wf.MaxSteps = domain.MaxStepsForRole(role)
	wf.Form = domain.WorkerForm{}
	return copyWorkflow(wf), nil
}

// UpdateFields merges a partial patch into the form. Values persist across
// forward/backward navigation; navigation never clears them.
func (u *registrationUsecase) UpdateFields(id string, patch domain.FormPatch) (*domain.RegistrationWorkflow, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	wf, ok := u.workflows[id]
	if !ok {
		return nil, apperror.NotFound("Registration workflow not found")
	}

	applyPatch(&wf.Form, patch)
	return copyWorkflow(wf), nil
}

// Submit finalizes the registration. It is only reachable from the last
// step, checks the password pair, coerces the raw text fields, and hands the
// accumulated record to the authentication service. On success the workflow
// is discarded; on failure every entered value is preserved.
func (u *registrationUsecase) Submit(ctx context.Context, id string) (*domain.AuthResult, error) {
	u.mu.Lock()
	wf, ok := u.workflows[id]
	if !ok {
		u.mu.Unlock()
		return nil, apperror.NotFound("Registration workflow not found")
	}

	if wf.CurrentStep != wf.MaxSteps {
		u.mu.Unlock()
		return nil, apperror.BadRequest("Submission is only possible from the final step")
	}

	form := wf.Form
	role := wf.Role
	u.mu.Unlock()

	if form.Password != form.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}

	input := buildRegisterInput(&form, role)
	if err := u.validate.Struct(input); err != nil {
		messages := validation.FormatValidationErrors(err)
		return nil, apperror.UnprocessableEntity("Validation failed: " + strings.Join(messages, "; "))
	}

	result, err := u.authUC.Register(ctx, input)
	if err != nil {
		return nil, err
	}

	u.mu.Lock()
	delete(u.workflows, id)
	u.mu.Unlock()
	return result, nil
}

// buildRegisterInput coerces the raw form text into the canonical register
// record: experience parses to an integer defaulting to 0, skills split on
// commas with each segment trimmed.
func buildRegisterInput(form *domain.WorkerForm, role string) *domain.RegisterInput {
	input := &domain.RegisterInput{
		Name:     form.Name,
		Email:    form.Email,
		Role:     role,
		Phone:    form.Phone,
		Location: form.Location,
	}

	if role == domain.RoleWorker {
		experience, err := strconv.Atoi(strings.TrimSpace(form.Experience))
		if err != nil {
			experience = 0
		}

		var skills []string
		if form.Skills != "" {
			for _, s := range strings.Split(form.Skills, ",") {
				skills = append(skills, strings.TrimSpace(s))
			}
		}

		input.Profession = form.Profession
		input.Experience = experience
		input.Bio = form.Bio
		input.Skills = skills
		input.AadharNumber = form.AadharNumber
	}
	return input
}

func applyPatch(form *domain.WorkerForm, patch domain.FormPatch) {
	if patch.Name != nil {
		form.Name = *patch.Name
	}
	if patch.Email != nil {
		form.Email = *patch.Email
	}
	if patch.Phone != nil {
		form.Phone = *patch.Phone
	}
	if patch.Location != nil {
		form.Location = *patch.Location
	}
	if patch.Password != nil {
		form.Password = *patch.Password
	}
	if patch.ConfirmPassword != nil {
		form.ConfirmPassword = *patch.ConfirmPassword
	}
	if patch.Profession != nil {
		form.Profession = *patch.Profession
	}
	if patch.Experience != nil {
		form.Experience = *patch.Experience
	}
	if patch.Bio != nil {
		form.Bio = *patch.Bio
	}
	if patch.Skills != nil {
		form.Skills = *patch.Skills
	}
	if patch.AadharNumber != nil {
		form.AadharNumber = *patch.AadharNumber
	}
}

func copyWorkflow(wf *domain.RegistrationWorkflow) *domain.RegistrationWorkflow {
	out := *wf
	return &out
}
