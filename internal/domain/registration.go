package domain

import (
	"context"
	"errors"
)

// ErrPasswordMismatch blocks submission when password and confirmation
// differ. The workflow's field values are preserved.
var ErrPasswordMismatch = errors.New("password and confirmation do not match")

// Worker registration steps. Customers have a single form step.
const (
	StepBasicInfo            = 1
	StepContactAndSkills     = 2
	StepCredentialsAndUpload = 3
	StepReviewAndSubmit      = 4
)

// MaxStepsForRole returns the number of wizard steps for a role.
func MaxStepsForRole(role string) int {
	if role == RoleWorker {
		return StepReviewAndSubmit
	}
	return 1
}

// CustomerForm holds the single-step customer registration fields. All
// fields are free text at this layer; only the password pair is checked.
type CustomerForm struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Location        string `json:"location"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// WorkerForm extends the customer fields with the worker profile collected
// across the four wizard steps. Experience and Skills stay raw text until
// submission, where they are coerced (Atoi defaulting 0, comma split + trim).
type WorkerForm struct {
	CustomerForm
	Profession   string `json:"profession"`
	Experience   string `json:"experience"`
	Bio          string `json:"bio"`
	Skills       string `json:"skills"`
	AadharNumber string `json:"aadhar_number"`
}

// FormPatch is a partial field update merged into the workflow's form.
// Nil pointers leave the current value untouched.
type FormPatch struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	Location        *string `json:"location"`
	Password        *string `json:"password"`
	ConfirmPassword *string `json:"confirm_password"`
	Profession      *string `json:"profession"`
	Experience      *string `json:"experience"`
	Bio             *string `json:"bio"`
	Skills          *string `json:"skills"`
	AadharNumber    *string `json:"aadhar_number"`
}

// RegistrationWorkflow is the transient state of one registration wizard.
// It survives forward/backward navigation and is discarded on successful
// submission; switching role hard-resets it.
type RegistrationWorkflow struct {
	ID          string     `json:"id"`
	Role        string     `json:"role"`
	CurrentStep int        `json:"current_step"`
	MaxSteps    int        `json:"max_steps"`
	Form        WorkerForm `json:"form"`
}

type RegistrationUsecase interface {
	Start(role string) (*RegistrationWorkflow, error)
	Get(id string) (*RegistrationWorkflow, error)
	Next(id string) (*RegistrationWorkflow, error)
	Previous(id string) (*RegistrationWorkflow, error)
	SelectRole(id, role string) (*RegistrationWorkflow, error)
	UpdateFields(id string, patch FormPatch) (*RegistrationWorkflow, error)
	Submit(ctx context.Context, id string) (*AuthResult, error)
}
