package controller

import (
	"github.com/ytget/android-template-generator/internal/model"
	"github.com/ytget/android-template-generator/internal/validate"
)

// Form defaults
const (
	DefaultProjectName = "MyAndroidApp"
	DefaultPackageName = "com.example.myapp"
)

// MaxRetries caps user-triggered retries of one submission
const MaxRetries = 3

// State is a snapshot of the form and its submission
type State struct {
	Tier             model.Tier
	DialogOpen       bool
	ProjectName      string
	PackageName      string
	Libraries        model.LibraryChoices
	Status           model.SubmissionStatus
	ValidationErrors validate.Errors
	ErrorMessage     string
	RetryCount       int
	Busy             bool
	SavedPath        string
	Session          uint64
	SubmissionID     string
}

func initialState() State {
	return State{
		ProjectName: DefaultProjectName,
		PackageName: DefaultPackageName,
		Libraries:   model.DefaultLibraryChoices(),
		Status:      model.StatusIdle,
	}
}

// HasTier reports whether a template is selected
func (s State) HasTier() bool {
	return s.Tier != ""
}

// CanRetry reports whether a retry is currently offered
func (s State) CanRetry() bool {
	return (s.Status == model.StatusFailed || s.Status == model.StatusFailedValidation) &&
		s.ErrorMessage != "" &&
		s.RetryCount < MaxRetries &&
		!s.Busy
}

// clone copies the validation map so observers cannot mutate controller state
func (s State) clone() State {
	if s.ValidationErrors != nil {
		errs := make(validate.Errors, len(s.ValidationErrors))
		for k, v := range s.ValidationErrors {
			errs[k] = v
		}
		s.ValidationErrors = errs
	}
	return s
}
