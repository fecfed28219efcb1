package model

// SubmissionStatus represents the phase of a single generation submission
type SubmissionStatus string

const (
	// StatusIdle means nothing has been submitted yet
	StatusIdle SubmissionStatus = "Idle"

	// StatusValidating means the form inputs are being checked
	StatusValidating SubmissionStatus = "Validating"

	// StatusSubmitting means the generation request is in flight
	StatusSubmitting SubmissionStatus = "Submitting"

	// StatusSuccess means the archive was generated and saved
	StatusSuccess SubmissionStatus = "Success"

	// StatusFailed means generation or download failed
	StatusFailed SubmissionStatus = "Failed"

	// StatusFailedValidation means the inputs were rejected before any network call
	StatusFailedValidation SubmissionStatus = "FailedValidation"
)

// String returns the string representation of SubmissionStatus
func (s SubmissionStatus) String() string {
	return string(s)
}

// IsActive returns true while a submission is being processed
func (s SubmissionStatus) IsActive() bool {
	return s == StatusValidating || s == StatusSubmitting
}

// IsFinished returns true if the submission reached a terminal state
func (s SubmissionStatus) IsFinished() bool {
	return s == StatusSuccess || s == StatusFailed || s == StatusFailedValidation
}

// IsFailure returns true for both network and validation failures
func (s SubmissionStatus) IsFailure() bool {
	return s == StatusFailed || s == StatusFailedValidation
}
