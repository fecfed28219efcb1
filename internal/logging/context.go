package logging

import (
	"context"

	"github.com/sirupsen/logrus"
)

type ctxKey string

const submissionKey ctxKey = "submission_id"

// WithSubmission stores a submission id in the context
func WithSubmission(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, submissionKey, id)
}

// GetSubmission gets the submission id from the context
func GetSubmission(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(submissionKey).(string); ok {
		return id
	}
	return ""
}

// FromContext returns an entry of base tagged with the context's submission id
func FromContext(ctx context.Context, base logrus.FieldLogger) *logrus.Entry {
	if base == nil {
		base = StdLogger()
	}
	if id := GetSubmission(ctx); id != "" {
		return base.WithField(FieldSubmission, id)
	}
	return base.WithFields(logrus.Fields{})
}
