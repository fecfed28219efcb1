package controller

import (
	"fmt"
	"testing"

	"github.com/ytget/android-template-generator/internal/i18n"
	"github.com/ytget/android-template-generator/internal/model"
)

func TestUserMessage_EveryKind(t *testing.T) {
	texts := i18n.NewLocalization()

	for _, kind := range model.ErrorKinds() {
		t.Run(string(kind), func(t *testing.T) {
			msg := UserMessage(model.NewGenerationError(kind, 0, "raw"), texts)
			if msg == "" {
				t.Fatal("Expected a message")
			}
			verbatim := kind == model.KindServer || kind == model.KindUnknown
			if verbatim != (msg == "raw") {
				t.Errorf("Kind %s produced %q", kind, msg)
			}
		})
	}
}

func TestUserMessage_WrappedError(t *testing.T) {
	texts := i18n.NewLocalization()
	err := fmt.Errorf("pipeline: %w", model.NewGenerationError(model.KindDownload, 0, "disk full"))

	if got := UserMessage(err, texts); got != texts.GetText(i18n.KeyErrDownload) {
		t.Errorf("Expected download message for wrapped error, got %q", got)
	}
}
