package controller

import (
	"github.com/ytget/android-template-generator/internal/i18n"
	"github.com/ytget/android-template-generator/internal/model"
)

// Texts resolves user-facing strings
type Texts interface {
	GetText(key string) string
	GetCurrentLanguage() string
}

// kindTextKeys maps kinds with a fixed user-facing message to their text key
var kindTextKeys = map[model.ErrorKind]string{
	model.KindNetwork:            i18n.KeyErrNetwork,
	model.KindInvalidBlob:        i18n.KeyErrInvalidBlob,
	model.KindInvalidFilename:    i18n.KeyErrInvalidFilename,
	model.KindBrowserUnsupported: i18n.KeyErrUnsupported,
	model.KindDownload:           i18n.KeyErrDownload,
}

// UserMessage converts a pipeline failure into the banner text. Server and
// unknown errors show their own message.
func UserMessage(err error, texts Texts) string {
	genErr, ok := model.AsGenerationError(err)
	if !ok {
		return texts.GetText(i18n.KeyErrUnexpected)
	}

	switch genErr.Kind {
	case model.KindNetwork, model.KindInvalidBlob, model.KindInvalidFilename,
		model.KindBrowserUnsupported, model.KindDownload:
		return texts.GetText(kindTextKeys[genErr.Kind])
	case model.KindServer, model.KindUnknown:
		if genErr.Message != "" {
			return genErr.Message
		}
		return texts.GetText(i18n.KeyErrGeneration)
	default:
		if genErr.Message != "" {
			return genErr.Message
		}
		return texts.GetText(i18n.KeyErrGeneration)
	}
}
