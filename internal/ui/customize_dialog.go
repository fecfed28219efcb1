package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/android-template-generator/internal/controller"
	"github.com/ytget/android-template-generator/internal/i18n"
	"github.com/ytget/android-template-generator/internal/model"
	"github.com/ytget/android-template-generator/internal/validate"
)

// CustomizeDialog collects names and library choices for one submission
type CustomizeDialog struct {
	window       fyne.Window
	ctrl         *controller.Controller
	localization *i18n.Localization
	onSubmit     func()
	onRetry      func()

	dialog  *dialog.CustomDialog
	visible bool

	projectEntry   *widget.Entry
	packageEntry   *widget.Entry
	projectError   *widget.Label
	packageError   *widget.Label
	networkRadio   *widget.RadioGroup
	diRadio        *widget.RadioGroup
	processorRadio *widget.RadioGroup

	banner      *fyne.Container
	bannerText  *widget.Label
	retryStatus *widget.Label
	retryBtn    *widget.Button
	progress    *widget.ProgressBarInfinite

	cancelBtn   *widget.Button
	downloadBtn *widget.Button
}

// NewCustomizeDialog creates the dialog; onSubmit and onRetry start the pipeline
func NewCustomizeDialog(window fyne.Window, ctrl *controller.Controller, localization *i18n.Localization, onSubmit, onRetry func()) *CustomizeDialog {
	cd := &CustomizeDialog{
		window:       window,
		ctrl:         ctrl,
		localization: localization,
		onSubmit:     onSubmit,
		onRetry:      onRetry,
	}
	cd.createUI()
	return cd
}

func (cd *CustomizeDialog) createUI() {
	t := cd.localization.GetText

	cd.projectEntry = widget.NewEntry()
	cd.projectEntry.SetPlaceHolder(controller.DefaultProjectName)
	cd.projectEntry.OnChanged = cd.ctrl.SetProjectName
	cd.projectEntry.OnSubmitted = func(string) { cd.onSubmit() }
	cd.projectError = newErrorLabel()

	cd.packageEntry = widget.NewEntry()
	cd.packageEntry.SetPlaceHolder(controller.DefaultPackageName)
	cd.packageEntry.OnChanged = cd.ctrl.SetPackageName
	cd.packageEntry.OnSubmitted = func(string) { cd.onSubmit() }
	cd.packageError = newErrorLabel()

	cd.networkRadio = newChoiceGroup([]string{string(model.NetworkRetrofit), string(model.NetworkKtor)}, func(v string) {
		cd.ctrl.SetNetworkLibrary(model.NetworkLibrary(v))
	})
	cd.diRadio = newChoiceGroup([]string{string(model.DIHilt), string(model.DIKoin)}, func(v string) {
		cd.ctrl.SetDILibrary(model.DILibrary(v))
	})
	cd.processorRadio = newChoiceGroup([]string{string(model.ProcessorKAPT), string(model.ProcessorKSP)}, func(v string) {
		cd.ctrl.SetAnnotationProcessor(model.AnnotationProcessor(v))
	})

	features := container.NewHBox()
	for _, name := range []string{"Compose", "ViewModel", "Coroutines"} {
		check := widget.NewCheck(name, nil)
		check.SetChecked(true)
		check.Disable()
		features.Add(check)
	}
	featuresHint := widget.NewLabel("(" + t(i18n.KeyAlwaysIncluded) + ")")
	featuresHint.Importance = widget.LowImportance

	cd.bannerText = newErrorLabel()
	cd.bannerText.Show()
	cd.retryStatus = widget.NewLabel("")
	cd.retryStatus.Importance = widget.LowImportance
	cd.retryBtn = widget.NewButton(t(i18n.KeyTryAgain), func() { cd.onRetry() })
	cd.banner = container.NewVBox(
		cd.bannerText,
		container.NewHBox(cd.retryBtn, cd.retryStatus),
	)
	cd.banner.Hide()

	cd.progress = widget.NewProgressBarInfinite()
	cd.progress.Hide()

	form := container.NewVBox(
		widget.NewLabel(t(i18n.KeyProjectName)),
		cd.projectEntry,
		cd.projectError,
		widget.NewLabel(t(i18n.KeyPackageName)),
		cd.packageEntry,
		cd.packageError,
		widget.NewSeparator(),
		widget.NewLabel(t(i18n.KeyNetworkLibrary)),
		cd.networkRadio,
		widget.NewLabel(t(i18n.KeyDILibrary)),
		cd.diRadio,
		widget.NewLabel(t(i18n.KeyAnnotationProc)),
		cd.processorRadio,
		widget.NewLabel(t(i18n.KeyFeatures)),
		container.NewHBox(features, featuresHint),
		widget.NewSeparator(),
		cd.banner,
		cd.progress,
	)

	cd.cancelBtn = widget.NewButton(t(i18n.KeyCancel), cd.Hide)
	cd.downloadBtn = widget.NewButton(t(i18n.KeyDownloadProject), func() { cd.onSubmit() })
	cd.downloadBtn.Importance = widget.HighImportance

	cd.dialog = dialog.NewCustomWithoutButtons(t(i18n.KeyCustomizeTitle), container.NewVScroll(form), cd.window)
	cd.dialog.SetButtons([]fyne.CanvasObject{cd.cancelBtn, cd.downloadBtn})
	cd.dialog.SetOnClosed(func() {
		cd.visible = false
		if cd.ctrl.State().DialogOpen {
			cd.ctrl.CloseDialog()
		}
	})
	cd.dialog.Resize(fyne.NewSize(DialogWidth, DialogHeight))
}

// Show fills the form from s and opens the dialog
func (cd *CustomizeDialog) Show(s controller.State) {
	cd.projectEntry.SetText(s.ProjectName)
	cd.packageEntry.SetText(s.PackageName)
	cd.networkRadio.SetSelected(string(s.Libraries.Network))
	cd.diRadio.SetSelected(string(s.Libraries.DI))
	cd.processorRadio.SetSelected(string(s.Libraries.Processor))
	cd.Render(s)

	cd.visible = true
	cd.dialog.Show()
}

// Hide closes the dialog; the controller is told via the close callback
func (cd *CustomizeDialog) Hide() {
	if cd.visible {
		cd.dialog.Hide()
	}
}

// Visible reports whether the dialog is on screen
func (cd *CustomizeDialog) Visible() bool {
	return cd.visible
}

// Render applies a controller snapshot
func (cd *CustomizeDialog) Render(s controller.State) {
	setErrorText(cd.projectError, s.ValidationErrors.Get(validate.FieldProjectName))
	setErrorText(cd.packageError, s.ValidationErrors.Get(validate.FieldPackageName))

	if s.ErrorMessage != "" {
		cd.bannerText.SetText(IconError + " " + s.ErrorMessage)
		cd.banner.Show()
	} else {
		cd.banner.Hide()
	}

	if s.RetryCount > 0 {
		cd.retryStatus.SetText(cd.localization.GetTextf(i18n.KeyRetryAttempt, s.RetryCount, controller.MaxRetries))
	} else {
		cd.retryStatus.SetText("")
	}
	if s.RetryCount < controller.MaxRetries {
		cd.retryBtn.Show()
	} else {
		cd.retryBtn.Hide()
	}

	if s.Busy {
		cd.progress.Show()
		cd.retryBtn.SetText(cd.localization.GetText(i18n.KeyRetrying))
		cd.downloadBtn.SetText(cd.localization.GetText(i18n.KeyGenerating))
		for _, w := range cd.inputs() {
			w.Disable()
		}
	} else {
		cd.progress.Hide()
		cd.retryBtn.SetText(cd.localization.GetText(i18n.KeyTryAgain))
		cd.downloadBtn.SetText(cd.localization.GetText(i18n.KeyDownloadProject))
		for _, w := range cd.inputs() {
			w.Enable()
		}
	}
}

func (cd *CustomizeDialog) inputs() []fyne.Disableable {
	return []fyne.Disableable{
		cd.projectEntry, cd.packageEntry,
		cd.networkRadio, cd.diRadio, cd.processorRadio,
		cd.retryBtn, cd.downloadBtn,
	}
}

func newChoiceGroup(options []string, changed func(string)) *widget.RadioGroup {
	group := widget.NewRadioGroup(options, func(v string) {
		if v != "" {
			changed(v)
		}
	})
	group.Horizontal = true
	group.Required = true
	return group
}

func newErrorLabel() *widget.Label {
	label := widget.NewLabel("")
	label.Importance = widget.DangerImportance
	label.Wrapping = fyne.TextWrapWord
	label.Hide()
	return label
}

func setErrorText(label *widget.Label, text string) {
	label.SetText(text)
	if text == "" {
		label.Hide()
	} else {
		label.Show()
	}
}
