package ui

import (
	"context"
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/android-template-generator/internal/catalog"
	"github.com/ytget/android-template-generator/internal/config"
	"github.com/ytget/android-template-generator/internal/controller"
	"github.com/ytget/android-template-generator/internal/download"
	"github.com/ytget/android-template-generator/internal/i18n"
	"github.com/ytget/android-template-generator/internal/logging"
	"github.com/ytget/android-template-generator/internal/model"
	"github.com/ytget/android-template-generator/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	catalog      *catalog.Catalog
	ctrl         *controller.Controller
	downloadSvc  download.Downloader
	settings     *config.Settings
	localization *i18n.Localization
	logger       logrus.FieldLogger

	cards       map[model.Tier]*TierCard
	treeHost    *fyne.Container
	folderTree  *FolderTree
	treeTier    model.Tier
	generateBtn *widget.Button
	customize   *CustomizeDialog

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	revealBtn             *widget.Button
	lastSavedPath         string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, cat *catalog.Catalog, ctrl *controller.Controller, downloadSvc download.Downloader, localization *i18n.Localization) *RootUI {
	ui := &RootUI{
		window:       window,
		app:          app,
		catalog:      cat,
		ctrl:         ctrl,
		downloadSvc:  downloadSvc,
		settings:     config.NewSettings(app),
		localization: localization,
		logger:       logging.StdLogger(),
	}

	ui.applySettings()
	ui.ctrl.OnChange(ui.onStateChange)

	ui.setupUI()
	ui.render(ui.ctrl.State())
	return ui
}

// applySettings pushes stored preferences into the services
func (ui *RootUI) applySettings() {
	downloadsDir := ui.settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		ui.logger.WithError(err).WithField("dir", downloadsDir).Warn("Failed to ensure download directory")
	}
	ui.downloadSvc.SetDownloadDirectory(downloadsDir)
	ui.downloadSvc.SetAutoReveal(ui.settings.GetAutoRevealOnComplete())
	ui.localization.SetLanguage(ui.settings.GetLanguage())
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	t := ui.localization.GetText
	ui.window.SetTitle(t(i18n.KeyAppTitle))
	ui.createMenu()

	title := widget.NewLabel(t(i18n.KeyAppTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.SizeName = theme.SizeNameSubHeadingText
	subtitle := widget.NewLabel(t(i18n.KeyAppSubtitle))
	subtitle.Wrapping = fyne.TextWrapWord

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	header := container.NewBorder(nil, nil, nil, settingsBtn, container.NewVBox(title, subtitle))

	ui.cards = make(map[model.Tier]*TierCard)
	var cardObjects []fyne.CanvasObject
	for _, d := range ui.catalog.Templates() {
		card := NewTierCard(d, ui.localization, ui.onSelectTier)
		ui.cards[d.Tier] = card
		cardObjects = append(cardObjects, card.Container())
	}
	cards := container.NewVBox(widget.NewLabel(t(i18n.KeyChooseTemplate)), newCardGrid(cardObjects...))

	ui.treeHost = container.NewStack()
	ui.treeTier = ""
	ui.folderTree = nil
	treeScroll := container.NewVScroll(ui.treeHost)
	treeScroll.SetMinSize(fyne.NewSize(CardMinWidth, TreeMinHeight))
	structure := widget.NewCard(t(i18n.KeyProjectStructure), "", treeScroll)

	ui.generateBtn = widget.NewButton(t(i18n.KeyGenerateProject), ui.onGenerateClick)
	ui.generateBtn.Importance = widget.HighImportance

	// Notification panel under the header (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.revealBtn = widget.NewButton(t(i18n.KeyShowInFolder), func() {
		ui.onRevealFile(ui.lastSavedPath)
	})
	closeBtn := widget.NewButton(IconClose, ui.hideNotification)
	closeBtn.Importance = widget.LowImportance
	ui.notificationContainer = container.NewBorder(nil, nil, nil, container.NewHBox(ui.revealBtn, closeBtn), ui.notificationLabel)
	ui.notificationContainer.Hide()

	portrait := container.NewVBox(cards, structure)
	landscape := container.NewHSplit(container.NewVScroll(cards), structure)
	landscape.SetOffset(0.55)

	content := container.NewBorder(
		container.NewVBox(header, ui.notificationContainer), // top
		container.NewPadded(ui.generateBtn),                 // bottom
		nil,
		nil,
		orientationAware(container.NewVScroll(portrait), landscape),
	)
	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(i18n.KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(i18n.KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(i18n.KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
}

// refreshUITexts rebuilds the window content with the current language
func (ui *RootUI) refreshUITexts() {
	ui.setupUI()
	ui.render(ui.ctrl.State())
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.applySettings()
		ui.refreshUITexts()
	}).Show()
}

// onSelectTier handles a template card click
func (ui *RootUI) onSelectTier(d *catalog.Descriptor) {
	if err := ui.ctrl.SelectTier(d.Tier); err != nil {
		ui.logger.WithError(err).WithField(logging.FieldTier, d.Tier).Warn("Tier selection rejected")
		dialog.ShowError(err, ui.window)
	}
}

// onGenerateClick opens the customize dialog
func (ui *RootUI) onGenerateClick() {
	ui.ctrl.OpenDialog()
	ui.customize = NewCustomizeDialog(ui.window, ui.ctrl, ui.localization, ui.onSubmit, ui.onRetry)
	ui.customize.Show(ui.ctrl.State())
}

// onSubmit runs a fresh submission off the UI goroutine
func (ui *RootUI) onSubmit() {
	go ui.runPipeline(ui.ctrl.Submit)
}

// onRetry reruns the last submission off the UI goroutine
func (ui *RootUI) onRetry() {
	go ui.runPipeline(ui.ctrl.Retry)
}

func (ui *RootUI) runPipeline(run func(context.Context) error) {
	err := run(context.Background())
	switch {
	case err == nil:
	case errors.Is(err, controller.ErrSubmissionInFlight), errors.Is(err, controller.ErrRetryNotAllowed):
		ui.logger.WithError(err).Debug("Submission request ignored")
	default:
		// Failures are rendered from controller state
		ui.logger.WithError(err).Debug("Submission finished with error")
	}
}

// onStateChange receives controller snapshots from any goroutine
func (ui *RootUI) onStateChange(s controller.State) {
	fyne.Do(func() {
		ui.render(s)
	})
}

// render applies a controller snapshot to the widgets
func (ui *RootUI) render(s controller.State) {
	for tier, card := range ui.cards {
		card.SetSelected(tier == s.Tier)
	}

	if s.Tier != ui.treeTier {
		ui.showTree(s.Tier)
	}

	if ui.customize != nil && ui.customize.Visible() {
		if s.DialogOpen {
			ui.customize.Render(s)
		} else {
			ui.customize.Hide()
		}
	}

	if s.Status == model.StatusSuccess && s.SavedPath != "" && s.SavedPath != ui.lastSavedPath {
		ui.lastSavedPath = s.SavedPath
		ui.showSavedNotification(s.SavedPath)
	}
}

// showTree swaps the preview to the structure of tier
func (ui *RootUI) showTree(tier model.Tier) {
	ui.treeTier = tier
	ui.treeHost.RemoveAll()

	d, ok := ui.catalog.Get(tier)
	if !ok || d.Structure == nil {
		hint := widget.NewLabel(ui.localization.GetText(i18n.KeyNoTemplateChosen))
		hint.Importance = widget.LowImportance
		ui.folderTree = nil
		ui.treeHost.Add(hint)
		return
	}

	ui.folderTree = NewFolderTree(d.Structure)
	ui.treeHost.Add(ui.folderTree.Widget())
}

// showSavedNotification shows where the archive went
func (ui *RootUI) showSavedNotification(path string) {
	message := ui.localization.GetTextf(i18n.KeyProjectSaved, path)
	ui.notificationLabel.SetText(message)
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()

	ui.app.SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(i18n.KeyAppTitle),
		Content: message,
	})
}

func (ui *RootUI) hideNotification() {
	ui.notificationContainer.Hide()
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if filePath == "" {
		return
	}
	if err := platform.OpenFileInManager(filePath); err != nil {
		ui.logger.WithError(err).WithField("path", filePath).Warn("Failed to reveal file")
		dialog.ShowError(errors.New(ui.localization.GetText(i18n.KeyErrorOpeningFile)+": "+err.Error()), ui.window)
	}
}
