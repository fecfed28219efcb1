package ui

import (
	"context"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/android-template-generator/internal/catalog"
	"github.com/ytget/android-template-generator/internal/config"
	"github.com/ytget/android-template-generator/internal/controller"
	"github.com/ytget/android-template-generator/internal/i18n"
	"github.com/ytget/android-template-generator/internal/model"
	"github.com/ytget/android-template-generator/internal/validate"
)

type stubGenerator struct{}

func (stubGenerator) Generate(ctx context.Context, tier model.Tier, req model.GenerationRequest) (*model.GenerationResult, error) {
	return &model.GenerationResult{Payload: []byte("zip"), Filename: req.ProjectName + ".zip", StatusCode: 200}, nil
}

type stubDownloader struct {
	dir        string
	autoReveal bool
}

func (d *stubDownloader) Download(payload []byte, filename string) (string, error) {
	return d.dir + "/" + filename, nil
}

func (d *stubDownloader) SetDownloadDirectory(dir string) { d.dir = dir }

func (d *stubDownloader) SetAutoReveal(enabled bool) { d.autoReveal = enabled }

type fixture struct {
	app    fyne.App
	window fyne.Window
	cat    *catalog.Catalog
	ctrl   *controller.Controller
	loc    *i18n.Localization
	dl     *stubDownloader
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	a := test.NewTempApp(t)
	a.Preferences().SetString(config.KeyDownloadDir, t.TempDir())
	a.Preferences().SetString(config.KeyLanguage, i18n.LangEnglish)

	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() error = %v", err)
	}
	loc := i18n.NewLocalization()
	dl := &stubDownloader{}

	return &fixture{
		app:    a,
		window: a.NewWindow("test"),
		cat:    cat,
		ctrl:   controller.New(stubGenerator{}, dl, controller.WithTexts(loc), controller.WithTierChecker(cat)),
		loc:    loc,
		dl:     dl,
	}
}

func (f *fixture) root() *RootUI {
	return NewRootUI(f.window, f.app, f.cat, f.ctrl, f.dl, f.loc)
}

func TestRootUI_AppliesSettings(t *testing.T) {
	f := newFixture(t)
	f.app.Preferences().SetBool(config.KeyAutoRevealComplete, true)

	f.root()

	want := f.app.Preferences().String(config.KeyDownloadDir)
	if f.dl.dir != want {
		t.Errorf("download dir = %q, want %q", f.dl.dir, want)
	}
	if !f.dl.autoReveal {
		t.Error("auto-reveal was not applied")
	}
	if got := f.loc.GetCurrentLanguage(); got != i18n.LangEnglish {
		t.Errorf("language = %q, want %q", got, i18n.LangEnglish)
	}
}

func TestRootUI_PlaceholderWithoutTier(t *testing.T) {
	ui := newFixture(t).root()

	if ui.folderTree != nil {
		t.Fatal("expected no folder tree before a tier is selected")
	}
	if len(ui.treeHost.Objects) != 1 {
		t.Fatalf("tree host has %d objects, want 1", len(ui.treeHost.Objects))
	}
	hint, ok := ui.treeHost.Objects[0].(*widget.Label)
	if !ok {
		t.Fatalf("placeholder is %T, want *widget.Label", ui.treeHost.Objects[0])
	}
	if hint.Text != ui.localization.GetText(i18n.KeyNoTemplateChosen) {
		t.Errorf("placeholder text = %q", hint.Text)
	}
}

func TestRootUI_SelectTier(t *testing.T) {
	f := newFixture(t)
	ui := f.root()

	d, _ := f.cat.Get(model.TierIntermediate)
	ui.onSelectTier(d)
	ui.render(f.ctrl.State())

	if ui.treeTier != model.TierIntermediate {
		t.Errorf("tree tier = %q, want %q", ui.treeTier, model.TierIntermediate)
	}
	if ui.folderTree == nil {
		t.Fatal("expected a folder tree after selection")
	}
	if !ui.cards[model.TierIntermediate].selected {
		t.Error("intermediate card is not marked selected")
	}
	if ui.cards[model.TierBasic].selected {
		t.Error("basic card should not be selected")
	}
}

func TestRootUI_UnavailableTierRejected(t *testing.T) {
	f := newFixture(t)
	ui := f.root()

	if err := f.ctrl.SelectTier(model.TierAdvanced); err == nil {
		t.Fatal("expected advanced tier to be rejected")
	}
	ui.render(f.ctrl.State())

	if ui.folderTree != nil {
		t.Error("unavailable tier must not show a tree")
	}
	if !ui.cards[model.TierAdvanced].selectBtn.Disabled() {
		t.Error("unavailable tier button should be disabled")
	}
}

func TestRootUI_SuccessNotification(t *testing.T) {
	ui := newFixture(t).root()

	ui.render(controller.State{Status: model.StatusSuccess, SavedPath: "/tmp/MyApp.zip"})

	if !ui.notificationContainer.Visible() {
		t.Fatal("expected the saved notification to be visible")
	}
	if !strings.Contains(ui.notificationLabel.Text, "/tmp/MyApp.zip") {
		t.Errorf("notification = %q, want the saved path", ui.notificationLabel.Text)
	}
	if ui.lastSavedPath != "/tmp/MyApp.zip" {
		t.Errorf("lastSavedPath = %q", ui.lastSavedPath)
	}

	ui.hideNotification()
	ui.render(controller.State{Status: model.StatusSuccess, SavedPath: "/tmp/MyApp.zip"})
	if ui.notificationContainer.Visible() {
		t.Error("the same saved path must not be announced twice")
	}
}

func TestCustomizeDialog_Render(t *testing.T) {
	f := newFixture(t)
	f.loc.SetLanguage(i18n.LangEnglish)
	cd := NewCustomizeDialog(f.window, f.ctrl, f.loc, func() {}, func() {})

	tests := []struct {
		name          string
		state         controller.State
		wantBanner    bool
		wantRetryBtn  bool
		wantDisabled  bool
		wantButton    string
		wantProjError bool
	}{
		{
			name:       "idle",
			state:      controller.State{Status: model.StatusIdle},
			wantButton: "Download Project",
		},
		{
			name:         "busy",
			state:        controller.State{Status: model.StatusSubmitting, Busy: true},
			wantDisabled: true,
			wantButton:   "Generating...",
		},
		{
			name:         "failed",
			state:        controller.State{Status: model.StatusFailed, ErrorMessage: "boom", RetryCount: 1},
			wantBanner:   true,
			wantRetryBtn: true,
			wantButton:   "Download Project",
		},
		{
			name:       "retries exhausted",
			state:      controller.State{Status: model.StatusFailed, ErrorMessage: "boom", RetryCount: controller.MaxRetries},
			wantBanner: true,
			wantButton: "Download Project",
		},
		{
			name: "validation",
			state: controller.State{
				Status:           model.StatusFailedValidation,
				ValidationErrors: validate.Errors{validate.FieldProjectName: "bad"},
			},
			wantButton:    "Download Project",
			wantProjError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cd.Render(tt.state)

			if got := cd.banner.Visible(); got != tt.wantBanner {
				t.Errorf("banner visible = %v, want %v", got, tt.wantBanner)
			}
			if tt.wantBanner {
				if got := cd.retryBtn.Visible(); got != tt.wantRetryBtn {
					t.Errorf("retry visible = %v, want %v", got, tt.wantRetryBtn)
				}
			}
			if got := cd.projectEntry.Disabled(); got != tt.wantDisabled {
				t.Errorf("project entry disabled = %v, want %v", got, tt.wantDisabled)
			}
			if cd.downloadBtn.Text != tt.wantButton {
				t.Errorf("download button = %q, want %q", cd.downloadBtn.Text, tt.wantButton)
			}
			if got := cd.projectError.Visible(); got != tt.wantProjError {
				t.Errorf("project error visible = %v, want %v", got, tt.wantProjError)
			}
		})
	}
}

func TestCustomizeDialog_EditsReachController(t *testing.T) {
	f := newFixture(t)
	cd := NewCustomizeDialog(f.window, f.ctrl, f.loc, func() {}, func() {})

	cd.projectEntry.SetText("Notes")
	cd.packageEntry.SetText("org.notes")
	cd.networkRadio.SetSelected(string(model.NetworkKtor))
	cd.diRadio.SetSelected(string(model.DIKoin))
	cd.processorRadio.SetSelected(string(model.ProcessorKAPT))

	s := f.ctrl.State()
	if s.ProjectName != "Notes" || s.PackageName != "org.notes" {
		t.Errorf("names = %q/%q", s.ProjectName, s.PackageName)
	}
	if s.Libraries.Network != model.NetworkKtor || s.Libraries.DI != model.DIKoin || s.Libraries.Processor != model.ProcessorKAPT {
		t.Errorf("libraries = %+v", s.Libraries)
	}
}

func TestFolderTree(t *testing.T) {
	test.NewTempApp(t)

	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() error = %v", err)
	}
	d, _ := cat.Get(model.TierBasic)
	ft := NewFolderTree(d.Structure)

	for _, id := range ft.View().OpenIDs() {
		if !ft.Widget().IsBranchOpen(id) {
			t.Errorf("branch %q should start open", id)
		}
	}

	root := ft.View().RootID()
	node, _ := ft.View().Node(root)
	row := container.NewHBox(widget.NewIcon(nil), widget.NewLabel(""))
	ft.updateNode(root, true, row)
	if got := row.Objects[1].(*widget.Label).Text; got != node.Name {
		t.Errorf("row label = %q, want %q", got, node.Name)
	}
}

func TestCustomizeDialog_CancelStaysEnabledWhileBusy(t *testing.T) {
	f := newFixture(t)
	cd := NewCustomizeDialog(f.window, f.ctrl, f.loc, func() {}, func() {})

	cd.Render(controller.State{Status: model.StatusSubmitting, Busy: true})

	if cd.cancelBtn.Disabled() {
		t.Error("cancel must stay enabled while a submission is in flight")
	}
	if !cd.downloadBtn.Disabled() || !cd.retryBtn.Disabled() {
		t.Error("submit and retry must be disabled while busy")
	}
}
