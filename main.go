package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/android-template-generator/internal/catalog"
	"github.com/ytget/android-template-generator/internal/config"
	"github.com/ytget/android-template-generator/internal/controller"
	"github.com/ytget/android-template-generator/internal/download"
	"github.com/ytget/android-template-generator/internal/generator"
	"github.com/ytget/android-template-generator/internal/i18n"
	"github.com/ytget/android-template-generator/internal/logging"
	"github.com/ytget/android-template-generator/internal/ui"
)

// version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.android-template-generator"
	AppName = "Android Template Generator"
)

func main() {
	env, err := config.LoadEnv("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.StdLogger()
	cleanup, err := logger.Init(&env.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	logger.WithField(logging.FieldVersion, version).Infof("%s starting", AppName)

	cat, err := catalog.Default()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load template catalog")
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Environment wins over the stored preference
	settings := config.NewSettings(myApp)
	if env.DownloadDir != "" {
		settings.SetDownloadDirectory(env.DownloadDir)
	}

	// Initialize services
	localization := i18n.NewLocalization()
	client := generator.NewClient(env.APIBaseURL, generator.WithLogger(logger))
	downloadSvc := download.NewService(settings.GetDownloadDirectory(), download.WithLogger(logger))
	ctrl := controller.New(client, downloadSvc,
		controller.WithTexts(localization),
		controller.WithTierChecker(cat),
		controller.WithLogger(logger),
	)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, cat, ctrl, downloadSvc, localization)

	// Show and run
	myWindow.ShowAndRun()
}
