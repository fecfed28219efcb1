// Package cli implements the atg command line: project generation with
// optional interactive prompts, catalog listing and folder tree previews.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/ytget/android-template-generator/internal/catalog"
	"github.com/ytget/android-template-generator/internal/config"
	"github.com/ytget/android-template-generator/internal/controller"
	"github.com/ytget/android-template-generator/internal/download"
	"github.com/ytget/android-template-generator/internal/generator"
	"github.com/ytget/android-template-generator/internal/i18n"
	"github.com/ytget/android-template-generator/internal/logging"
	"github.com/ytget/android-template-generator/internal/model"
	"github.com/ytget/android-template-generator/internal/platform"
	"github.com/ytget/android-template-generator/internal/validate"
)

// Dependencies holds everything a command needs from the outside world
type Dependencies struct {
	Out      io.Writer
	ErrOut   io.Writer
	Prompter Prompter
	Version  string
}

// CLI defines the command-line interface parsed by Kong
type CLI struct {
	Config   string `short:"c" help:"Path to a config file"`
	APIURL   string `name:"api-url" help:"Generation service base URL (overrides ATG_API_BASE_URL)"`
	LogLevel string `name:"log-level" help:"Log level (debug, info, warn, error)"`
	Lang     string `name:"lang" help:"Message language (en, ru, pt)"`

	Generate  GenerateCmd  `cmd:"" help:"Generate a project archive"`
	Templates TemplatesCmd `cmd:"" help:"List template tiers"`
	Tree      TreeCmd      `cmd:"" help:"Show the folder structure of a tier"`
	Version   VersionCmd   `cmd:"" help:"Show version information"`
}

type (
	// GenerateCmd defines the generate command flags
	GenerateCmd struct {
		Tier        string `short:"t" help:"Template tier (basic, intermediate, advanced)"`
		Project     string `short:"p" default:"MyAndroidApp" help:"Project name"`
		Package     string `short:"k" default:"com.example.myapp" help:"Package name"`
		Network     string `enum:"ktor,retrofit" default:"ktor" help:"Network library (ktor, retrofit)"`
		DI          string `name:"di" enum:"hilt,koin" default:"hilt" help:"Dependency injection library (hilt, koin)"`
		Processor   string `enum:"ksp,kapt" default:"ksp" help:"Annotation processing (ksp, kapt)"`
		Output      string `short:"o" help:"Directory to save the archive to"`
		Interactive bool   `short:"i" help:"Prompt for every choice"`
	}

	// TemplatesCmd lists the catalog
	TemplatesCmd struct{}

	// TreeCmd prints one folder tree
	TreeCmd struct {
		Tier string `short:"t" required:"" help:"Template tier (basic, intermediate, advanced)"`
	}

	// VersionCmd prints the build version
	VersionCmd struct{}
)

// Run parses args and dispatches to the command handler. Returns the exit code.
func Run(args []string, deps Dependencies) int {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.Prompter == nil {
		deps.Prompter = SurveyPrompter{}
	}

	cli := CLI{}
	exited := false
	parser, err := kong.New(&cli,
		kong.Name("atg"),
		kong.Description("Android project template generator"),
		kong.Writers(deps.Out, deps.ErrOut),
		kong.Exit(func(int) { exited = true }),
	)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	ctx, err := parser.Parse(args)
	if exited {
		return 0
	}
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	switch ctx.Command() {
	case "generate":
		return runGenerate(cli, deps)
	case "templates":
		return runTemplates(deps)
	case "tree":
		return runTree(cli, deps)
	case "version":
		fmt.Fprintf(deps.Out, "atg %s\n", deps.Version)
		return 0
	}

	fmt.Fprintln(deps.ErrOut, "unknown command")
	return 1
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintf(out, "Error: %v\n", err)
	return 1
}

func runTemplates(deps Dependencies) int {
	cat, err := catalog.Default()
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	if err := RenderTemplates(deps.Out, cat.Templates()); err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	return 0
}

func runTree(cli CLI, deps Dependencies) int {
	tier, err := model.ParseTier(cli.Tree.Tier)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	cat, err := catalog.Default()
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	d, ok := cat.Get(tier)
	if !ok || d.Structure == nil {
		return exitWithError(deps.ErrOut, fmt.Errorf("no folder structure for tier %q", tier))
	}
	if err := RenderTree(deps.Out, d.Structure); err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	return 0
}

// session bundles the services one generate run uses
type session struct {
	cli    CLI
	deps   Dependencies
	cat    *catalog.Catalog
	loc    *i18n.Localization
	ctrl   *controller.Controller
	logger logrus.FieldLogger
}

func runGenerate(cli CLI, deps Dependencies) int {
	s, cleanup, err := newSession(cli, deps)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	defer cleanup()

	if cli.Generate.Interactive {
		if _, ok := deps.Prompter.(SurveyPrompter); ok && !IsTerminal(os.Stdin) {
			return exitWithError(deps.ErrOut, ErrNoTerminal)
		}
		err = s.prompt()
	} else {
		err = s.applyFlags()
	}
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	return s.submit(context.Background())
}

func newSession(cli CLI, deps Dependencies) (*session, func(), error) {
	env, err := config.LoadEnv(cli.Config)
	if err != nil {
		return nil, nil, err
	}
	if cli.APIURL != "" {
		if env.APIBaseURL, err = config.NormalizeBaseURL(cli.APIURL); err != nil {
			return nil, nil, err
		}
	}
	if cli.LogLevel != "" {
		env.Log.Level = cli.LogLevel
	}

	logger := logging.StdLogger()
	cleanup, err := logger.Init(&env.Log)
	if err != nil {
		return nil, nil, err
	}

	outputDir := outputDirectory(cli.Generate.Output, env.DownloadDir)

	cat, err := catalog.Default()
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	loc := i18n.NewLocalization()
	if cli.Lang != "" {
		loc.SetLanguage(cli.Lang)
	}

	ctrl := controller.New(
		generator.NewClient(env.APIBaseURL, generator.WithLogger(logger)),
		download.NewService(outputDir, download.WithLogger(logger)),
		controller.WithTexts(loc),
		controller.WithTierChecker(cat),
		controller.WithLogger(logger),
	)

	return &session{
		cli:    cli,
		deps:   deps,
		cat:    cat,
		loc:    loc,
		ctrl:   ctrl,
		logger: logger,
	}, cleanup, nil
}

// applyFlags copies the command line choices into the controller
func (s *session) applyFlags() error {
	g := s.cli.Generate
	if g.Tier == "" {
		return errors.New(s.loc.GetText(i18n.KeyPleaseChooseFirst))
	}
	tier, err := model.ParseTier(g.Tier)
	if err != nil {
		return err
	}
	if err := s.ctrl.SelectTier(tier); err != nil {
		return fmt.Errorf("%s: %w", tier, err)
	}
	s.ctrl.OpenDialog()
	s.ctrl.SetProjectName(g.Project)
	s.ctrl.SetPackageName(g.Package)
	s.ctrl.SetNetworkLibrary(networkOf(g.Network))
	s.ctrl.SetDILibrary(diOf(g.DI))
	s.ctrl.SetAnnotationProcessor(processorOf(g.Processor))
	return nil
}

// prompt asks for every choice, using the flags as defaults
func (s *session) prompt() error {
	g := s.cli.Generate
	t := s.loc.GetText
	p := s.deps.Prompter

	var titles []string
	byTitle := make(map[string]model.Tier)
	defTitle := ""
	for _, d := range s.cat.Templates() {
		if !d.Available {
			continue
		}
		titles = append(titles, d.Title)
		byTitle[d.Title] = d.Tier
		if strings.EqualFold(string(d.Tier), g.Tier) {
			defTitle = d.Title
		}
	}
	title, err := p.Select(t(i18n.KeyChooseTemplate), titles, defTitle)
	if err != nil {
		return err
	}
	tier, ok := byTitle[title]
	if !ok {
		return errors.New(t(i18n.KeyPleaseChooseFirst))
	}
	if err := s.ctrl.SelectTier(tier); err != nil {
		return err
	}
	s.ctrl.OpenDialog()

	project, err := p.Input(t(i18n.KeyProjectName), g.Project, s.nameValidator(validate.FieldProjectName))
	if err != nil {
		return err
	}
	s.ctrl.SetProjectName(project)

	pkg, err := p.Input(t(i18n.KeyPackageName), g.Package, s.nameValidator(validate.FieldPackageName))
	if err != nil {
		return err
	}
	s.ctrl.SetPackageName(pkg)

	network, err := p.Select(t(i18n.KeyNetworkLibrary),
		[]string{string(model.NetworkKtor), string(model.NetworkRetrofit)}, string(networkOf(g.Network)))
	if err != nil {
		return err
	}
	s.ctrl.SetNetworkLibrary(model.NetworkLibrary(network))

	di, err := p.Select(t(i18n.KeyDILibrary),
		[]string{string(model.DIHilt), string(model.DIKoin)}, string(diOf(g.DI)))
	if err != nil {
		return err
	}
	s.ctrl.SetDILibrary(model.DILibrary(di))

	processor, err := p.Select(t(i18n.KeyAnnotationProc),
		[]string{string(model.ProcessorKSP), string(model.ProcessorKAPT)}, string(processorOf(g.Processor)))
	if err != nil {
		return err
	}
	s.ctrl.SetAnnotationProcessor(model.AnnotationProcessor(processor))
	return nil
}

func (s *session) nameValidator(field validate.Field) func(string) error {
	lang := s.loc.GetCurrentLanguage()
	return func(v string) error {
		if rule := validate.Check(field, v); rule != "" {
			return errors.New(validate.Message(lang, field, rule))
		}
		return nil
	}
}

// submit runs the pipeline and, in interactive mode, offers retries
func (s *session) submit(ctx context.Context) int {
	err := s.ctrl.Submit(ctx)
	for err != nil {
		s.reportFailure()

		if !s.cli.Generate.Interactive {
			return 1
		}
		if !s.ctrl.CanRetry() {
			if s.ctrl.State().RetryCount >= controller.MaxRetries {
				fmt.Fprintln(s.deps.ErrOut, s.loc.GetText(i18n.KeyRetriesExhausted))
			}
			return 1
		}

		again, perr := s.deps.Prompter.Confirm(s.loc.GetText(i18n.KeyRetryPrompt), true)
		if perr != nil || !again {
			return 1
		}
		fmt.Fprintln(s.deps.ErrOut, s.loc.GetTextf(i18n.KeyRetryAttempt, s.ctrl.State().RetryCount+1, controller.MaxRetries))
		err = s.ctrl.Retry(ctx)
	}

	fmt.Fprintln(s.deps.Out, s.loc.GetTextf(i18n.KeyProjectSaved, s.ctrl.State().SavedPath))
	return 0
}

func (s *session) reportFailure() {
	st := s.ctrl.State()
	for _, field := range []validate.Field{validate.FieldProjectName, validate.FieldPackageName} {
		if msg := st.ValidationErrors.Get(field); msg != "" {
			fmt.Fprintf(s.deps.ErrOut, "%s: %s\n", field, msg)
		}
	}
	if st.ErrorMessage != "" {
		fmt.Fprintf(s.deps.ErrOut, "Error: %s\n", st.ErrorMessage)
	}
	s.logger.WithFields(logrus.Fields{
		logging.FieldTier:   st.Tier,
		logging.FieldStatus: st.Status,
	}).Debug("Generation failed")
}

func networkOf(flag string) model.NetworkLibrary {
	if strings.EqualFold(flag, string(model.NetworkRetrofit)) {
		return model.NetworkRetrofit
	}
	return model.NetworkKtor
}

func diOf(flag string) model.DILibrary {
	if strings.EqualFold(flag, string(model.DIKoin)) {
		return model.DIKoin
	}
	return model.DIHilt
}

func processorOf(flag string) model.AnnotationProcessor {
	if strings.EqualFold(flag, string(model.ProcessorKAPT)) {
		return model.ProcessorKAPT
	}
	return model.ProcessorKSP
}

// outputDirectory picks the flag, then the environment, then the user's
// Downloads directory
func outputDirectory(flag, envDir string) string {
	if flag != "" {
		return flag
	}
	if envDir != "" {
		return envDir
	}
	dir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		return config.FallbackDownloadDir
	}
	return dir
}
