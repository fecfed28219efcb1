package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Tier is one of the template complexity levels the service can generate
type Tier string

const (
	TierBasic        Tier = "basic"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
)

// Tiers returns all tiers in display order
func Tiers() []Tier {
	return []Tier{TierBasic, TierIntermediate, TierAdvanced}
}

// ParseTier converts user input into a Tier
func ParseTier(s string) (Tier, error) {
	switch Tier(strings.ToLower(strings.TrimSpace(s))) {
	case TierBasic:
		return TierBasic, nil
	case TierIntermediate:
		return TierIntermediate, nil
	case TierAdvanced:
		return TierAdvanced, nil
	default:
		return "", fmt.Errorf("unknown template tier: %q", s)
	}
}

// String returns the string representation of Tier
func (t Tier) String() string {
	return string(t)
}

// CompilerType selects the annotation processing tool on the wire
type CompilerType string

const (
	CompilerKapt CompilerType = "kapt"
	CompilerKsp  CompilerType = "ksp"
)

// NetworkLibrary is the HTTP client library of the generated project
type NetworkLibrary string

const (
	NetworkRetrofit NetworkLibrary = "Retrofit"
	NetworkKtor     NetworkLibrary = "Ktor"
)

// DILibrary is the dependency injection library of the generated project
type DILibrary string

const (
	DIHilt DILibrary = "Hilt"
	DIKoin DILibrary = "Koin"
)

// AnnotationProcessor is the user-facing name of the compiler type
type AnnotationProcessor string

const (
	ProcessorKAPT AnnotationProcessor = "KAPT"
	ProcessorKSP  AnnotationProcessor = "KSP"
)

// CompilerType maps the processor choice to its wire value
func (p AnnotationProcessor) CompilerType() CompilerType {
	if p == ProcessorKAPT {
		return CompilerKapt
	}
	return CompilerKsp
}

// Features are the optional building blocks of the generated project.
// Compose, ViewModel and Coroutines are always on; Room and Navigation are
// not offered yet.
type Features struct {
	Compose    bool
	ViewModel  bool
	Coroutines bool
	Room       bool
	Navigation bool
}

// LibraryChoices groups everything the user can pick besides the names
type LibraryChoices struct {
	Network   NetworkLibrary
	DI        DILibrary
	Processor AnnotationProcessor
	Features  Features
}

// DefaultLibraryChoices returns the preselected form values
func DefaultLibraryChoices() LibraryChoices {
	return LibraryChoices{
		Network:   NetworkKtor,
		DI:        DIHilt,
		Processor: ProcessorKSP,
		Features: Features{
			Compose:    true,
			ViewModel:  true,
			Coroutines: true,
		},
	}
}

// DependencyList builds the ordered library identifiers sent to the service
func (c LibraryChoices) DependencyList() []string {
	deps := []string{
		strings.ToLower(string(c.DI)),
		strings.ToLower(string(c.Network)),
	}
	if c.Features.Coroutines {
		deps = append(deps, "coroutines")
	}
	if c.Features.ViewModel {
		deps = append(deps, "viewmodel")
	}
	return deps
}

// GenerationRequest is the JSON body of a generation call
type GenerationRequest struct {
	ProjectName    string       `json:"projectName"`
	PackageName    string       `json:"packageName"`
	DependencyList []string     `json:"dependencyList"`
	CompilerType   CompilerType `json:"compilerType"`
}

// NewGenerationRequest builds a request from raw form values
func NewGenerationRequest(projectName, packageName string, choices LibraryChoices) GenerationRequest {
	return GenerationRequest{
		ProjectName:    strings.TrimSpace(projectName),
		PackageName:    strings.TrimSpace(packageName),
		DependencyList: choices.DependencyList(),
		CompilerType:   choices.Processor.CompilerType(),
	}
}

// GenerationResult is a successfully generated archive
type GenerationResult struct {
	Payload     []byte
	Filename    string
	ContentType string
	StatusCode  int
}

// Size returns the payload length in bytes
func (r *GenerationResult) Size() int {
	if r == nil {
		return 0
	}
	return len(r.Payload)
}

// NewSubmissionID generates a unique id used to correlate log lines of one submission
func NewSubmissionID() string {
	return "sub-" + uuid.NewString()
}
