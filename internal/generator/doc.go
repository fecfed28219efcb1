// Package generator talks to the template generation service: it posts a
// GenerationRequest for a tier and turns the answer into either a
// GenerationResult or a *model.GenerationError of exactly one kind.
package generator
