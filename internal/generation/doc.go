// Package generation defines the boundary between the application core
// and the external LLM provider: the Generator interface, the error
// taxonomy for provider failures, and the parser that turns a provider
// payload into validated candidate content.
package generation
