// Package prompts defines the prompt configuration used by the analysis UI:
// the shared system prompt, the psycholinguistic scales and the catalogue of
// AI models the user can run them against.
package prompts
