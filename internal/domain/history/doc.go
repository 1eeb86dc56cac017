// Package history defines the analysis history: the results the browser
// produced for past candidate texts, newest first.
package history
