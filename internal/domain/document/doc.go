// Package document defines Document, the free-form JSON object the browser UI
// stores for scales, AI models and analyses. The server only reads the "id" field.
package document
