// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to store the prompt configuration, the AI
// model catalogue and the analysis history. Documents are kept as JSON
// payloads next to an indexed copy of their id and an explicit position,
// so list order survives every rewrite.
package persistence
