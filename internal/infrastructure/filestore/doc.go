// Package filestore reads and writes the JSON files earlier releases kept in
// the data directory (prompts.json and history.json). The CLI uses it to import
// those files into the database and to export the database back to them.
package filestore
