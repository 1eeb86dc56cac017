// Package app implements the application services behind the REST API.
// Services validate input, delegate to the repositories and log what changed.
package app
