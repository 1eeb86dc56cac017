// Package llm defines the contracts for talking to a hosted chat-completion
// model. The server only relays calls made with the user's own API key; it
// never stores the key.
package llm
