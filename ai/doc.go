// Package ai defines the interfaces for the AI capabilities the system
// consumes: text embedding, answer generation, and relevance judgment.
//
// Implementations live in subpackages (openai for OpenAI-compatible APIs,
// mock for testing). Consumers depend only on the interfaces defined here.
package ai
