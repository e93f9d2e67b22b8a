// Package openai implements the ai interfaces against OpenAI-compatible
// APIs (OpenAI, Groq, Ollama, vLLM and similar).
package openai
