// Package model defines the provider-agnostic abstractions for conversing
// with hosted language models inside termchat.
//
// Core goals:
//   - One capability interface (Model) over heterogeneous provider APIs
//   - Normalized message / usage shapes independent of any vendor SDK
//   - A Registry mapping model identifiers to the provider that serves them
//   - Classified errors so callers can surface remediation hints
//   - Lightweight mocking for tests (MockModel)
//
// Providers (OpenAI, Google, Anthropic) implement the Model interface in
// sub-packages so higher layers (engine, cli) remain decoupled from vendor
// SDKs.
package model
