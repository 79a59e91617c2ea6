// Package transcript persists conversation snapshots as human-diffable JSON
// documents, one per file. A Transcript captures the timestamp, active model
// identifier, provider name, cumulative token usage and the full message
// sequence by value; the Store manages the directory of saved files with
// timestamp-derived default names.
//
// Reads are tolerant of missing optional fields (timestamp, token_usage)
// but reject documents without a model identifier or a conversation.
package transcript
