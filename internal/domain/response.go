package domain

import "time"

// ResponseKind tells which operation produced a Response.
type ResponseKind string

const (
	ResponseParse    ResponseKind = "parse"
	ResponseGenerate ResponseKind = "generate"
)

// Response is the outcome of one parse/generate call, kept for later inspection.
// Parse responses carry Flight; generate responses carry the encoded Content.
type Response struct {
	Kind      ResponseKind
	Source    string
	CreatedAt time.Time

	Flight  *Flight
	Content string
}

// WorkspaceSpec describes where a workspace is created.
type WorkspaceSpec struct {
	Root string
}

// MessageRef is a lightweight reference to a message file on disk.
type MessageRef struct {
	Name string
	Path string
}
