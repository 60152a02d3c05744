// Package api defines the wire types exchanged between the contentgen client
// and server, plus request validation. The server owns every entity; ids are
// always server-assigned.
package api

import "time"

// User is the account representation returned by /auth/* and /admin/users.
// Stats is only populated on admin listings.
type User struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	IsActive  bool       `json:"is_active"`
	IsAdmin   bool       `json:"is_admin"`
	CreatedAt time.Time  `json:"created_at"`
	Stats     *UserStats `json:"stats,omitempty"`
}

// UserStats aggregates a user's content counts for the admin user list.
type UserStats struct {
	TotalContent int64 `json:"total_content"`
	Published    int64 `json:"published"`
	Drafts       int64 `json:"drafts"`
}

// Content statuses known to the server.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Content is a generated item as stored on the server.
type Content struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Language  string    `json:"language"`
	Tone      string    `json:"tone"`
	Status    string    `json:"status"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Template is a reusable prompt. Default templates have no owner and are
// read-only for regular users.
type Template struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Prompt    string `json:"prompt"`
	Language  string `json:"language"`
	IsDefault bool   `json:"is_default"`
	OwnerID   *int64 `json:"owner_id,omitempty"`
}

// Option is one selectable generation parameter (language or tone).
type Option struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// TokenResponse is returned by /auth/login and /auth/register.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// NameCount is a labelled counter used in dashboard top lists.
type NameCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// DashboardSnapshot is the admin dashboard aggregate. It is read-only and
// fully replaced on each fetch; the client never merges partial snapshots.
type DashboardSnapshot struct {
	Users        int64       `json:"users"`
	Contents     int64       `json:"contents"`
	Templates    int64       `json:"templates"`
	TopLanguages []NameCount `json:"top_languages"`
	TopTones     []NameCount `json:"top_tones"`
}

// SystemHealth reports liveness of the server's dependencies.
type SystemHealth struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	GeminiAPI string    `json:"gemini_api"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// DatabaseCounts holds row counts per entity.
type DatabaseCounts struct {
	Users     int64 `json:"users"`
	Contents  int64 `json:"contents"`
	Templates int64 `json:"templates"`
}

// SystemStats is the detailed operational breakdown for the health screen.
type SystemStats struct {
	Database            DatabaseCounts   `json:"database"`
	ContentByStatus     map[string]int64 `json:"content_by_status"`
	ContentByLanguage   map[string]int64 `json:"content_by_language"`
	ContentByTone       map[string]int64 `json:"content_by_tone"`
	TemplatesByCategory map[string]int64 `json:"templates_by_category"`
}

// BulkDeleteResponse reports how many rows a bulk delete removed.
type BulkDeleteResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// MessageResponse is the generic success payload for mutations that return
// no entity.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body. Clients surface Detail verbatim.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Export formats accepted by /export/{id}/{format}.
const (
	ExportMarkdown = "markdown"
	ExportText     = "txt"
	ExportPDF      = "pdf"
	ExportDOCX     = "docx"
)
