// Package models defines the server-side database entities.
package models

import "time"

type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	IsActive     bool
	IsAdmin      bool
	CreatedAt    time.Time
}

type Content struct {
	ID        int64
	Title     string
	Body      string
	Language  string
	Tone      string
	Status    string
	OwnerID   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Template struct {
	ID        int64
	Name      string
	Category  string
	Prompt    string
	Language  string
	IsDefault bool
	OwnerID   *int64
	CreatedAt time.Time
}

// ContentStats aggregates one owner's content counts.
type ContentStats struct {
	Total     int64
	Published int64
	Drafts    int64
}
