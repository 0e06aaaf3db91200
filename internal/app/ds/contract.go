package ds

import (
	"strings"
	"time"
)

const (
	AnonymousUser   = "anonymous"
	AnonymousPrefix = "anon_"
)

// IsAnonymous: пустой id, "anonymous" и любые anon_* считаются анонимными.
func IsAnonymous(userID string) bool {
	return userID == "" || userID == AnonymousUser || strings.HasPrefix(userID, AnonymousPrefix)
}

// Contract сохранённый черновик договора
type Contract struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	Title     string            `json:"title"`
	Data      ContractRequest   `json:"data"`
	Elements  map[string]string `json:"elements,omitempty"`
	Comments  []Comment         `json:"comments,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Owner отсутствующий user_id означает анонимного владельца
func (c *Contract) Owner() string {
	if c.UserID == "" {
		return AnonymousUser
	}
	return c.UserID
}

// Comment замечание к разделу договора в редакторе
type Comment struct {
	ID        string    `json:"id"`
	SectionID string    `json:"section_id"`
	Text      string    `json:"text"`
	Author    string    `json:"author,omitempty"`
	Resolved  bool      `json:"resolved"`
	CreatedAt time.Time `json:"created_at"`
}
