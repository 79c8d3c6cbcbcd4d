package models

import "time"

// User представляет пользователя в системе
type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`         // уникальный email
	PasswordHash string     `json:"password_hash"` // bcrypt хеш пароля
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// NoteRecord представляет заметку в серверном хранилище
type NoteRecord struct {
	ID         int64     `json:"id"`
	OwnerID    int64     `json:"owner_id"`
	Title      string    `json:"title"`
	ContentMd  string    `json:"content_md"`
	Visibility string    `json:"visibility"` // PRIVATE | SHARED | PUBLIC
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RefreshToken представляет refresh token пользователя
type RefreshToken struct {
	Token     string    `json:"token"`      // случайные 32 байта в base64
	UserID    int64     `json:"user_id"`    // ID пользователя
	ExpiresAt time.Time `json:"expires_at"` // время истечения
	CreatedAt time.Time `json:"created_at"` // время создания
}

// Share представляет выданный доступ к заметке (серверная сущность)
type Share struct {
	ID               int64     `json:"id"`
	NoteID           int64     `json:"note_id"`
	SharedWithUserID int64     `json:"shared_with_user_id"`
	Permission       string    `json:"permission"` // пока только READ
	CreatedAt        time.Time `json:"created_at"`
}

// PublicLink представляет публичную ссылку на заметку (серверная сущность)
type PublicLink struct {
	ID        int64      `json:"id"`
	NoteID    int64      `json:"note_id"`
	URLToken  string     `json:"url_token"` // UUID в URL
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"` // nil = бессрочная
}

// Expired reports whether the link is past its expiry.
// Links without an expiry never expire.
func (l *PublicLink) Expired(now time.Time) bool {
	return l.ExpiresAt != nil && now.After(*l.ExpiresAt)
}
