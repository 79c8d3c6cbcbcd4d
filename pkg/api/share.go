package api

// Share представляет доступ к заметке для другого пользователя
type Share struct {
	ID              int64  `json:"id"`
	NoteID          int64  `json:"noteId"`
	SharedWithEmail string `json:"sharedWithEmail"`
	Permission      string `json:"permission"` // пока только READ
}

// ShareWithUserRequest представляет запрос на выдачу доступа по email
type ShareWithUserRequest struct {
	Email string `json:"email"`
}

// PublicLink представляет публичную ссылку на заметку
type PublicLink struct {
	ID        int64  `json:"id"`
	URLToken  string `json:"urlToken"`
	FullURL   string `json:"fullUrl"`
	CreatedAt string `json:"createdAt"`           // ISO-8601
	ExpiresAt string `json:"expiresAt,omitempty"` // пустая строка = бессрочная
}
