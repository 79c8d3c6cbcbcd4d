package api

// Note visibility values assigned by the server.
const (
	VisibilityPrivate = "PRIVATE"
	VisibilityShared  = "SHARED"
	VisibilityPublic  = "PUBLIC"
)

// Note представляет заметку в том виде, в котором её отдаёт сервер
type Note struct {
	ID         int64       `json:"id"`
	Title      string      `json:"title"`
	ContentMd  string      `json:"contentMd"`
	Visibility string      `json:"visibility"`
	Tags       []string    `json:"tags"`
	OwnerID    int64       `json:"ownerId"`
	OwnerEmail string      `json:"ownerEmail"`
	CreatedAt  string      `json:"createdAt"` // ISO-8601
	UpdatedAt  string      `json:"updatedAt"` // ISO-8601
	Shares     []Share     `json:"shares,omitempty"`
	PublicLink *PublicLink `json:"publicLink,omitempty"`
}

// CreateNoteRequest представляет запрос на создание заметки
// Видимость клиент задать не может: сервер всегда ставит PRIVATE
type CreateNoteRequest struct {
	Title     string   `json:"title"`
	ContentMd string   `json:"contentMd"`
	Tags      []string `json:"tags"`
}

// UpdateNoteRequest представляет частичное обновление заметки
// nil-поля не изменяются на сервере
type UpdateNoteRequest struct {
	Title      *string   `json:"title,omitempty"`
	ContentMd  *string   `json:"contentMd,omitempty"`
	Tags       *[]string `json:"tags,omitempty"`
	Visibility *string   `json:"visibility,omitempty"`
}

// NoteListResponse представляет страницу списка заметок
type NoteListResponse struct {
	Content       []Note `json:"content"`
	Page          int    `json:"page"`
	Size          int    `json:"size"`
	TotalElements int64  `json:"totalElements"`
	TotalPages    int    `json:"totalPages"`
}
