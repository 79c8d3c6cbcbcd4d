package models

import "fmt"

// OperationType определяет тип отложенной мутации
type OperationType string

const (
	// OperationCreate создание новой заметки
	OperationCreate OperationType = "CREATE"
	// OperationUpdate частичное обновление существующей заметки
	OperationUpdate OperationType = "UPDATE"
	// OperationDelete удаление заметки
	OperationDelete OperationType = "DELETE"
)

// OperationData представляет payload отложенной операции.
// Для CREATE заполнены Title, ContentMd и Tags; для UPDATE — любое
// подмножество полей; для DELETE payload пустой.
// nil-поле означает "не менять".
type OperationData struct {
	Title      *string   `json:"title,omitempty"`
	ContentMd  *string   `json:"contentMd,omitempty"`
	Tags       *[]string `json:"tags,omitempty"`
	Visibility *string   `json:"visibility,omitempty"`
}

// PendingOperation представляет одну не подтверждённую сервером мутацию.
// Операции живут в durable-очереди, никогда не изменяются и не
// переупорядочиваются: replay идёт строго в порядке добавления.
type PendingOperation struct {
	// ID уникален в пределах очереди. Для CREATE совпадает с LocalID
	// целевой заметки, для UPDATE/DELETE строится из server id и
	// момента создания операции.
	ID   string        `json:"id"`
	Type OperationType `json:"type"`

	// NoteID — server id заметки, заполнен для UPDATE/DELETE
	NoteID int64 `json:"noteId,omitempty"`
	// LocalID заполнен для CREATE
	LocalID string `json:"localId,omitempty"`

	Data OperationData `json:"data"`
	// Timestamp — момент создания операции в epoch millis,
	// определяет порядок replay
	Timestamp int64 `json:"timestamp"`
}

// LocalNoteID builds a client-generated note identifier.
func LocalNoteID(epochMillis int64) string {
	return fmt.Sprintf("local_%d", epochMillis)
}

// UpdateOperationID builds the queue id for an UPDATE operation.
func UpdateOperationID(noteID, epochMillis int64) string {
	return fmt.Sprintf("update_%d_%d", noteID, epochMillis)
}

// DeleteOperationID builds the queue id for a DELETE operation.
func DeleteOperationID(noteID, epochMillis int64) string {
	return fmt.Sprintf("delete_%d_%d", noteID, epochMillis)
}
