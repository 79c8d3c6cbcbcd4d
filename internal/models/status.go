package models

import "time"

// SyncStatus представляет производное состояние синхронизации для UI.
// Пересчитывается по запросу; единственная персистентная часть —
// timestamp последнего успешного pull.
type SyncStatus struct {
	// LastSync — момент последнего успешного pull, nil если pull
	// ещё ни разу не завершался успешно
	LastSync *time.Time `json:"lastSync"`
	// PendingOperations — текущая длина очереди отложенных операций
	PendingOperations int `json:"pendingOperations"`
	// IsOnline — последний известный результат проверки сети
	IsOnline bool `json:"isOnline"`
	// IsSyncing — идёт ли полный цикл синхронизации прямо сейчас
	IsSyncing bool `json:"isSyncing"`
}
