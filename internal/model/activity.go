package model

import "time"

type ActivityAction string

const (
	ActionCreateRequest   ActivityAction = "create_request"
	ActionUpdateStatus    ActivityAction = "update_status"
	ActionUploadDocument  ActivityAction = "upload_document"
	ActionCompleteRequest ActivityAction = "complete_request"
	ActionLogin           ActivityAction = "login"
	ActionOther           ActivityAction = "other"
)

func (a ActivityAction) Valid() bool {
	switch a {
	case ActionCreateRequest, ActionUpdateStatus, ActionUploadDocument,
		ActionCompleteRequest, ActionLogin, ActionOther:
		return true
	}
	return false
}

func (a ActivityAction) Label() string {
	switch a {
	case ActionCreateRequest:
		return "Создание заявки"
	case ActionUpdateStatus:
		return "Обновление статуса"
	case ActionUploadDocument:
		return "Загрузка документа"
	case ActionCompleteRequest:
		return "Завершение заявки"
	case ActionLogin:
		return "Вход в систему"
	}
	return "Другое действие"
}

// ActivityEntry is an append-only audit record. Entries are never mutated
// or deleted once recorded.
type ActivityEntry struct {
	ID          string
	UserID      string
	UserName    string
	Action      ActivityAction
	Description string
	RequestID   string
	Timestamp   time.Time
	Metadata    map[string]string
}
