package model

import "time"

type DocumentType string

const (
	DocumentTTN      DocumentType = "ttn"
	DocumentCMR      DocumentType = "cmr"
	DocumentInvoice  DocumentType = "invoice"
	DocumentContract DocumentType = "contract"
	DocumentOther    DocumentType = "other"
)

func (t DocumentType) Valid() bool {
	switch t {
	case DocumentTTN, DocumentCMR, DocumentInvoice, DocumentContract, DocumentOther:
		return true
	}
	return false
}

func (t DocumentType) Label() string {
	switch t {
	case DocumentTTN:
		return "ТТН"
	case DocumentCMR:
		return "CMR"
	case DocumentInvoice:
		return "Счет"
	case DocumentContract:
		return "Договор"
	case DocumentOther:
		return "Другое"
	}
	return "Неизвестно"
}

type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "pending"
	DocumentApproved DocumentStatus = "approved"
	DocumentRejected DocumentStatus = "rejected"
)

func (s DocumentStatus) Valid() bool {
	switch s {
	case DocumentPending, DocumentApproved, DocumentRejected:
		return true
	}
	return false
}

func (s DocumentStatus) Label() string {
	switch s {
	case DocumentPending:
		return "Ожидает"
	case DocumentApproved:
		return "Одобрен"
	case DocumentRejected:
		return "Отклонен"
	}
	return "Неизвестно"
}

// Document is upload metadata only. File contents live outside the core;
// FileURL is an opaque reference.
type Document struct {
	ID         string
	Name       string
	Type       DocumentType
	Status     DocumentStatus
	RequestID  string
	DriverName string
	Keywords   []string
	UploadedAt time.Time
	UploadedBy string
	FileURL    string
	FileSize   int64
}
