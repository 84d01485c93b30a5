// Package seed loads the sample dataset the core runs on. There is no
// persistence layer behind the repositories; this is the whole initial
// state of a deployment.
package seed

import (
	"time"

	"github.com/nurpe/freightops/internal/model"
	"github.com/nurpe/freightops/internal/repository"
)

// Account pairs a user with its mock plain-text password.
type Account struct {
	User     model.User
	Password string
}

func Accounts() []Account {
	return []Account{
		{
			User: model.User{
				ID:    "1",
				Name:  "Иван Петров",
				Role:  model.RoleChiefLogistician,
				Email: "chief@logistics.com",
			},
			Password: "chief123",
		},
		{
			User: model.User{
				ID:    "2",
				Name:  "Мария Сидорова",
				Role:  model.RoleLogistician,
				Email: "maria@logistics.com",
			},
			Password: "maria123",
		},
		{
			User: model.User{
				ID:    "3",
				Name:  "Алексей Козлов",
				Role:  model.RoleLogistician,
				Email: "alex@logistics.com",
			},
			Password: "alex123",
		},
	}
}

func Requests() []model.TransportRequest {
	reqs := []model.TransportRequest{
		{
			ID:     "REQ-001",
			Status: model.StatusLoading,
			Route: model.Route{
				From:      "Алматы",
				To:        "Астана",
				Waypoints: []string{"Балхаш"},
			},
			Dates: model.RequestDates{
				Loading:   date(2024, 3, 12, 8),
				Unloading: date(2024, 3, 14, 18),
			},
			Driver: model.Driver{Name: "Сергей Иванов", IIN: "850312300123"},
			Vehicle: model.Vehicle{
				StateNumber: "A 123 BC 02",
				Type:        "Рефрижератор",
				HasTractor:  true,
				HasTrailer:  true,
			},
			Cargo: model.Cargo{
				Name:            "Продукты питания",
				Weight:          18000,
				PalletCount:     24,
				TemperatureMode: "+2...+6",
			},
			Payment: model.Payment{
				CostToDriver:      500000,
				PriceFromCustomer: 600000,
				Advance:           100000,
			},
			Documents: model.DocumentRefs{TTN: "DOC-001"},
			IssuedBy:  "Мария Сидорова",
			CreatedAt: date(2024, 3, 10, 9),
			UpdatedAt: date(2024, 3, 12, 8),
		},
		{
			ID:     "REQ-002",
			Status: model.StatusInTransit,
			Route: model.Route{
				From: "Шымкент",
				To:   "Алматы",
			},
			Dates: model.RequestDates{
				Loading:   date(2024, 3, 11, 7),
				Unloading: date(2024, 3, 12, 20),
			},
			Driver: model.Driver{Name: "Болат Ахметов", IIN: "790605400456"},
			Vehicle: model.Vehicle{
				StateNumber: "X 456 KZ 13",
				Type:        "Тент",
				HasTractor:  true,
			},
			Cargo: model.Cargo{
				Name:        "Стройматериалы",
				Weight:      21500,
				PalletCount: 18,
			},
			Payment: model.Payment{
				CostToDriver:      380000,
				PriceFromCustomer: 450000,
				Advance:           50000,
			},
			Documents: model.DocumentRefs{CMR: "DOC-002"},
			IssuedBy:  "Алексей Козлов",
			CreatedAt: date(2024, 3, 9, 15),
			UpdatedAt: date(2024, 3, 11, 7),
		},
		{
			ID:     "REQ-003",
			Status: model.StatusCompleted,
			Route: model.Route{
				From: "Караганда",
				To:   "Павлодар",
			},
			Dates: model.RequestDates{
				Loading:   date(2024, 3, 4, 6),
				Unloading: date(2024, 3, 5, 14),
			},
			Driver: model.Driver{Name: "Ержан Нурланов", IIN: "820918500789"},
			Vehicle: model.Vehicle{
				StateNumber: "M 789 OP 09",
				Type:        "Бортовой",
			},
			Cargo: model.Cargo{
				Name:        "Металлопрокат",
				Weight:      19800,
				PalletCount: 10,
			},
			Payment: model.Payment{
				CostToDriver:      420000,
				PriceFromCustomer: 520000,
				Advance:           0,
			},
			IssuedBy:  "Мария Сидорова",
			CreatedAt: date(2024, 3, 2, 11),
			UpdatedAt: date(2024, 3, 5, 14),
		},
	}
	for i := range reqs {
		reqs[i].Payment.TotalMargin = model.ComputeMargin(
			reqs[i].Payment.PriceFromCustomer, reqs[i].Payment.CostToDriver)
	}
	return reqs
}

func Documents() []model.Document {
	return []model.Document{
		{
			ID:         "DOC-001",
			Name:       "ТТН REQ-001",
			Type:       model.DocumentTTN,
			Status:     model.DocumentPending,
			RequestID:  "REQ-001",
			DriverName: "Сергей Иванов",
			Keywords:   []string{"продукты", "алматы", "астана"},
			UploadedAt: date(2024, 3, 12, 9),
			UploadedBy: "Мария Сидорова",
			FileURL:    "files/doc-001.pdf",
			FileSize:   245760,
		},
		{
			ID:         "DOC-002",
			Name:       "CMR REQ-002",
			Type:       model.DocumentCMR,
			Status:     model.DocumentApproved,
			RequestID:  "REQ-002",
			DriverName: "Болат Ахметов",
			Keywords:   []string{"стройматериалы", "шымкент"},
			UploadedAt: date(2024, 3, 11, 8),
			UploadedBy: "Алексей Козлов",
			FileURL:    "files/doc-002.pdf",
			FileSize:   187392,
		},
	}
}

func Activity() []model.ActivityEntry {
	return []model.ActivityEntry{
		{
			ID:          "ACT-001",
			UserID:      "2",
			UserName:    "Мария Сидорова",
			Action:      model.ActionCreateRequest,
			Description: "Создана заявка Алматы → Астана, груз «Продукты питания»",
			RequestID:   "REQ-001",
			Timestamp:   date(2024, 3, 10, 9),
		},
		{
			ID:          "ACT-002",
			UserID:      "3",
			UserName:    "Алексей Козлов",
			Action:      model.ActionUploadDocument,
			Description: "Загружен документ «CMR REQ-002» (CMR)",
			RequestID:   "REQ-002",
			Timestamp:   date(2024, 3, 11, 8),
		},
		{
			ID:          "ACT-003",
			UserID:      "2",
			UserName:    "Мария Сидорова",
			Action:      model.ActionCompleteRequest,
			Description: "Статус заявки изменен: «Разгрузка» → «Завершено»",
			RequestID:   "REQ-003",
			Timestamp:   date(2024, 3, 5, 14),
			Metadata:    map[string]string{"from": "unloading", "to": "completed"},
		},
	}
}

// CredentialSink receives the mock passwords for the seeded accounts.
type CredentialSink interface {
	SetCredential(email, password string)
}

// Load populates every repository with the sample dataset.
func Load(
	users *repository.UserRepository,
	requests *repository.RequestRepository,
	documents *repository.DocumentRepository,
	activity *repository.ActivityRepository,
	creds CredentialSink,
) {
	for _, account := range Accounts() {
		users.Save(account.User)
		creds.SetCredential(account.User.Email, account.Password)
	}
	for _, req := range Requests() {
		requests.Save(req)
	}
	for _, doc := range Documents() {
		documents.Save(doc)
	}
	for _, entry := range Activity() {
		activity.Append(entry)
	}
}

func date(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}
