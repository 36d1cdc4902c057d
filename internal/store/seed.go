package store

import (
	"time"

	"github.com/elrammalachi-lab/booze-bags/internal/domain/renewal"
)

// seedRenewalState is the sample dataset returned when no renewal payload
// exists or the stored one is unparseable.
func seedRenewalState() renewalState {
	return renewalState{
		Projects: []renewal.Project{
			{
				ID:              "proj_1",
				Name:            "רחוב הרצל 42",
				Address:         "הרצל 42",
				City:            "תל אביב",
				Type:            `תמ"א 38/1`,
				Stage:           renewal.StagePermits,
				StartDate:       "2023-06-01",
				ExpectedEndDate: "2025-12-31",
				TotalUnits:      18,
				NewUnits:        4,
				Floors:          6,
				Developer:       `אינוביישן נדל"ן`,
				Contractor:      `א.ב. בנייה בע"מ`,
				Description:     "חיזוק מבנה ותוספת קומות",
				CreatedAt:       time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC),
			},
			{
				ID:              "proj_2",
				Name:            "שכונת נווה שאנן",
				Address:         "בן יהודה 7-15",
				City:            "חיפה",
				Type:            "פינוי-בינוי",
				Stage:           renewal.StagePlanning,
				StartDate:       "2024-01-15",
				ExpectedEndDate: "2028-06-30",
				TotalUnits:      60,
				NewUnits:        120,
				Floors:          15,
				Developer:       "גרין גרופ",
				Description:     "פינוי 3 בניינים ישנים ובניית מגדל מגורים חדש",
				Notes:           "בשלב תכנון עם העירייה",
				CreatedAt:       time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
			},
		},
		Tenants: []renewal.Tenant{
			{
				ID:              "ten_1",
				ProjectID:       "proj_1",
				Name:            "משפחת כהן",
				Phone:           "054-1234567",
				Email:           "cohen@mail.com",
				Apartment:       "3א",
				Floor:           "1",
				AgreementStatus: renewal.AgreementSigned,
				SignedDate:      "2023-09-01",
				Notes:           `הסכים לאחר מו"מ`,
			},
			{
				ID:              "ten_2",
				ProjectID:       "proj_1",
				Name:            "משפחת לוי",
				Phone:           "052-9876543",
				Apartment:       "5ב",
				Floor:           "2",
				AgreementStatus: renewal.AgreementNegotiating,
				Notes:           "מעוניין בהחלפת דירה",
			},
			{
				ID:              "ten_3",
				ProjectID:       "proj_1",
				Name:            `ד"ר אבי שפירא`,
				Phone:           "050-1112233",
				Email:           "avi@example.com",
				Apartment:       "8ג",
				Floor:           "3",
				AgreementStatus: renewal.AgreementWaiting,
			},
		},
		Tasks: []renewal.Task{
			{
				ID:          "task_1",
				ProjectID:   "proj_1",
				Title:       "הגשת בקשה להיתר בנייה",
				Description: "להגיש את כל המסמכים לעירייה",
				DueDate:     "2025-03-15",
				Status:      renewal.TaskInProgress,
				Priority:    renewal.PriorityHigh,
				Category:    "היתרים",
				CreatedAt:   time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC),
			},
			{
				ID:          "task_2",
				ProjectID:   "proj_1",
				Title:       "פגישה עם דייר שפירא",
				Description: "לקיים פגישה לגבי תנאי ההסכם",
				DueDate:     "2025-02-28",
				Status:      renewal.TaskOpen,
				Priority:    renewal.PriorityMedium,
				Category:    "דיירים",
				CreatedAt:   time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			},
			{
				ID:          "task_3",
				ProjectID:   "proj_2",
				Title:       "הכנת תוכנית לוועדה המקומית",
				Description: "הכנת מצגת לישיבת הוועדה",
				DueDate:     "2025-04-01",
				Status:      renewal.TaskOpen,
				Priority:    renewal.PriorityUrgent,
				Category:    "תכנון",
				CreatedAt:   time.Date(2025, 1, 20, 11, 0, 0, 0, time.UTC),
			},
		},
	}
}
