package seed

import (
	"land-catalog/internal/core/domain"

	"github.com/google/uuid"
)

// Идентификаторы фиксированы, чтобы повторный seed обновлял записи, а не плодил копии.
var (
	plotRiverID    = uuid.MustParse("5b0f7c1e-2d4a-4f7e-9b61-0c3a1d2e4f01")
	plotCottageID  = uuid.MustParse("5b0f7c1e-2d4a-4f7e-9b61-0c3a1d2e4f02")
	plotLakeID     = uuid.MustParse("5b0f7c1e-2d4a-4f7e-9b61-0c3a1d2e4f03")
	plotMountainID = uuid.MustParse("5b0f7c1e-2d4a-4f7e-9b61-0c3a1d2e4f04")

	questionTypeID     = uuid.MustParse("9e6d2a40-7c1b-4b8e-a3f5-1d2c3b4a5e01")
	questionAreaID     = uuid.MustParse("9e6d2a40-7c1b-4b8e-a3f5-1d2c3b4a5e02")
	questionDistrictID = uuid.MustParse("9e6d2a40-7c1b-4b8e-a3f5-1d2c3b4a5e03")
)

func available(kind string) *domain.Utility {
	return &domain.Utility{Available: true, Type: kind}
}

func missing() *domain.Utility {
	return &domain.Utility{Available: false}
}

// Plots - демонстрационный каталог.
func Plots() []domain.Plot {
	return []domain.Plot{
		{
			ID:               plotRiverID,
			Title:            "Живописный участок у реки",
			Description:      "Великолепный участок с видом на реку и горы. Идеально подходит для строительства загородного дома или базы отдыха.",
			CadastralNumbers: []string{"22:61:051234:123"},
			Area:             1500,
			Price:            1500000,
			Region:           "Алтайский край",
			Location:         "с. Манжерок",
			LandCategory:     "Земли населенных пунктов",
			PermittedUse:     []string{"ИЖС", "ЛПХ"},
			Status:           domain.PlotStatusAvailable,
			Features:         []string{"Вид на горы", "У реки", "Ровный участок"},
			Utilities: domain.Utilities{
				Electricity: available(""),
				Water:       available(""),
				Gas:         missing(),
				Sewerage:    missing(),
				Road:        available("грунтовая"),
			},
			Images: []domain.PlotImage{
				{URL: "https://images.unsplash.com/photo-1500382017468-9049fed747ef", Path: "/images/plots/1/1.jpg", Order: 1, IsMain: true},
				{URL: "https://images.unsplash.com/photo-1501785888041-af3ef285b470", Path: "/images/plots/1/2.jpg", Order: 2},
			},
			Attachments: []domain.PlotAttachment{
				{Name: "Кадастровый паспорт.pdf", Path: "/attachments/plots/1/cadastral.pdf", Type: "application/pdf", Size: 1024576},
			},
			IsVisible: true,
		},
		{
			ID:               plotCottageID,
			Title:            "Участок в коттеджном поселке",
			Description:      "Участок в современном коттеджном поселке со всеми коммуникациями. Развитая инфраструктура, хорошие соседи.",
			CadastralNumbers: []string{"22:61:051234:124"},
			Area:             800,
			Price:            2000000,
			Region:           "Алтайский край",
			Location:         "п. Чемал",
			LandCategory:     "Земли населенных пунктов",
			PermittedUse:     []string{"ИЖС"},
			Status:           domain.PlotStatusReserved,
			Features:         []string{"В коттеджном поселке", "Все коммуникации", "Охрана"},
			Utilities: domain.Utilities{
				Electricity: available(""),
				Water:       available(""),
				Gas:         available(""),
				Sewerage:    available(""),
				Road:        available("асфальт"),
			},
			Images: []domain.PlotImage{
				{URL: "https://images.unsplash.com/photo-1506974210756-8e1b8985d348", Path: "/images/plots/2/1.jpg", Order: 1, IsMain: true},
			},
			IsVisible: true,
		},
		{
			ID:               plotLakeID,
			Title:            "Участок у озера",
			Description:      "Живописный участок с видом на озеро. Идеально подходит для строительства дома или базы отдыха.",
			CadastralNumbers: []string{"22:33:041502:87"},
			Area:             1500,
			Price:            2500000,
			Region:           "Алтайский край",
			Location:         "Первомайский район, с. Березовка",
			LandCategory:     "Земли сельскохозяйственного назначения",
			PermittedUse:     []string{"ЛПХ", "ИЖС"},
			Status:           domain.PlotStatusAvailable,
			Features:         []string{"Вид на озеро", "Ровный участок", "Круглогодичный подъезд"},
			Utilities: domain.Utilities{
				Electricity: available(""),
				Water:       available(""),
				Gas:         missing(),
				Sewerage:    missing(),
			},
			IsVisible: true,
		},
		{
			ID:               plotMountainID,
			Title:            "Участок в горах",
			Description:      "Уникальный участок в предгорьях Алтая. Прекрасный вид на горы, чистый воздух.",
			CadastralNumbers: []string{"22:02:300004:215"},
			Area:             2000,
			Price:            3500000,
			Region:           "Алтайский край",
			Location:         "Алтайский район, с. Горное",
			LandCategory:     "Земли сельскохозяйственного назначения",
			PermittedUse:     []string{"ЛПХ", "СХ использование"},
			Status:           domain.PlotStatusAvailable,
			Features:         []string{"Горный вид", "Лес рядом", "Экологически чистый район"},
			Utilities: domain.Utilities{
				Electricity: available(""),
				Water:       missing(),
				Gas:         missing(),
				Sewerage:    missing(),
			},
			IsVisible: true,
		},
	}
}

func QuizQuestions() []domain.QuizQuestion {
	return []domain.QuizQuestion{
		{
			ID:       questionTypeID,
			Question: "Какой тип участка вас интересует?",
			Options:  []string{"ИЖС", "Сельхозназначения", "Коммерческий", "Пока не определился"},
			Order:    1,
			IsActive: true,
		},
		{
			ID:       questionAreaID,
			Question: "Какая площадь участка вам нужна?",
			Options:  []string{"До 10 соток", "10-20 соток", "Более 20 соток", "Пока не определился"},
			Order:    2,
			IsActive: true,
		},
		{
			ID:       questionDistrictID,
			Question: "В каком районе хотите приобрести участок?",
			Options:  []string{"Чемальский район", "Майминский район", "Алтайский район", "Рассмотрю все варианты"},
			Order:    3,
			IsActive: true,
		},
	}
}

// DefaultContact - контакты, с которыми витрина работает до первого редактирования.
func DefaultContact() domain.Contact {
	return domain.Contact{
		Phone:   "79039991234",
		Email:   "info@altailands.ru",
		Address: "г. Барнаул, ул. Ленина, 1",
		WorkHours: &domain.WorkHours{
			MondayFriday:   "9:00 - 18:00",
			SaturdaySunday: "10:00 - 16:00",
		},
		SocialLinks: domain.SocialLinks{
			WhatsApp: &domain.SocialLink{Enabled: true, Username: "9039991234"},
			Telegram: &domain.SocialLink{Enabled: true, Username: "altailands"},
			VK:       &domain.SocialLink{Enabled: true, Username: "altailands"},
		},
	}
}
