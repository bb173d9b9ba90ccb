package rest

import (
	"land-catalog/internal/core/domain"
	"time"

	"github.com/google/uuid"
)

type ImageResponse struct {
	ID     uuid.UUID `json:"id"`
	URL    string    `json:"url"`
	Path   string    `json:"path"`
	Order  int       `json:"order"`
	IsMain bool      `json:"isMain"`
}

type AttachmentResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Path string    `json:"path"`
	Type string    `json:"type"`
	Size int64     `json:"size"`
}

// PlotResponse - участок в формате API. В списках attachments не отдаются.
type PlotResponse struct {
	ID               uuid.UUID            `json:"id"`
	Title            string               `json:"title"`
	Description      string               `json:"description"`
	CadastralNumbers []string             `json:"cadastralNumbers"`
	Area             float64              `json:"area"`
	Price            float64              `json:"price"`
	PricePerMeter    int64                `json:"pricePerMeter"`
	Region           string               `json:"region"`
	Location         string               `json:"location"`
	LandCategory     string               `json:"landCategory"`
	PermittedUse     []string             `json:"permittedUse"`
	Status           domain.PlotStatus    `json:"status"`
	Features         []string             `json:"features"`
	Utilities        domain.Utilities     `json:"utilities"`
	Images           []ImageResponse      `json:"images"`
	Attachments      []AttachmentResponse `json:"attachments,omitempty"`
	IsVisible        bool                 `json:"isVisible"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
}

type PaginationResponse struct {
	Total int `json:"total"`
	Pages int `json:"pages"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type PlotListResponse struct {
	Plots      []PlotResponse     `json:"plots"`
	Pagination PaginationResponse `json:"pagination"`
}

type PlotDetailsResponse struct {
	Plot         PlotResponse   `json:"plot"`
	SimilarPlots []PlotResponse `json:"similarPlots"`
}

type QuizQuestionResponse struct {
	ID       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	Options  []string  `json:"options"`
	Order    int       `json:"order"`
}

type QuizQuestionsResponse struct {
	Questions []QuizQuestionResponse `json:"questions"`
}

// QuizSubmitRequest - тело POST /quiz/submit
type QuizSubmitRequest struct {
	Name    string            `json:"name"`
	Phone   string            `json:"phone"`
	Email   *string           `json:"email"`
	Answers map[string]string `json:"answers"`
}

type QuizSubmitResponse struct {
	Success       bool      `json:"success"`
	Created       bool      `json:"created"`
	AlreadyExists bool      `json:"alreadyExists"`
	Message       string    `json:"message"`
	ResponseID    uuid.UUID `json:"responseId"`
	PromoCode     string    `json:"promoCode"`
}

// ContactDTO - контакты в формате API, используется и для чтения, и для записи
type ContactDTO struct {
	Phone       string            `json:"phone"`
	Email       string            `json:"email"`
	Address     string            `json:"address"`
	WorkHours   *domain.WorkHours `json:"work_hours"`
	SocialLinks SocialLinksDTO    `json:"social_links"`
}

type SocialLinksDTO struct {
	WhatsApp *domain.SocialLink `json:"whatsapp"`
	Telegram *domain.SocialLink `json:"telegram"`
	VK       *domain.SocialLink `json:"vk"`
}

type InquiryRequest struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Message string  `json:"message"`
	Source  string  `json:"source"`
	PlotID  *string `json:"plotId"`
}

type InquiryResponse struct {
	Success   bool      `json:"success"`
	InquiryID uuid.UUID `json:"inquiryId"`
}

type ContactRequestRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

type ContactRequestResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func toPlotResponse(p domain.Plot) PlotResponse {
	resp := PlotResponse{
		ID:               p.ID,
		Title:            p.Title,
		Description:      p.Description,
		CadastralNumbers: nonNilStrings(p.CadastralNumbers),
		Area:             p.Area,
		Price:            p.Price,
		PricePerMeter:    p.PricePerMeter,
		Region:           p.Region,
		Location:         p.Location,
		LandCategory:     p.LandCategory,
		PermittedUse:     nonNilStrings(p.PermittedUse),
		Status:           p.Status,
		Features:         nonNilStrings(p.Features),
		Utilities:        p.Utilities,
		Images:           make([]ImageResponse, 0, len(p.Images)),
		IsVisible:        p.IsVisible,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	for _, img := range p.Images {
		resp.Images = append(resp.Images, ImageResponse(img))
	}
	for _, att := range p.Attachments {
		resp.Attachments = append(resp.Attachments, AttachmentResponse(att))
	}
	return resp
}

func toPlotResponses(plots []domain.Plot) []PlotResponse {
	res := make([]PlotResponse, 0, len(plots))
	for _, p := range plots {
		res = append(res, toPlotResponse(p))
	}
	return res
}

func toContactDTO(c *domain.Contact) ContactDTO {
	return ContactDTO{
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		WorkHours: c.WorkHours,
		SocialLinks: SocialLinksDTO{
			WhatsApp: c.SocialLinks.WhatsApp,
			Telegram: c.SocialLinks.Telegram,
			VK:       c.SocialLinks.VK,
		},
	}
}

func (d ContactDTO) toDomain() domain.Contact {
	return domain.Contact{
		Phone:     d.Phone,
		Email:     d.Email,
		Address:   d.Address,
		WorkHours: d.WorkHours,
		SocialLinks: domain.SocialLinks{
			WhatsApp: d.SocialLinks.WhatsApp,
			Telegram: d.SocialLinks.Telegram,
			VK:       d.SocialLinks.VK,
		},
	}
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
