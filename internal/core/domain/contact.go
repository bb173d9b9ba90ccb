package domain

import "time"

type WorkHours struct {
	MondayFriday   string `json:"monday_friday"`
	SaturdaySunday string `json:"saturday_sunday"`
}

type SocialLink struct {
	Enabled  bool   `json:"enabled"`
	Username string `json:"username"`
}

// SocialLinks - фиксированный набор каналов связи.
type SocialLinks struct {
	WhatsApp *SocialLink `json:"whatsapp"`
	Telegram *SocialLink `json:"telegram"`
	VK       *SocialLink `json:"vk"`
}

// Contact - контактные данные организации. Актуальна последняя обновлённая запись.
type Contact struct {
	Phone       string
	Email       string
	Address     string
	WorkHours   *WorkHours
	SocialLinks SocialLinks
	UpdatedAt   time.Time
}

func (c Contact) Validate() error {
	var details []string
	if c.Phone == "" {
		details = append(details, "phone is required")
	}
	if c.Email == "" {
		details = append(details, "email is required")
	}
	if c.Address == "" {
		details = append(details, "address is required")
	}
	if len(details) > 0 {
		return NewValidationError("invalid contact", details...)
	}
	return nil
}
