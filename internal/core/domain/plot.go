package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// PlotStatus - статус участка в каталоге.
type PlotStatus string

const (
	PlotStatusAvailable   PlotStatus = "AVAILABLE"
	PlotStatusReserved    PlotStatus = "RESERVED"
	PlotStatusSold        PlotStatus = "SOLD"
	PlotStatusUnavailable PlotStatus = "UNAVAILABLE"
)

// ParsePlotStatus возвращает статус и true, если строка - одно из допустимых значений.
func ParsePlotStatus(s string) (PlotStatus, bool) {
	switch PlotStatus(s) {
	case PlotStatusAvailable, PlotStatusReserved, PlotStatusSold, PlotStatusUnavailable:
		return PlotStatus(s), true
	}
	return "", false
}

// Utility - описание одной коммуникации участка.
type Utility struct {
	Available   bool     `json:"available"`
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	Providers   []string `json:"providers,omitempty"`
}

// Utilities - фиксированный набор коммуникаций. Отсутствующая запись = нет данных.
type Utilities struct {
	Electricity *Utility `json:"electricity,omitempty"`
	Water       *Utility `json:"water,omitempty"`
	Gas         *Utility `json:"gas,omitempty"`
	Sewerage    *Utility `json:"sewerage,omitempty"`
	Internet    *Utility `json:"internet,omitempty"`
	Road        *Utility `json:"road,omitempty"`
}

type PlotImage struct {
	ID     uuid.UUID
	URL    string
	Path   string
	Order  int
	IsMain bool
}

type PlotAttachment struct {
	ID   uuid.UUID
	Name string
	Path string
	Type string
	Size int64
}

// Plot - земельный участок (объявление в каталоге).
type Plot struct {
	ID               uuid.UUID
	Title            string
	Description      string
	CadastralNumbers []string
	Area             float64
	Price            float64
	PricePerMeter    int64
	Region           string
	Location         string
	LandCategory     string
	PermittedUse     []string
	Status           PlotStatus
	Features         []string
	Utilities        Utilities
	Images           []PlotImage
	Attachments      []PlotAttachment
	IsVisible        bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// RecalculatePricePerMeter пересчитывает цену за метр. Вызывается при каждой записи участка.
func (p *Plot) RecalculatePricePerMeter() {
	if p.Area <= 0 {
		p.PricePerMeter = 0
		return
	}
	p.PricePerMeter = int64(math.Round(p.Price / p.Area))
}

// MainImage возвращает главное изображение участка, если оно есть.
func (p *Plot) MainImage() (PlotImage, bool) {
	for _, img := range p.Images {
		if img.IsMain {
			return img, true
		}
	}
	return PlotImage{}, false
}

// PlotDetailsView - участок со всеми изображениями и похожими предложениями.
type PlotDetailsView struct {
	Plot         Plot
	SimilarPlots []Plot
}
