package rest

import (
	"land-catalog/internal/contextkeys"
	"land-catalog/internal/core/domain"
	"land-catalog/internal/core/port"
	"land-catalog/internal/core/port/usecases_port"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type PlotHandler struct {
	searchPlotsUC    usecases_port.SearchPlotsUseCase
	getPlotDetailsUC usecases_port.GetPlotDetailsUseCase
}

func NewPlotHandler(searchPlotsUC usecases_port.SearchPlotsUseCase, getPlotDetailsUC usecases_port.GetPlotDetailsUseCase) *PlotHandler {
	return &PlotHandler{
		searchPlotsUC:    searchPlotsUC,
		getPlotDetailsUC: getPlotDetailsUC,
	}
}

// SearchPlots обрабатывает GET /api/v1/plots
func (h *PlotHandler) SearchPlots(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filters := domain.PlotFilters{
		Search:       parseString(query, "search"),
		Region:       parseString(query, "region"),
		Location:     parseString(query, "location"),
		LandCategory: parseString(query, "landCategory"),
		PriceMin:     parseFloat(query, "priceMin"),
		PriceMax:     parseFloat(query, "priceMax"),
		AreaMin:      parseFloat(query, "areaMin"),
		AreaMax:      parseFloat(query, "areaMax"),
	}
	// Неизвестный статус означает "фильтр не задан"
	if status, ok := domain.ParsePlotStatus(parseString(query, "status")); ok {
		filters.Status = &status
	}

	plotQuery := domain.PlotQuery{
		Filters: filters,
		Sort:    domain.ParseSortOrder(parseString(query, "sort")),
		Page: domain.PageRequest{
			Page:  parseInt(query, "page"),
			Limit: parseInt(query, "limit"),
		},
	}

	handlerLogger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": "SearchPlots",
	})

	result, err := h.searchPlotsUC.Execute(r.Context(), plotQuery)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteUseCaseError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, PlotListResponse{
		Plots: toPlotResponses(result.Items),
		Pagination: PaginationResponse{
			Total: result.Total,
			Pages: result.Pages,
			Page:  result.Page,
			Limit: result.Limit,
		},
	})
}

// GetPlotDetails обрабатывает GET /api/v1/plots/{plotID}
func (h *PlotHandler) GetPlotDetails(w http.ResponseWriter, r *http.Request) {
	plotIDStr := chi.URLParam(r, "plotID")
	handlerLogger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": "GetPlotDetails",
		"plot_id": plotIDStr,
	})

	plotID, err := uuid.Parse(plotIDStr)
	if err != nil {
		WriteUseCaseError(w, domain.NewValidationError("invalid plot id", "plotID must be a UUID"))
		return
	}

	view, err := h.getPlotDetailsUC.Execute(r.Context(), plotID)
	if err != nil {
		if domain.KindOf(err) != domain.KindNotFound {
			handlerLogger.Error("Use case failed", err, nil)
		}
		WriteUseCaseError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, PlotDetailsResponse{
		Plot:         toPlotResponse(view.Plot),
		SimilarPlots: toPlotResponses(view.SimilarPlots),
	})
}
