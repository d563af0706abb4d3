package handler

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"fuelform/internal/domain"
	"fuelform/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the page templates.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// PageHandler serves the WebApp page.
type PageHandler struct {
	adapter *service.FormAdapter
	title   string
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(adapter *service.FormAdapter, title string) *PageHandler {
	return &PageHandler{adapter: adapter, title: title}
}

type pageField struct {
	ID    string
	Label string
}

var (
	carFieldLabels = map[string]string{
		domain.FieldCarNumber: "Номер машины",
		domain.FieldCity:      "Город, л/100 км",
		domain.FieldHighway:   "Трасса, л/100 км",
		domain.FieldDistrict:  "Район, л/100 км",
		domain.FieldIdle:      "Простой, л/час",
	}
	tripFieldLabels = map[string]string{
		domain.FieldStartOdometer:    "Спидометр на начало, км",
		domain.FieldDistance:         "Пройдено за день, км",
		domain.FieldCityDistance:     "Из них по городу, км",
		domain.FieldHighwayDistance:  "Из них по трассе, км",
		domain.FieldDistrictDistance: "Из них по району, км",
		domain.FieldIdleTime:         "Простой, ч",
		domain.FieldFuelStart:        "Топливо на начало, л",
		domain.FieldRefuel:           "Заправлено, л",
	}
)

func pageFields(ids []string, labels map[string]string) []pageField {
	fields := make([]pageField, len(ids))
	for i, id := range ids {
		fields[i] = pageField{ID: id, Label: labels[id]}
	}
	return fields
}

// Index handles GET /
func (h *PageHandler) Index(c *gin.Context) {
	h.adapter.Load(c.Request.Context())

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":      h.title,
		"CarFields":  pageFields(domain.CarFields, carFieldLabels),
		"TripFields": pageFields(domain.TripFields, tripFieldLabels),
		"CarsList":   domain.ContainerCarsList,
	})
}
