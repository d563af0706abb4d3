package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"fuelform/internal/domain"
	"fuelform/internal/form"
	"fuelform/internal/service"
	"fuelform/internal/webapp"
)

// FormHandler handles the WebApp form actions.
type FormHandler struct {
	adapter    *service.FormAdapter
	containers webapp.ContainerStore
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(adapter *service.FormAdapter, containers webapp.ContainerStore) *FormHandler {
	return &FormHandler{adapter: adapter, containers: containers}
}

// SubmitResponse is the HTTP response for a form submission.
type SubmitResponse struct {
	Dispatched bool     `json:"dispatched"`
	Alerts     []string `json:"alerts"`
	Missing    []string `json:"missing,omitempty"`
}

// ContainerResponse is the HTTP response for a rendered container.
type ContainerResponse struct {
	Container string   `json:"container"`
	Items     []string `json:"items"`
}

// SubmitCar handles POST /v1/cars
func (h *FormHandler) SubmitCar(c *gin.Context) {
	doc, err := readDocument(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	f, err := form.BindCar(doc)
	if err != nil {
		respondError(c, err)
		return
	}

	ui := &webapp.AlertRecorder{}
	err = h.adapter.SubmitCar(c.Request.Context(), ui, f)
	respondSubmit(c, ui, err)
}

// SubmitTrip handles POST /v1/trips
func (h *FormHandler) SubmitTrip(c *gin.Context) {
	doc, err := readDocument(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	f, err := form.BindTrip(doc)
	if err != nil {
		respondError(c, err)
		return
	}

	ui := &webapp.AlertRecorder{}
	err = h.adapter.SubmitTrip(c.Request.Context(), ui, f)
	respondSubmit(c, ui, err)
}

// ViewCars handles POST /v1/cars/view
func (h *FormHandler) ViewCars(c *gin.Context) {
	ctx := c.Request.Context()
	container := h.containers.Container(webapp.SessionFrom(ctx), domain.ContainerCarsList)

	if err := h.adapter.ViewCars(ctx, container); err != nil {
		respondError(c, err)
		return
	}

	items, err := container.Items(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ContainerResponse{
		Container: domain.ContainerCarsList,
		Items:     items,
	})
}

func respondSubmit(c *gin.Context, ui *webapp.AlertRecorder, err error) {
	resp := SubmitResponse{Dispatched: err == nil, Alerts: ui.Alerts()}

	var verr *service.ValidationError
	switch {
	case err == nil:
		c.JSON(http.StatusOK, resp)
	case errors.As(err, &verr):
		resp.Missing = verr.Missing
		c.JSON(http.StatusUnprocessableEntity, resp)
	default:
		respondError(c, err)
	}
}

// readDocument builds the submitted document from a JSON object or an
// url-encoded form. Non-string JSON values are formatted as text.
func readDocument(c *gin.Context) (webapp.MapDocument, error) {
	doc := webapp.MapDocument{}

	if c.ContentType() == binding.MIMEJSON {
		var raw map[string]any
		if err := c.ShouldBindJSON(&raw); err != nil {
			return nil, err
		}
		for k, v := range raw {
			switch v := v.(type) {
			case nil:
				doc[k] = ""
			case string:
				doc[k] = v
			default:
				doc[k] = fmt.Sprint(v)
			}
		}
		return doc, nil
	}

	if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}
	for k, v := range c.Request.PostForm {
		if len(v) > 0 {
			doc[k] = v[0]
		}
	}
	return doc, nil
}
