package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"comiclib/internal/dto"
	"comiclib/internal/repository"
	"comiclib/internal/service"

	"github.com/gin-gonic/gin"
)

type SeriesHandler struct {
	svc service.SeriesService
}

func NewSeriesHandler(svc service.SeriesService) *SeriesHandler {
	return &SeriesHandler{svc: svc}
}

func (h *SeriesHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:series_id", h.Get)
	rg.POST("", h.Create)
}

func (h *SeriesHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.GetAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	resp := make([]dto.SeriesResponse, 0, len(list))
	for _, s := range list {
		resp = append(resp, dto.FromSeriesToResponse(s))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (h *SeriesHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("series_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	s, err := h.svc.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "series not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get series"})
		return
	}
	c.JSON(http.StatusOK, dto.FromSeriesToResponse(*s))
}

func (h *SeriesHandler) Create(c *gin.Context) {
	var in dto.CreateSeriesDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	model := in.ToModel()
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Create(ctx, &model); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.FromSeriesToResponse(model))
}
