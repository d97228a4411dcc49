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

type ComicBookHandler struct {
	svc service.ComicBookService
}

func NewComicBookHandler(svc service.ComicBookService) *ComicBookHandler {
	return &ComicBookHandler{svc: svc}
}

func (h *ComicBookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/count", h.Count)
	rg.GET("/:comic_book_id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:comic_book_id", h.Update)
	rg.DELETE("/:comic_book_id", h.Delete)
}

func (h *ComicBookHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.GetAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.ComicBookBasicResponse, 0, len(list))
	for _, cb := range list {
		resp = append(resp, dto.FromModelToBasicResponse(cb))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (h *ComicBookHandler) Count(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	total, err := h.svc.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": total})
}

func (h *ComicBookHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("comic_book_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	cb, err := h.svc.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "comic book not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get comic book"})
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToResponse(*cb))
}

func (h *ComicBookHandler) Create(c *gin.Context) {
	var in dto.CreateComicBookDTO
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
	c.JSON(http.StatusCreated, dto.FromModelToResponse(model))
}

func (h *ComicBookHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("comic_book_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var in dto.UpdateComicBookDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	model := in.ToModel()
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Update(ctx, id, &model); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "comic book not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToResponse(model))
}

func (h *ComicBookHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("comic_book_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "comic book not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
