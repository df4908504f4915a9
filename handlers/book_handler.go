package handlers

import (
	"net/http"

	"book-recommendation-api/helper"
	"book-recommendation-api/models"
	"book-recommendation-api/services"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	bookService services.BookService
	Helper      *helper.HTTPHelper
}

func NewBookHandler(bookService services.BookService, h *helper.HTTPHelper) *BookHandler {
	return &BookHandler{bookService: bookService, Helper: h}
}

func (h *BookHandler) CreateBook(c *gin.Context) {
	var req models.CreateBookRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	book, err := h.bookService.CreateBook(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendErrorFromErr(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, "book created", book)
}

func (h *BookHandler) GetBook(c *gin.Context) {
	book, err := h.bookService.GetBook(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendErrorFromErr(c, err)
		return
	}

	h.Helper.SendData(c, http.StatusOK, book)
}

func (h *BookHandler) UpdateBook(c *gin.Context) {
	var req models.UpdateBookRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	book, err := h.bookService.UpdateBook(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.Helper.SendErrorFromErr(c, err)
		return
	}

	h.Helper.SendData(c, http.StatusOK, book)
}

func (h *BookHandler) DeleteBook(c *gin.Context) {
	if err := h.bookService.DeleteBook(c.Request.Context(), c.Param("id")); err != nil {
		h.Helper.SendErrorFromErr(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetBooks lists rated books matching the optional title, author and
// minimum average rating filters.
func (h *BookHandler) GetBooks(c *gin.Context) {
	var params models.BookListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	books, err := h.bookService.QueryBooks(c.Request.Context(), models.BookFilter{
		Title:     params.Title,
		Author:    params.Author,
		MinRating: params.Rating,
	})
	if err != nil {
		h.Helper.SendErrorFromErr(c, err)
		return
	}

	h.Helper.SendData(c, http.StatusOK, books)
}

func (h *BookHandler) GetAllBooks(c *gin.Context) {
	books, err := h.bookService.ListBooks(c.Request.Context())
	if err != nil {
		h.Helper.SendErrorFromErr(c, err)
		return
	}

	h.Helper.SendData(c, http.StatusOK, books)
}
