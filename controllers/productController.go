package controllers

import (
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/craftandcarry/admin-api/clients"
	"github.com/craftandcarry/admin-api/models"
	"github.com/craftandcarry/admin-api/stores"
	"github.com/craftandcarry/admin-api/views"
	"github.com/gin-gonic/gin"
)

// ItemForm is the create/edit form. The image arrives as a separate
// multipart file part; it is required on create and optional on edit.
type ItemForm struct {
	Name        string   `form:"name" binding:"required"`
	Category    string   `form:"category" binding:"required,oneof=Bags Purses Belts"`
	Description string   `form:"description" binding:"required"`
	Features    []string `form:"features" binding:"required,min=1"`
	Price       float64  `form:"price" binding:"gte=0"`
	Discount    float64  `form:"discount" binding:"gte=0,lte=100"`
	Gender      string   `form:"gender" binding:"required,oneof=men women unisex"`
}

type ProductController struct {
	Store *stores.ProductStore
}

func NewProductController(store *stores.ProductStore) *ProductController {
	return &ProductController{Store: store}
}

// GetItems refreshes the catalog (optionally narrowed to one category)
// and returns the requested page of it.
func (p *ProductController) GetItems(ctx *gin.Context) {
	category := ctx.Query("category")
	if category != "" && !models.IsValidCategory(category) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown category: "+category)
		return
	}

	if err := p.Store.Fetch(ctx.Request.Context(), category); err != nil {
		sendErrorResponse(ctx, http.StatusBadGateway, p.Store.Err())
		return
	}

	items := p.Store.Items()
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	totalPages := views.TotalPages(len(items), views.ItemsPerPage)
	page = views.ClampPage(page, totalPages)

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"items": views.Paginate(items, page, views.ItemsPerPage),
		"metadata": gin.H{
			"total":       len(items),
			"currentPage": page,
			"totalPages":  totalPages,
			"pageSize":    views.ItemsPerPage,
		},
	})
}

// CreateItem validates the form, forwards it to the backend and returns
// the confirmed item.
func (p *ProductController) CreateItem(ctx *gin.Context) {
	form, ok := p.bindItemForm(ctx, true)
	if !ok {
		return
	}

	item, err := p.Store.Create(ctx.Request.Context(), form)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadGateway, p.Store.Err())
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"item": item})
}

// UpdateItem edits an existing item; a new image is only sent along
// when one was chosen.
func (p *ProductController) UpdateItem(ctx *gin.Context) {
	form, ok := p.bindItemForm(ctx, false)
	if !ok {
		return
	}

	item, err := p.Store.Update(ctx.Request.Context(), ctx.Param("id"), form)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadGateway, p.Store.Err())
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"item": item})
}

// DeleteItem requires an explicit confirmation before any backend call
// is issued.
func (p *ProductController) DeleteItem(ctx *gin.Context) {
	var body struct {
		Confirm bool `json:"confirm"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil || !body.Confirm {
		sendErrorResponse(ctx, http.StatusPreconditionRequired, "Deletion requires confirmation.")
		return
	}

	if err := p.Store.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		sendErrorResponse(ctx, http.StatusBadGateway, p.Store.Err())
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Item deleted successfully."})
}

func (p *ProductController) bindItemForm(ctx *gin.Context, imageRequired bool) (clients.ProductForm, bool) {
	var form ItemForm
	if err := ctx.ShouldBind(&form); err != nil {
		log.Println("Form binding error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return clients.ProductForm{}, false
	}

	out := clients.ProductForm{
		CategoryName: form.Category,
		ItemName:     form.Name,
		ItemPrice:    form.Price,
		Description:  form.Description,
		Features:     form.Features,
		Discount:     form.Discount,
		Gender:       form.Gender,
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		if imageRequired {
			sendErrorResponse(ctx, http.StatusBadRequest, "An item image is required.")
			return clients.ProductForm{}, false
		}
		return out, true
	}

	f, err := file.Open()
	if err != nil {
		log.Println("Error opening uploaded image:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Unable to read uploaded image.")
		return clients.ProductForm{}, false
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		log.Println("Error reading uploaded image:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Unable to read uploaded image.")
		return clients.ProductForm{}, false
	}

	out.ImageName = file.Filename
	out.Image = content
	return out, true
}
