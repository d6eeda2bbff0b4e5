package handlers

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/httpresp"
	"github.com/BruksfildServices01/salon-manager/internal/storage"
	ucProduct "github.com/BruksfildServices01/salon-manager/internal/usecase/product"
)

type ProductHandler struct {
	products *ucProduct.Products
}

func NewProductHandler(products *ucProduct.Products) *ProductHandler {
	return &ProductHandler{products: products}
}

// --------- Requests ---------

type ProductRequest struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Unit        *string          `json:"unit"`
	Price       *decimal.Decimal `json:"price"`
	Cost        *decimal.Decimal `json:"cost"`
	Stock       *int             `json:"stock"`
	MinStock    *int             `json:"min_stock"`
	Active      *bool            `json:"active"`
}

func (r ProductRequest) input() ucProduct.ProductInput {
	return ucProduct.ProductInput{
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		Unit:        r.Unit,
		Price:       r.Price,
		Cost:        r.Cost,
		Stock:       r.Stock,
		MinStock:    r.MinStock,
		Active:      r.Active,
	}
}

type StockRequest struct {
	ID    string `json:"id" binding:"required"`
	Delta *int   `json:"delta"`
	Stock *int   `json:"stock"`
}

// --------- Handlers ---------

func (h *ProductHandler) Setup(c *gin.Context) {
	services, err := h.products.Setup(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err, "failed_to_setup_catalog", "Erro ao preparar o catálogo.")
		return
	}
	httpresp.List(c, services)
}

func (h *ProductHandler) Services(c *gin.Context) {
	services, err := h.products.Services(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}
	httpresp.List(c, services)
}

func (h *ProductHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	if c.Query("low_stock") == "true" {
		list, err := h.products.LowStock(ctx)
		if err != nil {
			httperr.Respond(c, err, "failed_to_list_products", "Erro ao listar produtos.")
			return
		}
		httpresp.List(c, list)
		return
	}

	list, err := h.products.List(ctx, c.Query("category"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_list_products", "Erro ao listar produtos.")
		return
	}
	httpresp.List(c, list)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bad(c, err)
		return
	}

	p, err := h.products.Create(c.Request.Context(), req.input())
	if err != nil {
		httperr.Respond(c, err, "failed_to_create_product", "Erro ao criar produto.")
		return
	}
	httpresp.Created(c, p)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bad(c, err)
		return
	}

	p, err := h.products.Update(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		httperr.Respond(c, err, "failed_to_update_product", "Erro ao atualizar produto.")
		return
	}
	httpresp.OK(c, p)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Respond(c, err, "failed_to_delete_product", "Erro ao excluir produto.")
		return
	}
	httpresp.NoContent(c)
}

func (h *ProductHandler) Stock(c *gin.Context) {
	var req StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bad(c, err)
		return
	}

	p, err := h.products.AdjustStock(c.Request.Context(), req.ID, catalog.StockChange{
		Delta: req.Delta,
		Stock: req.Stock,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_update_stock", "Erro ao atualizar estoque.")
		return
	}
	httpresp.OK(c, p)
}

// UploadImage recebe o arquivo no campo multipart "image".
func (h *ProductHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		httperr.Respond(c, httperr.ErrBusiness("invalid_image"), "", "")
		return
	}
	if fh.Size > storage.MaxImageBytes {
		httperr.Respond(c, httperr.ErrBusiness("invalid_image"), "", "")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Respond(c, httperr.ErrBusiness("invalid_image"), "", "")
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, storage.MaxImageBytes+1))
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Erro ao ler imagem.")
		return
	}

	p, err := h.products.UploadImage(c.Request.Context(), c.Param("id"), raw)
	if err != nil {
		httperr.Respond(c, err, "failed_to_upload_image", "Erro ao enviar imagem.")
		return
	}
	httpresp.OK(c, p)
}
