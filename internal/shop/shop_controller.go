package shop

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/meutimefc/api/config"
	"github.com/meutimefc/api/internal/middleware"
	"github.com/meutimefc/api/pkg/utils"
	"gorm.io/gorm"
)

type ShopController struct {
	repo   ShopRepository
	config *config.Config
}

func NewShopController(repo ShopRepository, cfg *config.Config) *ShopController {
	return &ShopController{repo: repo, config: cfg}
}

func teamIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(c, "Invalid team id")
		return 0, false
	}
	return uint(id), true
}

// @Summary      List products
// @Tags         Shop
// @Produce      json
// @Param        team_id  path  int  true  "Team ID"
// @Success      200  {array}  Product
// @Router       /teams/{team_id}/products [get]
func (sc *ShopController) GetProducts(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}
	products, err := sc.repo.ListProducts(teamID)
	if err != nil {
		log.Printf("shop: list products for team %d failed: %v", teamID, err)
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// @Summary      Get product
// @Tags         Shop
// @Produce      json
// @Param        team_id  path  int  true  "Team ID"
// @Param        product_id  path  int  true  "Product ID"
// @Success      200  {object}  Product
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /teams/{team_id}/products/{product_id} [get]
func (sc *ShopController) GetProduct(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(c, "Invalid product id")
		return
	}
	p, err := sc.repo.GetProduct(uint(productID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundJSON(c, "Product")
			return
		}
		utils.InternalErrorJSON(c, err)
		return
	}
	if p.TeamID != teamID {
		utils.NotFoundJSON(c, "Product")
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Create product
// @Tags         Shop
// @Accept       json
// @Produce      json
// @Param        team_id  path  int  true  "Team ID"
// @Param        product  body  CreateProductRequest  true  "Product details"
// @Success      201  {object}  Product
// @Failure      400  {object}  utils.ErrorResponse
// @Router       /teams/{team_id}/products [post]
func (sc *ShopController) CreateProduct(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Invalid input: "+err.Error())
		return
	}

	p := &Product{
		TeamID:      teamID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Sizes:       req.Sizes,
		Stock:       req.Stock,
	}
	if err := sc.repo.CreateProduct(p); err != nil {
		log.Printf("shop: create product failed: %v", err)
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// @Summary      Update product
// @Tags         Shop
// @Accept       json
// @Produce      json
// @Param        team_id  path  int  true  "Team ID"
// @Param        product_id  path  int  true  "Product ID"
// @Param        product  body  UpdateProductRequest  true  "Fields to update"
// @Success      200  {object}  Product
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /teams/{team_id}/products/{product_id} [put]
func (sc *ShopController) UpdateProduct(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(c, "Invalid product id")
		return
	}

	p, err := sc.repo.GetProduct(uint(productID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundJSON(c, "Product")
			return
		}
		utils.InternalErrorJSON(c, err)
		return
	}
	if p.TeamID != teamID {
		utils.NotFoundJSON(c, "Product")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Invalid input: "+err.Error())
		return
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Image != nil {
		p.Image = *req.Image
	}
	if req.Sizes != nil {
		p.Sizes = *req.Sizes
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}

	if err := sc.repo.UpdateProduct(p); err != nil {
		log.Printf("shop: update product %d failed: %v", productID, err)
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Delete product
// @Tags         Shop
// @Param        team_id  path  int  true  "Team ID"
// @Param        product_id  path  int  true  "Product ID"
// @Success      200  {object}  utils.SuccessResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /teams/{team_id}/products/{product_id} [delete]
func (sc *ShopController) DeleteProduct(c *gin.Context) {
	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(c, "Invalid product id")
		return
	}

	p, err := sc.repo.GetProduct(uint(productID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFoundJSON(c, "Product")
			return
		}
		utils.InternalErrorJSON(c, err)
		return
	}
	if p.TeamID != teamID {
		utils.NotFoundJSON(c, "Product")
		return
	}

	if err := sc.repo.DeleteProduct(uint(productID)); err != nil {
		log.Printf("shop: delete product %d failed: %v", productID, err)
		utils.InternalErrorJSON(c, err)
		return
	}
	utils.SuccessJSON(c, http.StatusOK, "Product deleted successfully", nil)
}

// @Summary      Checkout
// @Description  Re-validates every cart line against the buyer's club
// @Description  catalog, clamps quantities to available stock, and creates
// @Description  the order with a stock decrement in a single transaction.
// @Tags         Shop
// @Accept       json
// @Produce      json
// @Param        cart  body  CheckoutRequest  true  "Cart lines"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse
// @Router       /shop/checkout [post]
func (sc *ShopController) Checkout(c *gin.Context) {
	claims, err := middleware.GetClaims(c)
	if err != nil {
		utils.UnauthorizedJSON(c)
		return
	}

	// The buyer shops their own club's store; the tenant rides in the token.
	teamID := claims.TeamID

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestJSON(c, "Invalid input: "+err.Error())
		return
	}

	order := &Order{
		Number: uuid.NewString(),
		UserID: claims.UserID,
		TeamID: teamID,
		Status: "pending",
	}

	for _, line := range req.Items {
		p, err := sc.repo.GetProduct(line.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.BadRequestJSON(c, "Product no longer available")
				return
			}
			utils.InternalErrorJSON(c, err)
			return
		}
		if p.TeamID != teamID {
			utils.BadRequestJSON(c, "Product no longer available")
			return
		}
		if p.Stock < 1 {
			utils.BadRequestJSON(c, "Product out of stock: "+p.Name)
			return
		}

		qty := line.Quantity
		if qty > p.Stock {
			qty = p.Stock
		}
		order.Items = append(order.Items, OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			Size:      line.Size,
			Quantity:  qty,
			UnitPrice: p.Price,
		})
		order.Total += p.Price * float64(qty)
	}

	if err := sc.repo.CreateOrder(order); err != nil {
		log.Printf("shop: checkout for user %d failed: %v", claims.UserID, err)
		if errors.Is(err, gorm.ErrInvalidData) {
			utils.BadRequestJSON(c, "Insufficient stock")
			return
		}
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// @Summary      My orders
// @Tags         Shop
// @Produce      json
// @Success      200  {array}  Order
// @Router       /orders [get]
func (sc *ShopController) GetMyOrders(c *gin.Context) {
	claims, err := middleware.GetClaims(c)
	if err != nil {
		utils.UnauthorizedJSON(c)
		return
	}
	orders, err := sc.repo.ListOrdersByUser(claims.UserID)
	if err != nil {
		utils.InternalErrorJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
