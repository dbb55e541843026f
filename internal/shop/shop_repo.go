package shop

import (
	"gorm.io/gorm"
)

type ShopRepository interface {
	CreateProduct(p *Product) error
	GetProduct(id uint) (*Product, error)
	ListProducts(teamID uint) ([]Product, error)
	UpdateProduct(p *Product) error
	DeleteProduct(id uint) error
	// CreateOrder persists the order and decrements stock for every line in
	// one transaction.
	CreateOrder(o *Order) error
	ListOrdersByUser(userID uint) ([]Order, error)
	GetOrderByNumber(number string) (*Order, error)
}

type gormShopRepository struct {
	db *gorm.DB
}

func NewGormShopRepository(db *gorm.DB) ShopRepository {
	return &gormShopRepository{db: db}
}

func (r *gormShopRepository) CreateProduct(p *Product) error {
	return r.db.Create(p).Error
}

func (r *gormShopRepository) GetProduct(id uint) (*Product, error) {
	var p Product
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *gormShopRepository) ListProducts(teamID uint) ([]Product, error) {
	var products []Product
	if err := r.db.Where("team_id = ?", teamID).Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *gormShopRepository) UpdateProduct(p *Product) error {
	return r.db.Save(p).Error
}

func (r *gormShopRepository) DeleteProduct(id uint) error {
	return r.db.Delete(&Product{}, id).Error
}

func (r *gormShopRepository) CreateOrder(o *Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		for _, item := range o.Items {
			res := tx.Model(&Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrInvalidData
			}
		}
		return nil
	})
}

func (r *gormShopRepository) ListOrdersByUser(userID uint) ([]Order, error) {
	var orders []Order
	if err := r.db.Preload("Items").Where("user_id = ?", userID).Order("id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *gormShopRepository) GetOrderByNumber(number string) (*Order, error) {
	var o Order
	if err := r.db.Preload("Items").Where("number = ?", number).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}
