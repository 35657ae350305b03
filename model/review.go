package model

type Review struct {
	DTO
	ProductID  uint     `gorm:"not null;index:idx_review_once,unique" json:"productId"`
	CustomerID uint     `gorm:"not null;index:idx_review_once,unique" json:"customerId"`
	Customer   Customer `gorm:"foreignKey:CustomerID" json:"customer"`
	Rating     int      `gorm:"not null" json:"rating"` // 1..5
	Comment    string   `gorm:"type:text" json:"comment"`
}

type Reviews []Review

type CreateReviewInput struct {
	ProductID uint   `validate:"required,gt=0" json:"productId"`
	Rating    int    `validate:"required,gte=1,lte=5" json:"rating"`
	Comment   string `validate:"max=2000" json:"comment"`
}

type WishlistItem struct {
	DTO
	CustomerID uint    `gorm:"not null;index:idx_wishlist_once,unique" json:"customerId"`
	ProductID  uint    `gorm:"not null;index:idx_wishlist_once,unique" json:"productId"`
	Product    Product `gorm:"foreignKey:ProductID" json:"product"`
}

type Notification struct {
	DTO
	CustomerID uint   `gorm:"not null;index" json:"customerId"`
	Title      string `gorm:"not null" json:"title"`
	Body       string `gorm:"type:text" json:"body"`
	Read       bool   `gorm:"default:false" json:"read"`
}

type Notifications []Notification
