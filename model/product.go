package model

type Category struct {
	DTO
	Name string `gorm:"unique;not null" json:"name"`
	Slug string `gorm:"unique;size:100" json:"slug"`
	Kind string `json:"kind"` // BYPRODUCT (phụ phẩm nông nghiệp) / RECYCLED_ART (đồ tái chế)
}

type Categories []Category

type Product struct {
	DTO
	SellerID   uint     `gorm:"not null;index" json:"sellerId"`
	Seller     Customer `gorm:"foreignKey:SellerID" json:"seller"`
	CategoryID uint     `gorm:"not null" json:"categoryId"`
	Category   Category `gorm:"foreignKey:CategoryID" json:"category"`

	Name        string  `gorm:"not null" json:"name"`
	Slug        string  `gorm:"unique;size:150" json:"slug"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"` // VND
	Quantity    int     `gorm:"not null;default:0" json:"quantity"`
	Unit        string  `json:"unit"`                                    // kg, bó, cái...
	Status      string  `gorm:"default:'ACTIVE';not null" json:"status"` // ACTIVE HIDDEN SOLD_OUT

	Images  []ProductImage `gorm:"foreignKey:ProductID" json:"images"`
	Reviews []Review       `gorm:"foreignKey:ProductID" json:"-"`
}

type Products []Product

type ProductImage struct {
	DTO
	ProductID uint   `gorm:"not null;index" json:"productId"`
	Url       string `gorm:"not null" json:"url"` // secure_url trả về từ Cloudinary
	PublicID  string `json:"publicId"`
}

type CreateProductInput struct {
	CategoryID  uint     `validate:"required,gt=0" json:"categoryId"`
	Name        string   `validate:"required,min=3,max=150" json:"name"`
	Description string   `json:"description"`
	Price       float64  `validate:"required,gt=0" json:"price"`
	Quantity    int      `validate:"required,gte=1" json:"quantity"`
	Unit        string   `json:"unit"`
	ImageUrls   []string `json:"imageUrls"`
}

type EditProductInput struct {
	CategoryID  *uint    `json:"categoryId"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	Unit        *string  `json:"unit"`
	Status      *string  `json:"status"`
}

type FilterProduct struct {
	Pagination
	SearchKey  string   `json:"searchKey"`
	CategoryID *uint    `json:"categoryId"`
	SellerID   *uint    `json:"sellerId"`
	Kind       *string  `json:"kind"`
	PriceMin   *float64 `json:"priceMin"`
	PriceMax   *float64 `json:"priceMax"`
	Status     *string  `json:"status"`
}
