package admin

import (
	"github.com/shopspring/decimal"

	"github.com/azgaming/storefront/catalog"
)

// Product is the admin-managed copy of a catalog item plus editorial
// metadata. Mutating it never touches the storefront catalog.
type Product struct {
	catalog.Item
	Description     string `json:"description,omitempty"`
	Featured        bool   `json:"featured,omitempty"`
	ReleaseDate     string `json:"releaseDate,omitempty"`
	Publisher       string `json:"publisher,omitempty"`
	DeveloperStudio string `json:"developerStudio,omitempty"`
	UpdatedAt       string `json:"updatedAt,omitempty"`
}

type Page struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Content     string `json:"content"`
	IsPublished bool   `json:"isPublished"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type Post struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Excerpt     string `json:"excerpt"`
	Content     string `json:"content"`
	CoverImage  string `json:"coverImage"`
	IsPublished bool   `json:"isPublished"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type BannerPosition string

const (
	BannerTop     BannerPosition = "top"
	BannerSidebar BannerPosition = "sidebar"
	BannerBottom  BannerPosition = "bottom"
)

type Banner struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	ImageURL    string         `json:"imageUrl"`
	Link        string         `json:"link"`
	IsActive    bool           `json:"isActive"`
	Position    BannerPosition `json:"position"`
	CreatedAt   string         `json:"createdAt"`
	UpdatedAt   string         `json:"updatedAt"`
}

type SectionType string

const (
	SectionFeaturedGames SectionType = "featured-games"
	SectionBanner        SectionType = "banner"
	SectionProductGrid   SectionType = "product-grid"
	SectionTextBlock     SectionType = "text-block"
	SectionCustom        SectionType = "custom"
)

type HomepageSection struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Type     SectionType `json:"type"`
	Content  string      `json:"content"`
	Order    int         `json:"order"`
	IsActive bool        `json:"isActive"`
}

// State is the whole admin blob; every operation reads and rewrites it
// as a unit.
type State struct {
	Products         []Product         `json:"products"`
	Pages            []Page            `json:"pages"`
	Posts            []Post            `json:"posts"`
	Banners          []Banner          `json:"banners"`
	HomepageSections []HomepageSection `json:"homepageSections"`
}

// Patch structs carry partial updates; nil fields keep the stored
// value.

type ProductPatch struct {
	Title           *string
	Price           *decimal.Decimal
	Image           *string
	Platform        *catalog.Platform
	Description     *string
	Featured        *bool
	ReleaseDate     *string
	Publisher       *string
	DeveloperStudio *string
}

type PagePatch struct {
	Title       *string
	Slug        *string
	Content     *string
	IsPublished *bool
}

type PostPatch struct {
	Title       *string
	Slug        *string
	Excerpt     *string
	Content     *string
	CoverImage  *string
	IsPublished *bool
}

type BannerPatch struct {
	Title       *string
	Description *string
	ImageURL    *string
	Link        *string
	IsActive    *bool
	Position    *BannerPosition
}

type HomepageSectionPatch struct {
	Title    *string
	Type     *SectionType
	Content  *string
	Order    *int
	IsActive *bool
}
