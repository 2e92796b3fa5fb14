package admin

import (
	"fmt"

	"github.com/azgaming/storefront/catalog"
)

var seedPublishers = []string{
	"Sony Interactive",
	"Electronic Arts",
	"Ubisoft",
	"Activision",
	"Rockstar Games",
}

var seedStudios = []string{
	"Naughty Dog",
	"Insomniac Games",
	"CD Projekt Red",
	"Rockstar North",
	"FromSoftware",
}

// defaultState is the content the admin panel starts with on first run:
// the storefront catalog promoted to editable products, the static
// pages, one blog post, the anti-lag banner and the homepage layout.
// Product metadata is assigned deterministically so first-run content
// is reproducible.
func defaultState(cat *catalog.Catalog, now string) State {
	items := cat.Items()
	products := make([]Product, 0, len(items))
	for i, item := range items {
		products = append(products, Product{
			Item: item,
			Description: fmt.Sprintf(
				"Experience the thrill of %s on %s. This game offers incredible gameplay and stunning graphics.",
				item.Title, item.Platform,
			),
			Featured:        i%4 == 0,
			ReleaseDate:     fmt.Sprintf("2023-%02d-%02d", i%12+1, i%28+1),
			Publisher:       seedPublishers[i%len(seedPublishers)],
			DeveloperStudio: seedStudios[i%len(seedStudios)],
			UpdatedAt:       now,
		})
	}

	return State{
		Products: products,
		Pages: []Page{
			{
				ID:          "page-1",
				Title:       "About Us",
				Slug:        "about",
				Content:     "<h1>About AZGaming</h1><p>AZGaming is your ultimate destination for all gaming needs.</p>",
				IsPublished: true,
				CreatedAt:   now,
				UpdatedAt:   now,
			},
			{
				ID:          "page-2",
				Title:       "Contact Us",
				Slug:        "contact",
				Content:     "<h1>Contact AZGaming</h1><p>Get in touch with us for any inquiries.</p>",
				IsPublished: true,
				CreatedAt:   now,
				UpdatedAt:   now,
			},
		},
		Posts: []Post{
			{
				ID:          "post-1",
				Title:       "Top Gaming Trends for 2024",
				Slug:        "top-gaming-trends-2024",
				Excerpt:     "Discover the hottest gaming trends for this year",
				Content:     "<h1>Top Gaming Trends for 2024</h1><p>The gaming industry continues to evolve...</p>",
				CoverImage:  "https://images.unsplash.com/photo-1550745165-9bc0b252726f?w=800&h=400&fit=crop",
				IsPublished: true,
				CreatedAt:   now,
				UpdatedAt:   now,
			},
		},
		Banners: []Banner{
			{
				ID:          "banner-1",
				Title:       "Anti-Lag Software",
				Description: "Boost your PC gaming performance with our anti-lag software.",
				ImageURL:    "https://images.unsplash.com/photo-1487058792275-0ad4aaf24ca7?w=1200&h=200&fit=crop",
				Link:        "/download/anti-lag",
				IsActive:    true,
				Position:    BannerTop,
				CreatedAt:   now,
				UpdatedAt:   now,
			},
		},
		HomepageSections: []HomepageSection{
			{
				ID:       "section-1",
				Title:    "Featured Games",
				Type:     SectionFeaturedGames,
				Content:  `{"count": 4, "platform": "all"}`,
				Order:    1,
				IsActive: true,
			},
			{
				ID:       "section-2",
				Title:    "Hot Deals",
				Type:     SectionBanner,
				Content:  `{"bannerId": "banner-1"}`,
				Order:    2,
				IsActive: true,
			},
		},
	}
}
