package catalog

import (
	"github.com/shopspring/decimal"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var ps4Games = []Item{
	{
		ID:       "ps4-001",
		Title:    "The Last of Us Part II",
		Price:    price("39.99"),
		Image:    "https://cdn1.epicgames.com/offer/7713e3fa4b234e0d8f553044205d53b6/EGS_TheLastofUsPartIIRemastered_NaughtyDogLLCNixxesSoftwareIronGalaxy_S1_2560x1440-e93b7a99866b784c5fc948c1666df5e0?resize=1&w=480&h=270&quality=medium",
		Platform: PlatformPS4,
	},
	{
		ID:       "ps4-002",
		Title:    "God of War",
		Price:    price("34.99"),
		Image:    "https://cdn11.bigcommerce.com/s-b72t4x/images/stencil/1280x1280/products/272615/194304/God_of_War_Poster__16494.1595893742.jpg?c=2",
		Platform: PlatformPS4,
	},
	{
		ID:       "ps4-003",
		Title:    "Horizon Zero Dawn",
		Price:    price("29.99"),
		Image:    "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcTB4c6a7uKTfOOYPhILdD_wev1HuTXK7VHSCw&s",
		Platform: PlatformPS4,
	},
	{
		ID:       "ps4-004",
		Title:    "Spider-Man",
		Price:    price("32.99"),
		Image:    "https://i.pinimg.com/736x/5c/e3/eb/5ce3eb230374d405a7a6656f66819143.jpg",
		Platform: PlatformPS4,
	},
	{
		ID:       "ps4-005",
		Title:    "Uncharted 4",
		Price:    price("27.99"),
		Image:    "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcSadC_8lngKPd1-NzM1ngfRB5msu-18n5-1CQ&s",
		Platform: PlatformPS4,
	},
	{
		ID:       "ps4-006",
		Title:    "Bloodborne",
		Price:    price("24.99"),
		Image:    "https://hoanghamobile.com/tin-tuc/wp-content/uploads/2024/09/bloodborne-thumb.jpg",
		Platform: PlatformPS4,
	},
	{
		ID:       "ps4-007",
		Title:    "Red Dead Redemption 2",
		Price:    price("39.99"),
		Image:    "https://mir-s3-cdn-cf.behance.net/projects/404/82c4ce208862945.Y3JvcCw4MDgsNjMyLDAsMA.jpg",
		Platform: PlatformPS4,
	},
	{
		ID:       "ps4-008",
		Title:    "Ghost of Tsushima",
		Price:    price("49.99"),
		Image:    "https://myhotposters.com/cdn/shop/products/mL5567_1024x1024.jpg?v=1628014831",
		Platform: PlatformPS4,
	},
	{
		ID:       "ps4-009",
		Title:    "Final Fantasy VII Remake",
		Price:    price("44.99"),
		Image:    "https://ae01.alicdn.com/kf/H09e9673097184a31a729530e5a47774eN.jpg",
		Platform: PlatformPS4,
	},
	{
		ID:       "ps4-010",
		Title:    "Death Stranding",
		Price:    price("34.99"),
		Image:    "https://www.geeky-gadgets.com/wp-content/uploads/2023/05/Death-Stranding-game-free.webp",
		Platform: PlatformPS4,
	},
}

var ps5Games = []Item{
	{
		ID:       "ps5-001",
		Title:    "Demon's Souls",
		Price:    price("69.99"),
		Image:    "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcRQxbXXElWwZJ0dGL3ymOSUw_0g_CJpRlHk0A&s",
		Platform: PlatformPS5,
	},
	{
		ID:       "ps5-002",
		Title:    "Spider-Man: Miles Morales",
		Price:    price("49.99"),
		Image:    "https://70f186a60af817fe0731-09dac41207c435675bfd529a14211b5c.ssl.cf1.rackcdn.com/assets/attachments_p/000/080/940/size500_miles_web.jpg",
		Platform: PlatformPS5,
	},
	{
		ID:       "ps5-003",
		Title:    "Ratchet & Clank: Rift Apart",
		Price:    price("69.99"),
		Image:    "https://i.ytimg.com/vi/D3KdQSKQyxE/maxresdefault.jpg",
		Platform: PlatformPS5,
	},
	{
		ID:       "ps5-004",
		Title:    "Returnal",
		Price:    price("69.99"),
		Image:    "https://gmedia.playstation.com/is/image/SIEPDC/returnal-keyart-01-ps5-en-25feb21?$facebook$",
		Platform: PlatformPS5,
	},
	{
		ID:       "ps5-005",
		Title:    "Sackboy: A Big Adventure",
		Price:    price("59.99"),
		Image:    "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcT7IVXDqqg3ntqcF99Jxmpq4rhJzvsGIF04GA&s",
		Platform: PlatformPS5,
	},
	{
		ID:       "ps5-006",
		Title:    "Godfall",
		Price:    price("49.99"),
		Image:    "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQe1SFwnsKs_YikSbMj9TrHGgHqsLCXl1f2FQ&s",
		Platform: PlatformPS5,
	},
	{
		ID:       "ps5-007",
		Title:    "Astro's Playroom",
		Price:    price("29.99"),
		Image:    "https://assets.hardwarezone.com/img/2021/01/PS5-Astros-Playroom.jpg",
		Platform: PlatformPS5,
	},
	{
		ID:       "ps5-008",
		Title:    "Call of Duty: Black Ops Cold War",
		Price:    price("69.99"),
		Image:    "https://imageio.forbes.com/specials-images/imageserve/5f3f4fc25f4a062c1a56915c/0x0.jpg?format=jpg&height=900&width=1600&fit=bounds",
		Platform: PlatformPS5,
	},
	{
		ID:       "ps5-009",
		Title:    "Assassin's Creed Valhalla",
		Price:    price("59.99"),
		Image:    "https://staticctf.ubisoft.com/J3yJr34U2pZ2Ieem48Dwy9uqj5PNUQTn/6ZAlQrGYxXi8Bo8PuhJd5g/117dbe6cf56d580c60ad955e28467d88/ACV_Meta_image_website.png",
		Platform: PlatformPS5,
	},
	{
		ID:       "ps5-010",
		Title:    "NBA 2K21",
		Price:    price("69.99"),
		Image:    "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcRGuCJxEejRCxa5mJ7yu7ErNIc1U2WieuZnoA&s",
		Platform: PlatformPS5,
	},
}

var pcGames = []Item{
	{
		ID:       "pc-001",
		Title:    "Cyberpunk 2077",
		Price:    price("59.99"),
		Image:    "https://i.ebayimg.com/images/g/OgAAAOSwK5tgDyUz/s-l1200.jpg",
		Platform: PlatformPC,
	},
	{
		ID:       "pc-002",
		Title:    "Half-Life: Alyx",
		Price:    price("49.99"),
		Image:    "https://i.ytimg.com/vi/O2W0N3uKXmo/maxresdefault.jpg",
		Platform: PlatformPC,
	},
	{
		ID:       "pc-003",
		Title:    "Valorant",
		Price:    price("0"),
		Image:    "https://w0.peakpx.com/wallpaper/503/780/HD-wallpaper-kay-o-x-jett-valorant-game-poster.jpg",
		Platform: PlatformPC,
	},
	{
		ID:       "pc-004",
		Title:    "Microsoft Flight Simulator",
		Price:    price("59.99"),
		Image:    "https://shared.fastly.steamstatic.com/store_item_assets/steam/apps/1250410/capsule_616x353.jpg?t=1740686114",
		Platform: PlatformPC,
	},
	{
		ID:       "pc-005",
		Title:    "Counter-Strike: Global Offensive",
		Price:    price("14.99"),
		Image:    "https://rukminim2.flixcart.com/image/850/1000/kpinwy80/poster/d/o/z/large-counter-strike-global-offensive-poster-non12x18no1x0261-original-imag3qb3nurzmmve.jpeg?q=90&crop=false",
		Platform: PlatformPC,
	},
	{
		ID:       "pc-006",
		Title:    "DOOM Eternal",
		Price:    price("39.99"),
		Image:    "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcSyNkt3Bfe9YrpMR98PWB4ooFa_7fffItmbaA&s",
		Platform: PlatformPC,
	},
	{
		ID:       "pc-007",
		Title:    "World of Warcraft: Shadowlands",
		Price:    price("39.99"),
		Image:    "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcTMSB6lUtdhHGN-qKpkL9_Syk3XGn-jfhc9_g&s",
		Platform: PlatformPC,
	},
	{
		ID:       "pc-008",
		Title:    "Crusader Kings III",
		Price:    price("49.99"),
		Image:    "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcR59JW5pjaxpEbpkzMDPWj82yMp8qYUlPCHNw&s",
		Platform: PlatformPC,
	},
	{
		ID:       "pc-009",
		Title:    "League of Legends",
		Price:    price("0"),
		Image:    "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcSnS4rgEs65GtMXW-1AJaLIAtAT9N8XVgUsKw&s",
		Platform: PlatformPC,
	},
	{
		ID:       "pc-010",
		Title:    "Overwatch",
		Price:    price("19.99"),
		Image:    "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcR_8ZbAR6vJt7zV8jywNAJRXnfrAS9toOMsrA&s",
		Platform: PlatformPC,
	},
}
