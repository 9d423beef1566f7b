package memory

import (
	"fmt"

	"github.com/artisan/storefront/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

type productSeed struct {
	code        string
	name        string
	description string
	tagline     string
	price       string
	category    catalog.Category
	image       string
}

type planSeed struct {
	code  string
	name  string
	price string
	perks []string
}

var productSeeds = []productSeed{
	{
		code:        "master-belgian-truffles",
		name:        "Master Belgian Truffles",
		description: "Ultra-decadent 75% dark Belgian chocolate truffles, hand-dusted with premium organic cocoa.",
		tagline:     "Authentic Brussels Craft",
		price:       "32.00",
		category:    catalog.CategoryChocolate,
		image:       "https://truffles.com/cdn/shop/files/Dark_Collection-770.jpg?crop=center&height=1200&v=1728587862&width=1200",
	},
	{
		code:        "valencia-orange-sunrise",
		name:        "Valencia Orange Sunrise",
		description: "100% pure cold-pressed Valencia oranges, delivered fresh for a vibrant morning energy boost.",
		tagline:     "Pure Zesty Vitality",
		price:       "12.00",
		category:    catalog.CategoryJuice,
		image:       "https://static.freshtohome.com/media/catalog/product/cache/1/image/18ae109e34f485bd0b0c075abec96b2e/v/a/valencia_orange_800x533_copy.jpg",
	},
	{
		code:        "connoisseur-selection",
		name:        "The Connoisseur Selection",
		description: "A curated ensemble of our finest Belgian pralines and seasonal fruit-infused ganaches.",
		tagline:     "The Ultimate Collection",
		price:       "58.00",
		category:    catalog.CategoryBox,
		image:       "https://thechocolatebarusa.com/wp-content/uploads/2016/02/25-Medium-45-Large-65-xlargerSignature-Belgian-Chocolate-Boxes1-768x768.jpg",
	},
	{
		code:        "ruby-berry-pralines",
		name:        "Ruby Berry Pralines",
		description: "Rare ruby cacao shells filled with a fresh wild strawberry reduction and silky cream.",
		tagline:     "Exotic Pink Cacao",
		price:       "28.00",
		category:    catalog.CategoryChocolate,
		image:       "https://www.funkypigeon.com/gallery/otherproducts/158507.jpg",
	},
	{
		code:        "green-orchard-press",
		name:        "Green Orchard Press",
		description: "Crisp Granny Smith apples, baby kale, and zesty ginger cold-pressed for peak detox.",
		tagline:     "Revitalizing Detox",
		price:       "15.00",
		category:    catalog.CategoryJuice,
		image:       "https://tse1.mm.bing.net/th/id/OIP.ad_YuVGrE9u4mCJqzg3mIAHaHa?rs=1&pid=ImgDetMain&o=7&rm=3",
	},
	{
		code:        "hazelnut-belgian-velvet",
		name:        "Hazelnut Belgian Velvet",
		description: "Slow-roasted hazelnuts ground into fine paste and encased in silky Belgian milk chocolate.",
		tagline:     "Nutty & Indulgent",
		price:       "24.00",
		category:    catalog.CategoryChocolate,
		image:       "https://img.freepik.com/premium-photo/hazelnut-chocolate-delight-closeup-chocolate-pieces-with-nuts_543222-4675.jpg",
	},
	{
		code:        "tropical-dragonfruit-press",
		name:        "Tropical Dragonfruit Press",
		description: "Exotic pink dragonfruit and organic lime juice for deep hydration and vitamin boost.",
		tagline:     "Antioxidant Glow",
		price:       "14.00",
		category:    catalog.CategoryJuice,
		image:       "https://www.eatingonadime.com/wp-content/uploads/2024/03/DragonFruitSmoothieLR-13.jpg",
	},
	{
		code:        "signature-gift-box",
		name:        "Signature Gift Box",
		description: "Our most elegant gift set featuring 16 hand-crafted Belgian masterworks.",
		tagline:     "The Perfect Luxury Gift",
		price:       "45.00",
		category:    catalog.CategoryBox,
		image:       "https://www.kroger.com/product/images/large/front/0073017007598",
	},
}

var planSeeds = []planSeed{
	{
		code:  "essential",
		name:  "Essential",
		price: "49.00",
		perks: []string{
			"2 Juices & 1 Chocolate Bar",
			"Standard Eco-Shipping",
			"Cancel or Skip Anytime",
			"Access to Daily Journaling App",
		},
	},
	{
		code:  "premium",
		name:  "Premium",
		price: "89.00",
		perks: []string{
			"5 Juices & 2 Selection Boxes",
			"Priority Express Shipping",
			"Exclusive Seasonal Access",
			"Limited Edition Harvest Releases",
			"Complimentary Tasting Mat",
		},
	},
	{
		code:  "collector",
		name:  "Collector",
		price: "159.00",
		perks: []string{
			"Daily Juices & Unlimited Craft",
			"Personal Concierge Support",
			"Invite to Exclusive Tasting Events",
			"Hand-Painted Ceramic Box",
			"Custom Flavor Profiles",
		},
	},
}

// NewSeededCatalogStore builds the catalog store with the storefront's
// standing product range and subscription plans
func NewSeededCatalogStore() (*CatalogStore, error) {
	products := make([]*catalog.Product, 0, len(productSeeds))
	for _, seed := range productSeeds {
		price, err := decimal.NewFromString(seed.price)
		if err != nil {
			return nil, fmt.Errorf("invalid seed price for %s: %w", seed.code, err)
		}
		product, err := catalog.NewProduct(seed.code, seed.name, seed.description, seed.tagline, price, seed.category, seed.image)
		if err != nil {
			return nil, fmt.Errorf("invalid product seed %s: %w", seed.code, err)
		}
		products = append(products, product)
	}

	plans := make([]*catalog.Plan, 0, len(planSeeds))
	for _, seed := range planSeeds {
		price, err := decimal.NewFromString(seed.price)
		if err != nil {
			return nil, fmt.Errorf("invalid seed price for %s: %w", seed.code, err)
		}
		plan, err := catalog.NewPlan(seed.code, seed.name, price, seed.perks)
		if err != nil {
			return nil, fmt.Errorf("invalid plan seed %s: %w", seed.code, err)
		}
		plans = append(plans, plan)
	}

	return NewCatalogStore(products, plans), nil
}
