// Outfitter - Outfit Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/outfitter

package catalog

// occ is shorthand for building occasion lists in the seed table.
func occ(o ...Occasion) []Occasion { return o }

// SeedItems returns the built-in demonstration catalog: 8 tops, 8 bottoms,
// 8 footwear and 10 accessories. A fresh slice is returned on every call.
func SeedItems() []Item {
	return []Item{
		// Tops
		{ID: "top_001", Name: "Classic White T-Shirt", Category: CategoryTop, Style: StyleCasual, Color: RGB(255, 255, 255), Price: 29.99, Season: SeasonAll, Occasions: occ(OccasionEveryday, OccasionSports, OccasionTravel), Brand: "Basics Co"},
		{ID: "top_002", Name: "Navy Blue Blazer", Category: CategoryTop, Style: StyleFormal, Color: RGB(0, 32, 96), Price: 199.99, Season: SeasonAll, Occasions: occ(OccasionWork, OccasionFormalEvent, OccasionDate), Brand: "Formal Wear"},
		{ID: "top_003", Name: "Black Leather Jacket", Category: CategoryTop, Style: StyleStreetwear, Color: RGB(20, 20, 20), Price: 299.99, Season: SeasonFall, Occasions: occ(OccasionEveryday, OccasionParty, OccasionDate), Brand: "Urban Edge"},
		{ID: "top_004", Name: "Floral Summer Blouse", Category: CategoryTop, Style: StyleBohemian, Color: RGB(255, 182, 193), Price: 49.99, Season: SeasonSpring, Occasions: occ(OccasionEveryday, OccasionDate, OccasionParty), Brand: "Boho Chic"},
		{ID: "top_005", Name: "Gray Hoodie", Category: CategoryTop, Style: StyleCasual, Color: RGB(128, 128, 128), Price: 59.99, Season: SeasonFall, Occasions: occ(OccasionEveryday, OccasionSports, OccasionTravel), Brand: "Comfort Wear"},
		{ID: "top_006", Name: "White Button-Down Shirt", Category: CategoryTop, Style: StyleBusiness, Color: RGB(250, 250, 250), Price: 79.99, Season: SeasonAll, Occasions: occ(OccasionWork, OccasionFormalEvent), Brand: "Professional"},
		{ID: "top_007", Name: "Red Sweater", Category: CategoryTop, Style: StyleCasual, Color: RGB(220, 20, 60), Price: 69.99, Season: SeasonWinter, Occasions: occ(OccasionEveryday, OccasionDate), Brand: "Cozy Wear"},
		{ID: "top_008", Name: "Denim Jacket", Category: CategoryTop, Style: StyleCasual, Color: RGB(59, 89, 152), Price: 89.99, Season: SeasonSpring, Occasions: occ(OccasionEveryday, OccasionTravel), Brand: "Classic Denim"},

		// Bottoms
		{ID: "bottom_001", Name: "Dark Blue Jeans", Category: CategoryBottom, Style: StyleCasual, Color: RGB(25, 25, 112), Price: 79.99, Season: SeasonAll, Occasions: occ(OccasionEveryday, OccasionDate, OccasionTravel), Brand: "Denim Co"},
		{ID: "bottom_002", Name: "Black Dress Pants", Category: CategoryBottom, Style: StyleFormal, Color: RGB(0, 0, 0), Price: 129.99, Season: SeasonAll, Occasions: occ(OccasionWork, OccasionFormalEvent), Brand: "Formal Wear"},
		{ID: "bottom_003", Name: "Khaki Chinos", Category: CategoryBottom, Style: StyleCasual, Color: RGB(240, 230, 140), Price: 69.99, Season: SeasonAll, Occasions: occ(OccasionEveryday, OccasionWork, OccasionTravel), Brand: "Casual Co"},
		{ID: "bottom_004", Name: "Gray Sweatpants", Category: CategoryBottom, Style: StyleSporty, Color: RGB(105, 105, 105), Price: 49.99, Season: SeasonAll, Occasions: occ(OccasionSports, OccasionEveryday), Brand: "Athletic"},
		{ID: "bottom_005", Name: "White Linen Pants", Category: CategoryBottom, Style: StyleBohemian, Color: RGB(255, 255, 255), Price: 89.99, Season: SeasonSummer, Occasions: occ(OccasionEveryday, OccasionDate, OccasionParty), Brand: "Summer Style"},
		{ID: "bottom_006", Name: "Navy Blue Trousers", Category: CategoryBottom, Style: StyleBusiness, Color: RGB(0, 0, 128), Price: 99.99, Season: SeasonAll, Occasions: occ(OccasionWork, OccasionFormalEvent), Brand: "Professional"},
		{ID: "bottom_007", Name: "Black Leather Pants", Category: CategoryBottom, Style: StyleStreetwear, Color: RGB(20, 20, 20), Price: 199.99, Season: SeasonFall, Occasions: occ(OccasionParty, OccasionDate), Brand: "Urban Edge"},
		{ID: "bottom_008", Name: "Beige Cargo Pants", Category: CategoryBottom, Style: StyleCasual, Color: RGB(245, 245, 220), Price: 79.99, Season: SeasonAll, Occasions: occ(OccasionEveryday, OccasionTravel), Brand: "Adventure"},

		// Footwear
		{ID: "footwear_001", Name: "White Sneakers", Category: CategoryFootwear, Style: StyleCasual, Color: RGB(255, 255, 255), Price: 99.99, Season: SeasonAll, Occasions: occ(OccasionEveryday, OccasionSports, OccasionTravel), Brand: "Sport Co"},
		{ID: "footwear_002", Name: "Black Oxford Shoes", Category: CategoryFootwear, Style: StyleFormal, Color: RGB(0, 0, 0), Price: 199.99, Season: SeasonAll, Occasions: occ(OccasionWork, OccasionFormalEvent), Brand: "Formal Wear"},
		{ID: "footwear_003", Name: "Brown Leather Boots", Category: CategoryFootwear, Style: StyleCasual, Color: RGB(139, 69, 19), Price: 249.99, Season: SeasonFall, Occasions: occ(OccasionEveryday, OccasionTravel), Brand: "Outdoor Co"},
		{ID: "footwear_004", Name: "Black Ankle Boots", Category: CategoryFootwear, Style: StyleStreetwear, Color: RGB(20, 20, 20), Price: 179.99, Season: SeasonFall, Occasions: occ(OccasionEveryday, OccasionParty, OccasionDate), Brand: "Urban Edge"},
		{ID: "footwear_005", Name: "Tan Loafers", Category: CategoryFootwear, Style: StyleBusiness, Color: RGB(210, 180, 140), Price: 149.99, Season: SeasonAll, Occasions: occ(OccasionWork, OccasionEveryday), Brand: "Professional"},
		{ID: "footwear_006", Name: "Red High-Tops", Category: CategoryFootwear, Style: StyleSporty, Color: RGB(220, 20, 60), Price: 119.99, Season: SeasonAll, Occasions: occ(OccasionSports, OccasionEveryday), Brand: "Athletic"},
		{ID: "footwear_007", Name: "Navy Blue Boat Shoes", Category: CategoryFootwear, Style: StyleCasual, Color: RGB(0, 32, 96), Price: 89.99, Season: SeasonSummer, Occasions: occ(OccasionEveryday, OccasionTravel), Brand: "Summer Style"},
		{ID: "footwear_008", Name: "Gray Running Shoes", Category: CategoryFootwear, Style: StyleSporty, Color: RGB(128, 128, 128), Price: 129.99, Season: SeasonAll, Occasions: occ(OccasionSports, OccasionEveryday), Brand: "Athletic"},

		// Accessories
		{ID: "acc_001", Name: "Black Leather Belt", Category: CategoryAccessory, Style: StyleFormal, Color: RGB(0, 0, 0), Price: 49.99, Season: SeasonAll, Occasions: occ(OccasionWork, OccasionFormalEvent, OccasionEveryday), Brand: "Accessories Co"},
		{ID: "acc_002", Name: "Silver Watch", Category: CategoryAccessory, Style: StyleFormal, Color: RGB(192, 192, 192), Price: 299.99, Season: SeasonAll, Occasions: occ(OccasionWork, OccasionFormalEvent, OccasionDate), Brand: "Timepieces"},
		{ID: "acc_003", Name: "Brown Leather Wallet", Category: CategoryAccessory, Style: StyleCasual, Color: RGB(139, 69, 19), Price: 79.99, Season: SeasonAll, Occasions: occ(OccasionEveryday, OccasionWork), Brand: "Leather Goods"},
		{ID: "acc_004", Name: "Black Sunglasses", Category: CategoryAccessory, Style: StyleCasual, Color: RGB(20, 20, 20), Price: 89.99, Season: SeasonSummer, Occasions: occ(OccasionEveryday, OccasionTravel), Brand: "Sun Protection"},
		{ID: "acc_005", Name: "Navy Blue Scarf", Category: CategoryAccessory, Style: StyleCasual, Color: RGB(0, 32, 96), Price: 39.99, Season: SeasonWinter, Occasions: occ(OccasionEveryday, OccasionTravel), Brand: "Winter Co"},
		{ID: "acc_006", Name: "Gold Chain Necklace", Category: CategoryAccessory, Style: StyleStreetwear, Color: RGB(255, 215, 0), Price: 149.99, Season: SeasonAll, Occasions: occ(OccasionParty, OccasionDate), Brand: "Jewelry Co"},
		{ID: "acc_007", Name: "Beige Canvas Hat", Category: CategoryAccessory, Style: StyleCasual, Color: RGB(245, 245, 220), Price: 29.99, Season: SeasonSummer, Occasions: occ(OccasionEveryday, OccasionTravel, OccasionSports), Brand: "Outdoor Co"},
		{ID: "acc_008", Name: "Red Baseball Cap", Category: CategoryAccessory, Style: StyleSporty, Color: RGB(220, 20, 60), Price: 24.99, Season: SeasonAll, Occasions: occ(OccasionSports, OccasionEveryday), Brand: "Athletic"},
		{ID: "acc_009", Name: "Black Backpack", Category: CategoryAccessory, Style: StyleCasual, Color: RGB(0, 0, 0), Price: 79.99, Season: SeasonAll, Occasions: occ(OccasionEveryday, OccasionWork, OccasionTravel), Brand: "Travel Co"},
		{ID: "acc_010", Name: "White Pearl Earrings", Category: CategoryAccessory, Style: StyleFormal, Color: RGB(255, 255, 255), Price: 199.99, Season: SeasonAll, Occasions: occ(OccasionFormalEvent, OccasionDate), Brand: "Jewelry Co"},
	}
}
