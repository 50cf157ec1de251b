package entities

// ShopOffer is one item for sale today
type ShopOffer struct {
	ItemID string `json:"item_id"`
	Name   string `json:"name"`
	Price  int    `json:"price"`
}

// DailyShop is the stock generated for one calendar day. Every player
// sees the same stock that day.
type DailyShop struct {
	Date   string      `json:"date"`
	Offers []ShopOffer `json:"offers"`
}

// Offer returns the offer for itemID
func (s *DailyShop) Offer(itemID string) (ShopOffer, bool) {
	for _, o := range s.Offers {
		if o.ItemID == itemID {
			return o, true
		}
	}
	return ShopOffer{}, false
}
