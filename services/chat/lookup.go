package chat

// Item is the canonical item shape consumed by a conversation. Sources with
// differing field layouts are normalized into it at the lookup boundary.
type Item struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// ItemSource is a read accessor over a collection of items, such as the
// uploads a user has listed. Implementations absorb their own failures and
// report a miss instead.
type ItemSource interface {
	ItemByID(id string) (Item, bool)
}

// fallbackCatalog is the built-in sample inventory consulted when no source
// knows the item.
var fallbackCatalog = []Item{
	{ID: "1", Title: "Plastic Bottle", Description: "Recyclable plastic bottle.", ImageURL: "/assets/bottle.jpg"},
	{ID: "2", Title: "Cardboard Box", Description: "Old but usable box.", ImageURL: "/assets/box.jpg"},
}

// Lookup resolves item display data from the registered sources, in order,
// then from the fallback catalog. It never mutates either.
type Lookup struct {
	sources []ItemSource
}

func NewLookup(sources ...ItemSource) *Lookup {
	return &Lookup{sources: sources}
}

func (l *Lookup) Resolve(itemID string) (Item, bool) {
	if l != nil {
		for _, source := range l.sources {
			if item, ok := source.ItemByID(itemID); ok {
				return item, true
			}
		}
	}
	for _, item := range fallbackCatalog {
		if item.ID == itemID {
			return item, true
		}
	}
	return Item{}, false
}
