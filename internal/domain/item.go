package domain

// Rarity represents the rarity tier of an item
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// PowerMultiplier returns the stat multiplier applied to generated items of this rarity
func (r Rarity) PowerMultiplier() int {
	switch r {
	case RarityLegendary:
		return 4
	case RarityRare:
		return 2
	default:
		return 1
	}
}

// Item slot types. Exactly one item per slot can be equipped at a time.
const (
	SlotBoots  = "boots"
	SlotShirt  = "shirt"
	SlotWeapon = "weapon"
	SlotGloves = "gloves"
)

// ItemSlots is the fixed vocabulary of equipment slots
var ItemSlots = []string{SlotBoots, SlotShirt, SlotWeapon, SlotGloves}

// Item represents an equippable object owned by a player.
// Ownership never transfers; an item is created for one player and
// destroyed when sold.
type Item struct {
	ID       string `json:"item_id" db:"item_id"`
	Name     string `json:"name" db:"item_name"`
	Slot     string `json:"slot" db:"slot"`
	Power    int    `json:"power" db:"power"`
	Value    int    `json:"value" db:"value"`
	Rarity   Rarity `json:"rarity" db:"rarity"`
	Equipped bool   `json:"equipped" db:"equipped"`
	PlayerID string `json:"player_id" db:"player_id"`
}
