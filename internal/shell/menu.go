package shell

// Anchor identifies the UI element a contextual menu is positioned against.
// The zero value is not a valid anchor.
type Anchor string

// MenuState is either MenuClosed or MenuOpen. Presence of an anchor is the
// only record of menu visibility.
type MenuState interface {
	menuState()
}

type MenuClosed struct{}

type MenuOpen struct {
	Anchor Anchor
}

func (MenuClosed) menuState() {}
func (MenuOpen) menuState()   {}

// ItemID names an entry in the contextual menu.
type ItemID string

const (
	ItemAddProduct ItemID = "add-product"
	ItemAddAddress ItemID = "add-address"
	ItemLogout     ItemID = "logout"
)

type MenuItem struct {
	ID    ItemID
	Label string
}

var (
	addProductItem = MenuItem{ID: ItemAddProduct, Label: "Add Product"}
	addAddressItem = MenuItem{ID: ItemAddAddress, Label: "Add Address"}
	logoutItem     = MenuItem{ID: ItemLogout, Label: "Logout"}
)

// MenuItems returns the actions offered to role, in display order.
func MenuItems(role Role) []MenuItem {
	switch role.(type) {
	case Admin:
		return []MenuItem{addProductItem, logoutItem}
	case User:
		return []MenuItem{addAddressItem, logoutItem}
	default:
		return []MenuItem{logoutItem}
	}
}

func hasItem(items []MenuItem, id ItemID) bool {
	for _, it := range items {
		if it.ID == id {
			return true
		}
	}
	return false
}
