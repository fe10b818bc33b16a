package importer

// ItemCategory tags which inventory table a sold item belongs to.
type ItemCategory int

const (
	ItemUnrecognized ItemCategory = iota
	ItemGame
	ItemConsole
	ItemAccessory
	ItemMisc
)

// ClassifyLabel splits a custom label into its inventory category and item
// id. The first byte is the category code (G/C/A/M, case-sensitive as the
// listing tool writes them); the remainder is the item id, used verbatim
// with no check that it names an existing inventory record.
func ClassifyLabel(label string) (ItemCategory, string) {
	if label == "" {
		return ItemUnrecognized, ""
	}
	rest := label[1:]
	switch label[0] {
	case 'G':
		return ItemGame, rest
	case 'C':
		return ItemConsole, rest
	case 'A':
		return ItemAccessory, rest
	case 'M':
		return ItemMisc, rest
	default:
		return ItemUnrecognized, ""
	}
}
