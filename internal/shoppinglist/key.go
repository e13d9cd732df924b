package shoppinglist

import "strings"

// keySeparator joins the name and unit halves of a merge key. Existing
// data uses "-", so it stays, even though an ingredient name can contain
// the same character. The display name and unit are therefore carried on
// the item itself and never re-derived by splitting the key.
const keySeparator = "-"

// MergeKey is the identity under which two ingredient entries count as
// the same purchasable item: equal name and equal unit, both compared
// case-insensitively. There is no conversion between units; "g" and "kg"
// are different items.
func MergeKey(name, unit string) string {
	return strings.ToLower(name) + keySeparator + strings.ToLower(unit)
}
