package valueobjects

import (
	"fmt"
	"strings"
)

// Item is the name of a piece of equipment brought in for repair.
// The front desk picks from a standard list but may type anything,
// so unknown names are accepted and simply flagged as non-standard.
type Item string

const (
	ItemMouse    Item = "Mouse"
	ItemKeyboard Item = "Keyboard"
	ItemCPU      Item = "CPU"
	ItemLaptop   Item = "Laptop"
	ItemDesktop  Item = "Desktop"
	ItemPrinter  Item = "Printer"
	ItemMonitor  Item = "Monitor"
	ItemOther    Item = "Other"
)

var standardItems = map[Item]bool{
	ItemMouse:    true,
	ItemKeyboard: true,
	ItemCPU:      true,
	ItemLaptop:   true,
	ItemDesktop:  true,
	ItemPrinter:  true,
	ItemMonitor:  true,
	ItemOther:    true,
}

func (i Item) String() string {
	return string(i)
}

func (i Item) IsStandard() bool {
	return standardItems[i]
}

// StandardItems returns the standard equipment list in display order.
func StandardItems() []Item {
	return []Item{
		ItemMouse,
		ItemKeyboard,
		ItemCPU,
		ItemLaptop,
		ItemDesktop,
		ItemPrinter,
		ItemMonitor,
		ItemOther,
	}
}

func NewItem(s string) (Item, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) == 0 {
		return "", fmt.Errorf("item name cannot be empty")
	}
	if len(trimmed) > 100 {
		return "", fmt.Errorf("item name exceeds maximum length of 100 characters")
	}
	return Item(trimmed), nil
}
