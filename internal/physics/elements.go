package physics

import (
	"fmt"
	"strings"
)

// Element is the chemical symbol of one of the building blocks a planet can be assembled from.
type Element string

const (
	Hydrogen   Element = "H"
	Helium     Element = "He"
	Oxygen     Element = "O"
	Carbon     Element = "C"
	Silicon    Element = "Si"
	Iron       Element = "Fe"
	Magnesium  Element = "Mg"
	Sulfur     Element = "S"
	Nitrogen   Element = "N"
	Aluminum   Element = "Al"
	Calcium    Element = "Ca"
	Potassium  Element = "K"
	Phosphorus Element = "P"
	Nickel     Element = "Ni"
	Argon      Element = "Ar"
)

type ElementCategory string

const (
	CategoryGas       ElementCategory = "gas"
	CategoryMetal     ElementCategory = "metal"
	CategoryNonmetal  ElementCategory = "nonmetal"
	CategoryMetalloid ElementCategory = "metalloid"
)

// ElementInfo describes an element of the catalog.
type ElementInfo struct {
	Symbol       Element         `json:"symbol"`
	Name         string          `json:"name"`
	AtomicNumber int             `json:"atomic_number"`
	Category     ElementCategory `json:"category"`
	Color        string          `json:"color"`
}

var elementCatalog = []ElementInfo{
	{Hydrogen, "Hydrogen", 1, CategoryGas, "#B0C4DE"},
	{Helium, "Helium", 2, CategoryGas, "#FFD700"},
	{Oxygen, "Oxygen", 8, CategoryNonmetal, "#87CEEB"},
	{Carbon, "Carbon", 6, CategoryNonmetal, "#4169E1"},
	{Silicon, "Silicon", 14, CategoryMetalloid, "#8B7355"},
	{Iron, "Iron", 26, CategoryMetal, "#B87333"},
	{Magnesium, "Magnesium", 12, CategoryMetal, "#90EE90"},
	{Sulfur, "Sulfur", 16, CategoryNonmetal, "#FFFF00"},
	{Nitrogen, "Nitrogen", 7, CategoryGas, "#ADD8E6"},
	{Aluminum, "Aluminum", 13, CategoryMetal, "#D3D3D3"},
	{Calcium, "Calcium", 20, CategoryMetal, "#FFE4B5"},
	{Argon, "Argon", 18, CategoryGas, "#E0B0FF"},
	{Potassium, "Potassium", 19, CategoryMetal, "#DDA0DD"},
	{Phosphorus, "Phosphorus", 15, CategoryNonmetal, "#FF6347"},
	{Nickel, "Nickel", 28, CategoryMetal, "#C0C0C0"},
}

// Elements returns a copy of the element catalog in display order.
func Elements() []ElementInfo {
	out := make([]ElementInfo, len(elementCatalog))
	copy(out, elementCatalog)
	return out
}

// ParseElement resolves a symbol, ignoring surrounding whitespace. Symbols are case-sensitive
// apart from the first letter, so "he" and "He" both resolve to helium.
func ParseElement(s string) (Element, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty element symbol")
	}
	normalized := strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	for _, info := range elementCatalog {
		if string(info.Symbol) == normalized {
			return info.Symbol, nil
		}
	}
	return "", fmt.Errorf("unknown element symbol %q", s)
}

func (e Element) Valid() bool {
	for _, info := range elementCatalog {
		if info.Symbol == e {
			return true
		}
	}
	return false
}
