package category

import (
	"fmt"
	"regexp"
	"strings"
)

var colorCodeRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// DefaultColorCode is used when a category has no display color.
const DefaultColorCode = "#95a5a6"

// Category is static reference data seeded at first run.
type Category struct {
	id          uint
	name        string
	description string
	colorCode   string
}

func NewCategory(name, description, colorCode string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	if len([]rune(name)) > 100 {
		return nil, fmt.Errorf("category name exceeds maximum length of 100 characters")
	}
	colorCode = strings.TrimSpace(colorCode)
	if colorCode == "" {
		colorCode = DefaultColorCode
	}
	if !colorCodeRegex.MatchString(colorCode) {
		return nil, fmt.Errorf("invalid color code: %s", colorCode)
	}

	return &Category{
		name:        name,
		description: strings.TrimSpace(description),
		colorCode:   strings.ToLower(colorCode),
	}, nil
}

func ReconstructCategory(id uint, name, description, colorCode string) *Category {
	return &Category{
		id:          id,
		name:        name,
		description: description,
		colorCode:   colorCode,
	}
}

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Category) ID() uint            { return c.id }
func (c *Category) Name() string        { return c.name }
func (c *Category) Description() string { return c.description }
func (c *Category) ColorCode() string   { return c.colorCode }
