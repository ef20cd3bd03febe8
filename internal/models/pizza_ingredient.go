package models

// PizzaIngredient binds one ingredient to one pizza with a priority.
// The pizza is referenced by id only; Ingredient is loaded on read.
type PizzaIngredient struct {
	ID           uint       `gorm:"primaryKey" json:"-"`
	PizzaID      uint       `gorm:"not null;uniqueIndex:idx_pizza_ingredient" json:"-"`
	IngredientID uint       `gorm:"not null;uniqueIndex:idx_pizza_ingredient;index" json:"-"`
	Ingredient   Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"ingredient"`
	Priority     int        `gorm:"not null" json:"priority"`
}

func (PizzaIngredient) TableName() string {
	return "pizza_ingredients"
}

// sameRecord reports whether two associations are the same row.
// Unsaved associations are matched by the ingredient they point at.
func (pi PizzaIngredient) sameRecord(other PizzaIngredient) bool {
	if pi.ID != 0 || other.ID != 0 {
		return pi.ID == other.ID
	}
	return pi.IngredientID == other.IngredientID
}
