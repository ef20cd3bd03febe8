package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// markupRatio is applied on top of the summed ingredient costs
var markupRatio = decimal.NewFromFloat(0.5)

// Pizza is the aggregate root for its ingredient associations
type Pizza struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	Name        string            `gorm:"size:255;not null" json:"name"`
	Price       decimal.Decimal   `gorm:"type:decimal(10,2);not null" json:"price"`
	Ingredients []PizzaIngredient `gorm:"foreignKey:PizzaID;constraint:OnDelete:CASCADE" json:"ingredients"`
	CreatedAt   time.Time         `json:"-"`
	UpdatedAt   time.Time         `json:"-"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

// AddIngredient appends pi to the pizza and points pi back at it.
// Nothing happens if the pizza already holds the same association.
func (p *Pizza) AddIngredient(pi *PizzaIngredient) {
	if pi == nil || p.indexOf(*pi) >= 0 {
		return
	}
	pi.PizzaID = p.ID
	p.Ingredients = append(p.Ingredients, *pi)
}

// RemoveIngredient detaches pi from the pizza and reports whether it was held.
// The back reference on pi is cleared only when it still points at this pizza.
func (p *Pizza) RemoveIngredient(pi *PizzaIngredient) bool {
	if pi == nil {
		return false
	}
	idx := p.indexOf(*pi)
	if idx < 0 {
		return false
	}
	p.Ingredients = append(p.Ingredients[:idx], p.Ingredients[idx+1:]...)
	if pi.PizzaID == p.ID {
		pi.PizzaID = 0
	}
	return true
}

// CalculatePrice sums the cost of every attached ingredient and adds half of it again.
// The stored Price is left untouched.
func (p *Pizza) CalculatePrice() decimal.Decimal {
	sum := decimal.Zero
	for _, pi := range p.Ingredients {
		sum = sum.Add(pi.Ingredient.Cost)
	}
	return sum.Add(sum.Mul(markupRatio))
}

func (p *Pizza) indexOf(pi PizzaIngredient) int {
	for i, existing := range p.Ingredients {
		if existing.sameRecord(pi) {
			return i
		}
	}
	return -1
}
