// Package model defines domain types for dreamcalc goals, plans and history.
package model

import "math"

// Goal is a predefined savings target shown in the goal picker.
type Goal struct {
	Type      string  `json:"type" yaml:"type"`
	Icon      string  `json:"icon" yaml:"icon"`
	Name      string  `json:"name" yaml:"name"`
	Hint      string  `json:"hint" yaml:"hint"`
	BasePrice float64 `json:"basePrice" yaml:"base_price"`
}

// CustomGoalType is the preset that accepts a free-text name.
const CustomGoalType = "custom"

// Goals is the fixed preset catalog. The last entry is the custom goal.
var Goals = []Goal{
	{Type: "phone", Icon: "📱", Name: "Phone", Hint: "from 500", BasePrice: 1500},
	{Type: "laptop", Icon: "💻", Name: "Laptop", Hint: "from 2,000", BasePrice: 5000},
	{Type: "tablet", Icon: "📱", Name: "Tablet", Hint: "from 1,000", BasePrice: 2500},
	{Type: "bike", Icon: "🚲", Name: "Bicycle", Hint: "from 1,500", BasePrice: 3000},
	{Type: "motorcycle", Icon: "🏍️", Name: "Motorcycle", Hint: "from 10,000", BasePrice: 20000},
	{Type: "car", Icon: "🚗", Name: "Car", Hint: "from 50,000", BasePrice: 100000},
	{Type: "apartment", Icon: "🏢", Name: "Apartment", Hint: "from 200,000", BasePrice: 300000},
	{Type: "house", Icon: "🏠", Name: "House", Hint: "from 500,000", BasePrice: 800000},
	{Type: "land", Icon: "🌳", Name: "Land plot", Hint: "from 100,000", BasePrice: 150000},
	{Type: "education", Icon: "🎓", Name: "Education", Hint: "courses/university", BasePrice: 50000},
	{Type: "travel", Icon: "✈️", Name: "Travel", Hint: "tour/vacation", BasePrice: 30000},
	{Type: CustomGoalType, Icon: "✨", Name: "Other", Hint: "your own goal", BasePrice: 50000},
}

// GoalByType returns the preset with the given type, or the custom preset
// when the type is unknown.
func GoalByType(goalType string) Goal {
	for _, g := range Goals {
		if g.Type == goalType {
			return g
		}
	}
	return Goals[len(Goals)-1]
}

// IsCustom reports whether the goal takes a user-supplied name.
func (g Goal) IsCustom() bool {
	return g.Type == CustomGoalType
}

// Suggested returns the autofill input for a goal: the base price, 20% of it
// already saved and 5% of it put aside every month.
func (g Goal) Suggested() PlanInput {
	if g.BasePrice <= 0 {
		return PlanInput{}
	}
	return PlanInput{
		TotalCost:     g.BasePrice,
		InitialAmount: math.Floor(g.BasePrice * 0.2),
		MonthlySave:   math.Floor(g.BasePrice * 0.05),
	}
}
