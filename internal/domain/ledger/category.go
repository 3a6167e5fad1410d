package ledger

import "fmt"

// Category represents the cash flow category for financial reporting
type Category string

const (
	// CategoryTransferOut represents fees paid for incoming players
	CategoryTransferOut Category = "TRANSFER_OUT"

	// CategoryTransferIn represents fees received for outgoing players
	CategoryTransferIn Category = "TRANSFER_IN"

	// CategoryWages represents salary payments
	CategoryWages Category = "WAGES"

	// CategoryPrizeMoney represents league and cup prize income
	CategoryPrizeMoney Category = "PRIZE_MONEY"
)

// AllCategories returns all valid categories
func AllCategories() []Category {
	return []Category{
		CategoryTransferOut,
		CategoryTransferIn,
		CategoryWages,
		CategoryPrizeMoney,
	}
}

// String returns the string representation of the Category
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the category is valid
func (c Category) IsValid() bool {
	switch c {
	case CategoryTransferOut, CategoryTransferIn, CategoryWages, CategoryPrizeMoney:
		return true
	default:
		return false
	}
}

// IsIncome returns true if the category represents income
func (c Category) IsIncome() bool {
	switch c {
	case CategoryTransferIn, CategoryPrizeMoney:
		return true
	default:
		return false
	}
}

// IsExpense returns true if the category represents an expense
func (c Category) IsExpense() bool {
	return !c.IsIncome()
}

// ParseCategory parses a string into a Category
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
