package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestKey_IgnoresCategory(t *testing.T) {
	a := Entry{Date: date(2025, 11, 13), Label: "Migros", Amount: decimal.RequireFromString("42.50"), Category: "Food"}
	b := Entry{Date: date(2025, 11, 13), Label: "Migros", Amount: decimal.RequireFromString("42.50"), Category: "Groceries", SubCategory: "x"}

	assert.Equal(t, a.Key(), b.Key())
}

func TestKey_IgnoresAmountFormatting(t *testing.T) {
	a := Entry{Date: date(2025, 11, 13), Label: "Migros", Amount: decimal.RequireFromString("42.5")}
	b := Entry{Date: date(2025, 11, 13), Label: "Migros", Amount: decimal.RequireFromString("42.50")}

	assert.Equal(t, a.Key(), b.Key())
}

func TestKey_SignMatters(t *testing.T) {
	a := Entry{Date: date(2025, 11, 13), Label: "Refund", Amount: decimal.RequireFromString("10.00")}
	b := Entry{Date: date(2025, 11, 13), Label: "Refund", Amount: decimal.RequireFromString("-10.00")}

	assert.NotEqual(t, a.Key(), b.Key())
}

func TestKey_SplitIncludesBothSides(t *testing.T) {
	debit := Entry{Date: date(2025, 11, 13), Label: "Duol", Amount: decimal.RequireFromString("30.00"), Split: true}
	credit := Entry{Date: date(2025, 11, 13), Label: "Duol", Credit: decimal.RequireFromString("30.00"), Split: true}

	assert.NotEqual(t, debit.Key(), credit.Key())
}

func TestKey_DifferentDates(t *testing.T) {
	a := Entry{Date: date(2025, 11, 13), Label: "Migros", Amount: decimal.RequireFromString("42.50")}
	b := Entry{Date: date(2025, 11, 14), Label: "Migros", Amount: decimal.RequireFromString("42.50")}

	assert.NotEqual(t, a.Key(), b.Key())
}
