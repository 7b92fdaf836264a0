package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchema(t *testing.T) {
	s := DefaultSchema()
	assert.Equal(t, []string{"date", "amount", "category", "description"}, s.Columns)
	assert.Equal(t, "02-01-2006", s.DateFormat)

	// Callers get their own copy.
	s.Columns[0] = "when"
	header := s.Header()
	header[1] = "value"
	assert.Equal(t, "date", DefaultSchema().Columns[0])
	assert.Equal(t, "when", s.Columns[0])
	assert.Equal(t, "amount", s.Columns[1])
}

func TestSchema_MatchesHeader(t *testing.T) {
	s := DefaultSchema()
	cases := []struct {
		row []string
		ok  bool
	}{
		{[]string{"date", "amount", "category", "description"}, true},
		{[]string{"\ufeffdate", "amount", "category", "description"}, true},
		{[]string{" date", "amount ", "category", "description"}, true},
		{[]string{"date", "amount", "category"}, false},
		{[]string{"date", "amount", "description", "category"}, false},
		{[]string{"date", "amount", "category", "description", "extra"}, false},
		{nil, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, s.MatchesHeader(c.row), "%q", c.row)
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in  string
		ok  bool
		out time.Time
	}{
		{"05-01-2024", true, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"31-12-1999", true, time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC)},
		{" 29-02-2024 ", true, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"29-02-2023", false, time.Time{}},
		{"5-1-2024", false, time.Time{}},
		{"2024-01-05", false, time.Time{}},
		{"01/05/2024", false, time.Time{}},
		{"", false, time.Time{}},
	}

	for _, c := range cases {
		got, err := ParseDate(c.in)
		if !c.ok {
			assert.ErrorIs(t, err, ErrParse, c.in)
			continue
		}
		require.NoError(t, err, c.in)
		assert.Equal(t, c.out, got)
		assert.Equal(t, strings.TrimSpace(c.in), FormatDate(got))
	}
}

func TestSchema_ParseDate_Strict(t *testing.T) {
	s := DefaultSchema()
	for _, in := range []string{" 05-01-2024", "05-01-2024 ", "\t05-01-2024"} {
		_, err := s.ParseDate(in)
		assert.ErrorIs(t, err, ErrParse, "%q", in)
	}

	got, err := s.ParseDate("05-01-2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), got)
}

func TestFormatDate_ZeroPadded(t *testing.T) {
	assert.Equal(t, "05-01-2024", FormatDate(time.Date(2024, 1, 5, 17, 30, 0, 0, time.UTC)))
	assert.Equal(t, "05-01-2024", DefaultSchema().FormatDate(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)))
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	got := DateOf(time.Date(2024, 3, 1, 23, 59, 59, 999, loc))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		ok  bool
		out string
	}{
		{"1500", true, "1500"},
		{"12.34", true, "12.34"},
		{"12,34", true, "12.34"},
		{" 7 ", true, "7"},
		{"0", true, "0"},
		{"-1", false, ""},
		{"banana", false, ""},
		{"1..2", false, ""},
		{"", false, ""},
	}

	for _, c := range cases {
		got, err := ParseAmount(c.in)
		if !c.ok {
			assert.ErrorIs(t, err, ErrValidation, c.in)
			continue
		}
		require.NoError(t, err, c.in)
		assert.True(t, decimal.RequireFromString(c.out).Equal(got), "%q: got %s", c.in, got)
	}
}

func TestParseCategory(t *testing.T) {
	cases := map[string]Category{
		"I":          CategoryIncome,
		"i":          CategoryIncome,
		" e ":        CategoryExpense,
		"E":          CategoryExpense,
		"Income":     CategoryIncome,
		"Expense":    CategoryExpense,
		" Groceries": "Groceries",
	}
	for in, want := range cases {
		got, err := ParseCategory(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseCategory("   ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseDescription(t *testing.T) {
	cases := map[string]string{
		"":              "",
		"Salary":        "Salary",
		"a\r\nb":        "a\nb",
		"a\rb":          "a\nb",
		"a\nb\r\n\r\nc": "a\nb\n\nc",
	}
	for in, want := range cases {
		got := ParseDescription(in)
		assert.Equal(t, want, got, "%q", in)
		assert.NoError(t, Transaction{Date: time.Now(), Category: "Other", Description: got}.Validate())
	}
}

func TestCategory_IsReserved(t *testing.T) {
	assert.True(t, CategoryIncome.IsReserved())
	assert.True(t, CategoryExpense.IsReserved())
	assert.False(t, Category("income").IsReserved())
	assert.False(t, Category("Other").IsReserved())
}

func TestTransaction_Validate(t *testing.T) {
	valid := Transaction{
		Date:     time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.NewFromInt(10),
		Category: "Other",
	}
	assert.NoError(t, valid.Validate())

	zeroAmount := valid
	zeroAmount.Amount = decimal.Zero
	assert.NoError(t, zeroAmount.Validate())

	noDate := valid
	noDate.Date = time.Time{}
	assert.ErrorIs(t, noDate.Validate(), ErrValidation)

	negative := valid
	negative.Amount = decimal.NewFromInt(-1)
	assert.ErrorIs(t, negative.Validate(), ErrValidation)

	noCategory := valid
	noCategory.Category = ""
	assert.ErrorIs(t, noCategory.Validate(), ErrValidation)

	carriageReturn := valid
	carriageReturn.Description = "line\r\nbreak"
	assert.ErrorIs(t, carriageReturn.Validate(), ErrValidation)
}

func TestErrSchemaIsParseError(t *testing.T) {
	assert.ErrorIs(t, ErrSchema, ErrParse)
	assert.NotErrorIs(t, ErrParse, ErrSchema)
}
