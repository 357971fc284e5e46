package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDate(t *testing.T) {
	t.Run("weekday", func(t *testing.T) {
		require.Equal(t, time.Wednesday, NewDate(2023, 9, 6).Weekday())
		require.Equal(t, time.Monday, NewDate(2025, 9, 1).Weekday())
	})

	t.Run("days from CE", func(t *testing.T) {
		require.Equal(t, int64(1), NewDate(1, 1, 1).DaysFromCE())
		require.Equal(t, int64(719163), NewDate(1970, 1, 1).DaysFromCE())
		require.Equal(t, int64(719162), NewDate(1969, 12, 31).DaysFromCE())
		require.Equal(t, NewDate(2025, 9, 4).DaysFromCE()+7, NewDate(2025, 9, 11).DaysFromCE())
	})

	t.Run("add days normalizes", func(t *testing.T) {
		require.Equal(t, NewDate(2025, 3, 1), NewDate(2025, 2, 28).AddDays(1))
		require.Equal(t, NewDate(2024, 12, 31), NewDate(2025, 1, 1).AddDays(-1))
	})

	t.Run("compare", func(t *testing.T) {
		a := NewDate(2025, 1, 31)
		b := NewDate(2025, 2, 1)

		require.True(t, a.Before(b))
		require.True(t, b.After(a))
		require.Equal(t, 0, a.Compare(NewDate(2025, 1, 31)))
		require.Equal(t, -1, NewDate(2024, 12, 31).Compare(a))
	})

	t.Run("usable as map key", func(t *testing.T) {
		m := map[Date]int{NewDate(2025, 9, 1): 1}
		m[DateOf(time.Date(2025, 9, 1, 15, 30, 0, 0, time.UTC))]++

		require.Equal(t, 2, m[NewDate(2025, 9, 1)])
	})

	t.Run("zero value", func(t *testing.T) {
		require.True(t, Date{}.IsZero())
		require.False(t, NewDate(2025, 1, 1).IsZero())
	})
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-12-24")
	require.NoError(t, err)
	require.Equal(t, NewDate(2025, 12, 24), d)
	require.Equal(t, "2025-12-24", d.String())

	_, err = ParseDate("24.12.2025")
	require.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate("2025-02-30")
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestDateEncoding(t *testing.T) {
	t.Run("yaml unquoted and quoted", func(t *testing.T) {
		var v struct {
			From  Date   `yaml:"from"`
			Dates []Date `yaml:"dates"`
		}
		err := yaml.Unmarshal([]byte("from: 2025-01-01\ndates: [\"2025-02-10\", 2025-12-24]\n"), &v)

		require.NoError(t, err)
		require.Equal(t, NewDate(2025, 1, 1), v.From)
		require.Equal(t, []Date{NewDate(2025, 2, 10), NewDate(2025, 12, 24)}, v.Dates)
	})

	t.Run("json round trip keeps text form", func(t *testing.T) {
		out, err := json.Marshal(Slot{Date: NewDate(2025, 9, 6), Place: "A"})
		require.NoError(t, err)
		require.JSONEq(t, `{"date":"2025-09-06","place":"A"}`, string(out))

		var s Slot
		require.NoError(t, json.Unmarshal(out, &s))
		require.Equal(t, NewDate(2025, 9, 6), s.Date)
	})
}
