package testing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Thomblin/duty-roster/ledger"
	"github.com/Thomblin/duty-roster/types"
)

// fakeTB records failures instead of failing the enclosing test.
type fakeTB struct {
	testing.TB
	errors int
}

func (f *fakeTB) Helper() {}

func (f *fakeTB) Errorf(string, ...any) {
	f.errors++
}

func fixture() ([]types.Assignment, []*ledger.Person) {
	group := ledger.NewGroupState()
	alice := ledger.NewPerson("Alice Maier", "A", group)
	charlie := ledger.NewPerson("Charlie Doe", "B", ledger.NewGroupState())

	assignments := []types.Assignment{
		{Date: types.NewDate(2025, 9, 1), Place: "A", Person: "Alice Maier"},
		{Date: types.NewDate(2025, 9, 1), Place: "B", Person: "Charlie Doe"},
		{Date: types.NewDate(2025, 9, 3), Place: "A", Person: "Charlie Doe"},
	}
	for _, a := range assignments {
		if a.Person == alice.Name() {
			alice.RegisterService(a.Date, a.Place)
		} else {
			charlie.RegisterService(a.Date, a.Place)
		}
	}

	return assignments, []*ledger.Person{alice, charlie}
}

func TestAssertConservation(t *testing.T) {
	t.Run("consistent run passes", func(t *testing.T) {
		assignments, people := fixture()
		tb := &fakeTB{}

		AssertConservation(tb, assignments, people)
		require.Zero(t, tb.errors)
	})

	t.Run("missing registration fails", func(t *testing.T) {
		assignments, people := fixture()
		assignments = append(assignments, types.Assignment{
			Date: types.NewDate(2025, 9, 3), Place: "B", Person: "Alice Maier",
		})
		tb := &fakeTB{}

		AssertConservation(tb, assignments, people)
		require.NotZero(t, tb.errors)
	})
}

func TestAssertNoExceptionDates(t *testing.T) {
	assignments, _ := fixture()

	tb := &fakeTB{}
	AssertNoExceptionDates(tb, assignments, []types.Date{types.NewDate(2025, 12, 24)})
	require.Zero(t, tb.errors)

	tb = &fakeTB{}
	AssertNoExceptionDates(tb, assignments, []types.Date{types.NewDate(2025, 9, 3)})
	require.Equal(t, 1, tb.errors)
}

func TestAssertHomePlaces(t *testing.T) {
	assignments, people := fixture()

	tb := &fakeTB{}
	AssertHomePlaces(tb, assignments[:2], people)
	require.Zero(t, tb.errors)

	tb = &fakeTB{}
	AssertHomePlaces(tb, assignments, people)
	require.Equal(t, 1, tb.errors)

	tb = &fakeTB{}
	AssertHomePlaces(tb, []types.Assignment{{Person: "Nobody"}}, people)
	require.Equal(t, 1, tb.errors)
}

func TestNewTestLogger(t *testing.T) {
	log := NewTestLogger(t)
	require.NotNil(t, log)
	log.Info("schedule generated", "assignments", 3)
}
