// Package roster generates fair duty rosters: it assigns one person to every
// (date, place) slot so that the workload is spread according to an ordered
// list of ranking rules.
//
// # Quick Start
//
//	cfg, err := roster.LoadConfig("roster.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	schedule, err := roster.Generate(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, a := range schedule.Assignments {
//	    fmt.Println(a.Date, a.Place, a.Person)
//	}
//
// # How slots are filled
//
// People are created from the configured groups, named "<member> <group>".
// For every date that is not an exception the person list is shuffled once,
// then every place is filled in configured order: each candidate computes a
// rank key (one integer per sort rule) and the first candidate with the
// smallest key gets the slot. Its ledger is updated before the next slot is
// considered, so later slots see earlier choices.
//
// With filterSamePlace only people whose group is homed at the place are
// candidates; a place without such people stays unfilled.
//
// # Rules
//
//   - sortByLeastServices: fewer services overall first
//   - sortByLessServicesAtSameWeekday: fewer services on this weekday first
//   - sortByLastService: longest time since the last service first (weekly granularity)
//   - sortByMaxDistanceInGroup: group that served longest ago first
//   - sortByOwnPlace: people homed at the place first
//   - sortByDifferentPlaceServices: fewer services away from home first;
//     people homed at the place beat everyone else
//   - filterSamePlace (filter list): only people homed at the place
//
// # Reproducibility
//
// The shuffle is seeded from random.seed, or from a hash of random.seedPhrase,
// or from crypto/rand. Schedule.Seed reports the seed used; WithSeed replays
// it. Tests can pin the order completely with WithShuffler(NoShuffle).
//
// # Editing
//
// Schedule.Swap exchanges the people of two slots and keeps their ledgers in
// step, which lets the summary reflect manual corrections.
package roster
