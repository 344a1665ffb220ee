package season

import (
	"math"
	"testing"

	"github.com/marquee-cli/marquee/catalog"
	. "github.com/smartystreets/goconvey/convey"
)

func numbers(episodes []catalog.Episode) []int {
	out := make([]int, len(episodes))
	for i, e := range episodes {
		out[i] = e.Number
	}
	return out
}

func TestOrganize(t *testing.T) {
	Convey("Given no episodes", t, func() {
		seasons := Organize(nil)

		Convey("The index is empty", func() {
			So(seasons.Index(), ShouldBeEmpty)
			So(seasons.Len(), ShouldEqual, 0)
		})

		Convey("Any season is empty", func() {
			So(seasons.Episodes(1), ShouldBeEmpty)
		})
	})

	Convey("Given episode numbers at the edges of the int range", t, func() {
		seasons := Organize([]catalog.Episode{
			{Season: 1, Number: math.MaxInt},
			{Season: 1, Number: -2},
			{Season: 1, Number: 5},
			{Season: 1, Number: math.MinInt},
		})

		Convey("They are still ordered by number", func() {
			So(numbers(seasons.Episodes(1)), ShouldResemble, []int{math.MinInt, -2, 5, math.MaxInt})
		})
	})

	Convey("Given an episode without a season and one in season 1", t, func() {
		seasons := Organize([]catalog.Episode{
			{Number: 3},
			{Season: 1, Number: 1},
		})

		Convey("Both land in season 1, ordered by number", func() {
			So(seasons.Index(), ShouldResemble, []int{1})
			So(numbers(seasons.Episodes(1)), ShouldResemble, []int{1, 3})
		})
	})

	Convey("Given episodes spread over unordered seasons", t, func() {
		seasons := Organize([]catalog.Episode{
			{Season: 3, Number: 2},
			{Season: 1, Number: 5},
			{Season: 3, Number: 1},
			{Season: 2, Number: 1},
			{Season: 1, Number: 4},
		})

		Convey("The index is sorted ascending", func() {
			So(seasons.Index(), ShouldResemble, []int{1, 2, 3})
		})

		Convey("Each season is sorted by number", func() {
			So(numbers(seasons.Episodes(1)), ShouldResemble, []int{4, 5})
			So(numbers(seasons.Episodes(3)), ShouldResemble, []int{1, 2})
		})

		Convey("Every input episode appears in exactly one group", func() {
			total := 0
			for _, n := range seasons.Index() {
				total += len(seasons.Episodes(n))
			}
			So(total, ShouldEqual, 5)
		})

		Convey("Unknown seasons are empty, not errors", func() {
			So(seasons.Has(7), ShouldBeFalse)
			So(seasons.Episodes(7), ShouldBeEmpty)
		})

		Convey("Episodes can be looked up by season and number", func() {
			e, ok := seasons.Find(3, 2)
			So(ok, ShouldBeTrue)
			So(e.Number, ShouldEqual, 2)

			_, ok = seasons.Find(2, 9)
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Given duplicate episode numbers", t, func() {
		seasons := Organize([]catalog.Episode{
			{Number: 2, Name: "first two"},
			{Number: 1, Name: "one"},
			{Number: 2, Name: "second two"},
		})

		Convey("They keep their input order", func() {
			names := []string{}
			for _, e := range seasons.Episodes(1) {
				names = append(names, e.Name)
			}
			So(names, ShouldResemble, []string{"one", "first two", "second two"})
		})
	})

	Convey("Mutating the returned groups does not affect the result", t, func() {
		seasons := Organize([]catalog.Episode{{Number: 1}})
		episodes := seasons.Episodes(1)
		episodes[0].Number = 99
		So(seasons.Episodes(1)[0].Number, ShouldEqual, 1)
	})
}
