package config_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/touchline/internal/config"
	"github.com/okian/touchline/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestLoadWorld(t *testing.T) {
	convey.Convey("Given the world loader", t, func() {
		ctx := context.Background()

		convey.Convey("When no path is given", func() {
			w, err := config.LoadWorld(ctx, "")

			convey.Convey("Then the demo world should load and validate", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(w.Leagues), convey.ShouldBeGreaterThan, 1)
				convey.So(len(w.Clubs), convey.ShouldBeGreaterThan, 10)
				convey.So(len(w.Players), convey.ShouldBeGreaterThan, 50)
				p := w.Players[0]
				convey.So(p.Attributes, convey.ShouldNotBeEmpty)
				_, ok := w.ClubByID(p.ClubID)
				convey.So(ok, convey.ShouldBeTrue)
			})
		})

		convey.Convey("When a small world file is given", func() {
			path := writeTemp(t, "world.yaml", `
leagues:
  - {id: l1, name: League One, country: Spain, tier: 1}
clubs:
  - {id: c1, name: Club One, league_id: l1, reputation: 40, philosophy: dataDriven}
players:
  - id: p1
    name: Pablo
    age: 17
    nationality: Spain
    club_id: c1
    current_ability: 90
    potential_ability: 170
    attributes: {pace: 15, vision: 12}
`)
			w, err := config.LoadWorld(ctx, path)

			convey.Convey("Then every field should be decoded", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(w.Clubs[0].Philosophy, convey.ShouldEqual, model.PhilosophyDataDriven)
				convey.So(w.Clubs[0].Reputation, convey.ShouldEqual, 40)
				convey.So(w.Players[0].PotentialAbility, convey.ShouldEqual, 170)
				convey.So(w.Players[0].Attributes["pace"], convey.ShouldEqual, 15)
				convey.So(w.PlayerCountries()["p1"], convey.ShouldEqual, "Spain")
			})
		})

		convey.Convey("When a player references an unknown club", func() {
			path := writeTemp(t, "world.yaml", `
leagues: [{id: l1, name: L, country: X, tier: 1}]
clubs: [{id: c1, name: C, league_id: l1, reputation: 10, philosophy: balanced}]
players: [{id: p1, name: P, club_id: nowhere}]
`)
			_, err := config.LoadWorld(ctx, path)

			convey.Convey("Then it should be rejected as an invalid world", func() {
				convey.So(errors.Is(err, config.ErrInvalidWorld), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the file is missing", func() {
			_, err := config.LoadWorld(ctx, "/nonexistent/world.yaml")

			convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
		})
	})

	convey.Convey("Given worlds with duplicate ids", t, func() {
		dup := model.World{
			Leagues: []model.League{{ID: "l1"}},
			Clubs: []model.Club{
				{ID: "c1", LeagueID: "l1", Philosophy: model.PhilosophyBalanced},
				{ID: "c1", LeagueID: "l1", Philosophy: model.PhilosophyBalanced},
			},
		}
		convey.So(errors.Is(config.ValidateWorld(dup), config.ErrInvalidWorld), convey.ShouldBeTrue)

		orphan := model.World{Clubs: []model.Club{{ID: "c1", LeagueID: "l9", Philosophy: model.PhilosophyBalanced}}}
		convey.So(errors.Is(config.ValidateWorld(orphan), config.ErrInvalidWorld), convey.ShouldBeTrue)
	})

	convey.Convey("Given a club with an unknown philosophy", t, func() {
		w := model.World{
			Leagues: []model.League{{ID: "l1"}},
			Clubs:   []model.Club{{ID: "c1", LeagueID: "l1", Philosophy: "moneyball"}},
		}

		convey.Convey("Then validation should reject it", func() {
			err := config.ValidateWorld(w)
			convey.So(errors.Is(err, config.ErrInvalidWorld), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldContainSubstring, "moneyball")
		})

		convey.Convey("And a known philosophy should pass", func() {
			w.Clubs[0].Philosophy = model.PhilosophyLocalFocus
			convey.So(config.ValidateWorld(w), convey.ShouldBeNil)
		})
	})

	convey.Convey("Given a world file whose club omits its philosophy", t, func() {
		path := writeTemp(t, "world.yaml", `
leagues: [{id: l1, name: L, country: England, tier: 1}]
clubs: [{id: c1, name: C, league_id: l1, reputation: 10}]
`)

		convey.Convey("Then the club should load as balanced", func() {
			w, err := config.LoadWorld(context.Background(), path)
			convey.So(err, convey.ShouldBeNil)
			convey.So(w.Clubs[0].Philosophy, convey.ShouldEqual, model.PhilosophyBalanced)
		})
	})
}
