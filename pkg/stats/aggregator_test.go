package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/takimet-io/takimet/pkg/model"
)

func TestAggregate_EmptyInput(t *testing.T) {
	dashboard := Aggregate(nil, nil, time.Now())

	assert.Equal(t, 0, dashboard.TotalEvents)
	assert.Equal(t, 0, dashboard.TotalRSVPs)
	assert.Equal(t, "--", dashboard.PeakHour.Range)
	assert.Equal(t, "No events", dashboard.MostPopularEvent.Title)
	assert.Equal(t, "--", dashboard.TrendingCategory)
	assert.Zero(t, dashboard.SuccessRate)
	assert.Zero(t, dashboard.GrowthRate)
	assert.Empty(t, dashboard.RecentEvents)
}

func TestAggregate_PeakHour(t *testing.T) {
	events := []*model.Event{
		eventAt(1, 9),
		eventAt(2, 9),
		eventAt(3, 14),
	}

	dashboard := Aggregate(events, nil, time.Now())

	assert.Equal(t, 9, dashboard.PeakHour.Hour)
	assert.Equal(t, 2, dashboard.PeakHour.Count)
	assert.Equal(t, "09:00 - 10:00", dashboard.PeakHour.Range)
}

func TestAggregate_PeakHour_TieGoesToSmallestHour(t *testing.T) {
	events := []*model.Event{
		eventAt(1, 14),
		eventAt(2, 9),
	}

	dashboard := Aggregate(events, nil, time.Now())

	assert.Equal(t, 9, dashboard.PeakHour.Hour)
}

func TestAggregate_MostPopularEvent(t *testing.T) {
	events := []*model.Event{
		{ID: 1, Title: "Small meetup"},
		{ID: 2, Title: "Big concert"},
	}
	rsvps := []*model.RSVP{
		{EventID: 1, Status: model.RSVPAttending},
		{EventID: 2, Status: model.RSVPAttending},
		{EventID: 2, Status: "Attending"},
		{EventID: 2, Status: model.RSVPInterested},
	}

	dashboard := Aggregate(events, rsvps, time.Now())

	assert.Equal(t, "Big concert", dashboard.MostPopularEvent.Title)
	assert.Equal(t, 2, dashboard.MostPopularEvent.Attending)
}

func TestAggregate_MostPopularEvent_TieGoesToLowestId(t *testing.T) {
	events := []*model.Event{
		{ID: 5, Title: "Later"},
		{ID: 2, Title: "Earlier"},
	}
	rsvps := []*model.RSVP{
		{EventID: 5, Status: model.RSVPAttending},
		{EventID: 2, Status: model.RSVPAttending},
	}

	dashboard := Aggregate(events, rsvps, time.Now())

	assert.Equal(t, uint(2), dashboard.MostPopularEvent.EventID)
}

func TestAggregate_TrendingCategory(t *testing.T) {
	t.Run("explicit tags win over keywords", func(t *testing.T) {
		events := []*model.Event{
			{ID: 1, Title: "concert night", Categories: []model.Category{{Name: "Tech"}}},
			{ID: 2, Categories: []model.Category{{Name: "Tech"}}},
			{ID: 3, Categories: []model.Category{{Name: "Music"}}},
		}

		dashboard := Aggregate(events, nil, time.Now())

		assert.Equal(t, "Tech", dashboard.TrendingCategory)
	})

	t.Run("keyword match on title and description", func(t *testing.T) {
		events := []*model.Event{
			{ID: 1, Title: "Hackathon Tirana", Description: "48h of coding"},
			{ID: 2, Title: "Summer jam", Description: "open air concert"},
			{ID: 3, Title: "AI conference", Description: "tech talks"},
		}

		dashboard := Aggregate(events, nil, time.Now())

		assert.Equal(t, "Tech", dashboard.TrendingCategory)
	})

	t.Run("no match falls into General", func(t *testing.T) {
		events := []*model.Event{
			{ID: 1, Title: "Mbrëmje vjeshte", Description: "diçka ndryshe"},
		}

		dashboard := Aggregate(events, nil, time.Now())

		assert.Equal(t, "General", dashboard.TrendingCategory)
	})

	t.Run("tie goes to lexicographically smallest", func(t *testing.T) {
		events := []*model.Event{
			{ID: 1, Categories: []model.Category{{Name: "Music"}}},
			{ID: 2, Categories: []model.Category{{Name: "Business"}}},
		}

		dashboard := Aggregate(events, nil, time.Now())

		assert.Equal(t, "Business", dashboard.TrendingCategory)
	})
}

func TestAggregate_SuccessRate(t *testing.T) {
	events := []*model.Event{
		{ID: 1, Title: "A"},
		{ID: 2, Title: "B"},
	}
	var rsvps []*model.RSVP
	for i := 0; i < 25; i++ {
		rsvps = append(rsvps, &model.RSVP{EventID: 1, Status: model.RSVPAttending})
	}
	for i := 0; i < 5; i++ {
		rsvps = append(rsvps, &model.RSVP{EventID: 2, Status: model.RSVPAttending})
	}

	dashboard := Aggregate(events, rsvps, time.Now())

	assert.InDelta(t, 50.0, dashboard.SuccessRate, 0.001)
}

func TestAggregate_SuccessRate_ThresholdIsExclusive(t *testing.T) {
	events := []*model.Event{{ID: 1, Title: "A"}}
	var rsvps []*model.RSVP
	for i := 0; i < attendingThreshold; i++ {
		rsvps = append(rsvps, &model.RSVP{EventID: 1, Status: model.RSVPAttending})
	}

	dashboard := Aggregate(events, rsvps, time.Now())

	assert.Zero(t, dashboard.SuccessRate)
}

func TestAggregate_GrowthRate(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	events := []*model.Event{
		{ID: 1, StartTime: now.Add(-10 * 24 * time.Hour)},
		{ID: 2, StartTime: now.Add(-40 * 24 * time.Hour)},
		{ID: 3, StartTime: now.Add(24 * time.Hour)},
		{ID: 4, StartTime: now.Add(-29 * 24 * time.Hour)},
	}

	dashboard := Aggregate(events, nil, now)

	assert.InDelta(t, 50.0, dashboard.GrowthRate, 0.001)
}

func TestAggregate_RecentEvents(t *testing.T) {
	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	events := []*model.Event{
		{ID: 1, StartTime: base.Add(1 * time.Hour)},
		{ID: 2, StartTime: base.Add(4 * time.Hour)},
		{ID: 3, StartTime: base.Add(2 * time.Hour)},
		{ID: 4, StartTime: base.Add(3 * time.Hour)},
	}

	dashboard := Aggregate(events, nil, base)

	recent := dashboard.RecentEvents
	assert.Len(t, recent, 3)
	assert.Equal(t, uint(2), recent[0].ID)
	assert.Equal(t, uint(4), recent[1].ID)
	assert.Equal(t, uint(3), recent[2].ID)
}

func eventAt(id uint, hour int) *model.Event {
	return &model.Event{
		ID:        id,
		Title:     "Event",
		StartTime: time.Date(2026, 9, 1, hour, 0, 0, 0, time.UTC),
	}
}
