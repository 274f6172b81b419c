package stats

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/takimet-io/takimet/pkg/model"
)

// attendingThreshold is the attending-RSVP count an event has to exceed to
// count as successful.
const attendingThreshold = 20

// growthWindow is the trailing window used for the growth rate.
const growthWindow = 30 * 24 * time.Hour

const recentEventCount = 3

// Dashboard is the derived statistics view. It is computed fresh from events
// and RSVPs on every request and never persisted.
// swagger:model
type Dashboard struct {
	TotalEvents      int            `json:"totalEvents"`
	TotalRSVPs       int            `json:"totalRsvps"`
	PeakHour         PeakHour       `json:"peakHour"`
	MostPopularEvent MostPopular    `json:"mostPopularEvent"`
	TrendingCategory string         `json:"trendingCategory"`
	SuccessRate      float64        `json:"successRate"`
	GrowthRate       float64        `json:"growthRate"`
	RecentEvents     []*model.Event `json:"recentEvents"`
}

type PeakHour struct {
	Range string `json:"range"`
	Hour  int    `json:"hour"`
	Count int    `json:"count"`
}

type MostPopular struct {
	EventID   uint   `json:"eventId,omitempty"`
	Title     string `json:"title"`
	Attending int    `json:"attending"`
}

// categoryKeyword maps a lowercase keyword found in an event's title or
// description to one of the fixed categories. Only consulted for events
// without explicit category tags.
type categoryKeyword struct {
	keyword  string
	category string
}

var categoryKeywords = []categoryKeyword{
	{"concert", "Music"},
	{"music", "Music"},
	{"muzik", "Music"},
	{"festival", "Music"},
	{"dj", "Music"},
	{"tech", "Tech"},
	{"hackathon", "Tech"},
	{"software", "Tech"},
	{"coding", "Tech"},
	{"business", "Business"},
	{"startup", "Business"},
	{"networking", "Business"},
	{"conference", "Business"},
	{"sport", "Sports"},
	{"marathon", "Sports"},
	{"football", "Sports"},
	{"basketball", "Sports"},
	{"food", "Food & Drink"},
	{"wine", "Food & Drink"},
	{"culinary", "Food & Drink"},
	{"drink", "Food & Drink"},
	{"art", "Art & Culture"},
	{"culture", "Art & Culture"},
	{"kultur", "Art & Culture"},
	{"theatre", "Art & Culture"},
	{"exhibition", "Art & Culture"},
	{"workshop", "Education"},
	{"training", "Education"},
	{"seminar", "Education"},
	{"education", "Education"},
	{"health", "Health"},
	{"yoga", "Health"},
	{"wellness", "Health"},
	{"fitness", "Health"},
}

// Aggregate derives the dashboard from the full event and RSVP sets. It is a
// pure function; now is passed in so the growth window is testable. All
// tie-breaks are deterministic: smallest hour, lowest event id,
// lexicographically smallest category name.
func Aggregate(events []*model.Event, rsvps []*model.RSVP, now time.Time) Dashboard {
	if len(events) == 0 {
		return Dashboard{
			PeakHour:         PeakHour{Range: "--"},
			MostPopularEvent: MostPopular{Title: "No events"},
			TrendingCategory: "--",
			RecentEvents:     []*model.Event{},
		}
	}

	return Dashboard{
		TotalEvents:      len(events),
		TotalRSVPs:       len(rsvps),
		PeakHour:         peakHour(events),
		MostPopularEvent: mostPopular(events, rsvps),
		TrendingCategory: trendingCategory(events),
		SuccessRate:      successRate(events, rsvps),
		GrowthRate:       growthRate(events, now),
		RecentEvents:     recentEvents(events),
	}
}

func peakHour(events []*model.Event) PeakHour {
	counts := map[int]int{}
	for _, event := range events {
		counts[event.StartTime.Hour()]++
	}

	best, bestCount := 0, -1
	for hour := 0; hour < 24; hour++ {
		if counts[hour] > bestCount {
			best, bestCount = hour, counts[hour]
		}
	}

	return PeakHour{
		Range: fmt.Sprintf("%02d:00 - %02d:00", best, (best+1)%24),
		Hour:  best,
		Count: bestCount,
	}
}

func mostPopular(events []*model.Event, rsvps []*model.RSVP) MostPopular {
	attending := map[uint]int{}
	for _, rsvp := range rsvps {
		if strings.EqualFold(string(rsvp.Status), string(model.RSVPAttending)) {
			attending[rsvp.EventID]++
		}
	}

	var best *model.Event
	bestCount := -1
	for _, event := range events {
		count := attending[event.ID]
		if count > bestCount || (count == bestCount && best != nil && event.ID < best.ID) {
			best, bestCount = event, count
		}
	}

	return MostPopular{
		EventID:   best.ID,
		Title:     best.Title,
		Attending: bestCount,
	}
}

func trendingCategory(events []*model.Event) string {
	counts := map[string]int{}
	for _, event := range events {
		for category := range eventCategories(event) {
			counts[category]++
		}
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	best, bestCount := "", -1
	for _, name := range names {
		if counts[name] > bestCount {
			best, bestCount = name, counts[name]
		}
	}
	return best
}

// eventCategories derives an event's category set: explicit tags when
// present, otherwise keyword matches on title+description, otherwise the
// catch-all "General" bucket.
func eventCategories(event *model.Event) map[string]bool {
	set := map[string]bool{}

	if len(event.Categories) > 0 {
		for _, category := range event.Categories {
			set[category.Name] = true
		}
		return set
	}

	text := strings.ToLower(event.Title + " " + event.Description)
	for _, entry := range categoryKeywords {
		if strings.Contains(text, entry.keyword) {
			set[entry.category] = true
		}
	}
	if len(set) == 0 {
		set["General"] = true
	}
	return set
}

func successRate(events []*model.Event, rsvps []*model.RSVP) float64 {
	attending := map[uint]int{}
	for _, rsvp := range rsvps {
		if strings.EqualFold(string(rsvp.Status), string(model.RSVPAttending)) {
			attending[rsvp.EventID]++
		}
	}

	successful := 0
	for _, event := range events {
		if attending[event.ID] > attendingThreshold {
			successful++
		}
	}
	return percentage(successful, len(events))
}

func growthRate(events []*model.Event, now time.Time) float64 {
	cutoff := now.Add(-growthWindow)
	recent := 0
	for _, event := range events {
		if event.StartTime.After(cutoff) && !event.StartTime.After(now) {
			recent++
		}
	}
	return percentage(recent, len(events))
}

func recentEvents(events []*model.Event) []*model.Event {
	sorted := make([]*model.Event, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].StartTime.Equal(sorted[j].StartTime) {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].StartTime.After(sorted[j].StartTime)
	})

	if len(sorted) > recentEventCount {
		sorted = sorted[:recentEventCount]
	}
	return sorted
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
