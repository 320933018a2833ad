package internal

import (
	"sort"
	"time"
)

type CategoryCount struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Percent  float64 `json:"percent"`
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// Stats is the aggregate report over a set of entries.
type Stats struct {
	Total      int             `json:"total"`
	ActiveDays int             `json:"active_days"`
	Categories []CategoryCount `json:"categories"`
	Tags       []TagCount      `json:"tags"`
	LastWeek   []DayCount      `json:"last_week"`
}

// ComputeStats aggregates entries relative to now. An empty input produces an
// all-zero report; no division happens when Total is zero.
func ComputeStats(entries []Entry, now time.Time) *Stats {
	stats := &Stats{Total: len(entries)}

	days := make(map[string]struct{})
	catCounts := make(map[string]int)
	var catOrder []string
	tagCounts := make(map[string]int)
	var tagOrder []string

	for _, e := range entries {
		days[e.Day()] = struct{}{}

		if _, seen := catCounts[e.Category]; !seen {
			catOrder = append(catOrder, e.Category)
		}
		catCounts[e.Category]++

		for _, t := range e.Tags {
			if _, seen := tagCounts[t]; !seen {
				tagOrder = append(tagOrder, t)
			}
			tagCounts[t]++
		}
	}

	stats.ActiveDays = len(days)

	for _, cat := range catOrder {
		count := catCounts[cat]
		stats.Categories = append(stats.Categories, CategoryCount{
			Category: cat,
			Count:    count,
			Percent:  float64(count) * 100 / float64(stats.Total),
		})
	}
	sort.SliceStable(stats.Categories, func(i, j int) bool {
		return stats.Categories[i].Count > stats.Categories[j].Count
	})

	for _, tag := range tagOrder {
		stats.Tags = append(stats.Tags, TagCount{Tag: tag, Count: tagCounts[tag]})
	}
	// descending by count; the stable sort keeps first-seen order on ties
	sort.SliceStable(stats.Tags, func(i, j int) bool {
		return stats.Tags[i].Count > stats.Tags[j].Count
	})

	stats.LastWeek = lastWeek(entries, now)

	return stats
}

// lastWeek buckets entries per calendar day over the 7 days ending at now,
// oldest day first. Days without entries appear with a zero count.
func lastWeek(entries []Entry, now time.Time) []DayCount {
	perDay := make(map[string]int)
	for _, e := range entries {
		perDay[e.Day()]++
	}

	week := make([]DayCount, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		week = append(week, DayCount{Day: day, Count: perDay[day]})
	}
	return week
}
