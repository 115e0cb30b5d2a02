package services

import (
	"strconv"
	"strings"

	"github.com/SciSaif/seller-app/entity"
)

// FormatTimeHHMM turns an "HH:MM" string into the "HHMM" form the
// catalog schema expects.
func FormatTimeHHMM(t string) string {
	return strings.ReplaceAll(t, ":", "")
}

// BuildTimingTags expands weekly timing entries into timing tags, one
// per (entry, time window) pair, preserving input order. No
// de-duplication is applied.
func BuildTimingTags(entries []entity.TimingEntry) []entity.Tag {
	var tags []entity.Tag
	for _, entry := range entries {
		for _, window := range entry.Timings {
			tags = append(tags, entity.Tag{
				Code: "timing",
				List: []entity.TagEntry{
					{Code: "day_from", Value: strconv.Itoa(entry.DaysRange.From)},
					{Code: "day_to", Value: strconv.Itoa(entry.DaysRange.To)},
					{Code: "time_from", Value: FormatTimeHHMM(window.From)},
					{Code: "time_to", Value: FormatTimeHHMM(window.To)},
				},
			})
		}
	}
	return tags
}
