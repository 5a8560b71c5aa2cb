package service

import (
	"encoding/json"
	"movieclub_api/model"
	"sort"
)

// enrichmentData carries the pre-fetched aggregate maps the shaping functions
// join against. Building it is the repositories' job, everything below is a
// pure function of its inputs.
type enrichmentData struct {
	seenBy        map[int64][]int64
	inMeetup      map[int64]bool
	inUnscheduled map[int64]bool
	awards        map[int64]model.MovieAward
}

func buildEnrichedMovies(movies []model.Movie, orders map[int64]int, data *enrichmentData, requesterId int64, withUnscheduled bool) []model.EnrichedMovie {
	res := make([]model.EnrichedMovie, 0, len(movies))
	for _, movie := range movies {
		seenBy := data.seenBy[movie.TmdbId]
		if seenBy == nil {
			seenBy = []int64{}
		}
		hasSeen := false
		for _, userId := range seenBy {
			if userId == requesterId {
				hasSeen = true
				break
			}
		}

		enriched := model.EnrichedMovie{
			Movie:     movie,
			Order:     orders[movie.TmdbId],
			SeenBy:    seenBy,
			SeenCount: len(seenBy),
			HasSeen:   hasSeen,
			InMeetup:  data.inMeetup[movie.TmdbId],
		}
		if withUnscheduled {
			enriched.InUnscheduledList = data.inUnscheduled[movie.TmdbId]
		}
		if award, ok := data.awards[movie.TmdbId]; ok {
			enriched.Awards = parseAward(award)
		}
		res = append(res, enriched)
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Order < res[j].Order
	})
	return res
}

func parseAward(award model.MovieAward) *model.MovieAwardRes {
	res := &model.MovieAwardRes{
		Nominations: award.Nominations,
		Wins:        award.Wins,
		Categories:  map[string]int{},
	}
	if award.Categories != "" {
		// a broken categories blob degrades to the counts only
		_ = json.Unmarshal([]byte(award.Categories), &res.Categories)
	}
	return res
}

func encodeAwardCategories(categories map[string]int) string {
	if len(categories) == 0 {
		return ""
	}
	data, err := json.Marshal(categories)
	if err != nil {
		return ""
	}
	return string(data)
}

// sortListsForDisplay is the default client-facing ordering: current votes
// desc, all-time votes desc, createdAt asc. closePolls deliberately uses a
// stricter ordering without the all-time tie-break.
func sortListsForDisplay(lists []model.ListRes) {
	sort.SliceStable(lists, func(i, j int) bool {
		if lists[i].CurrentVotes != lists[j].CurrentVotes {
			return lists[i].CurrentVotes > lists[j].CurrentVotes
		}
		if lists[i].AllTimeVotes != lists[j].AllTimeVotes {
			return lists[i].AllTimeVotes > lists[j].AllTimeVotes
		}
		return lists[i].CreatedAt.Before(lists[j].CreatedAt)
	})
}
