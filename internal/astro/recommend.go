package astro

import (
	"math/rand/v2"

	"github.com/sandeepkv93/dayboard/internal/model"
)

type Song struct {
	Title string
	URL   string
}

var songs = map[model.Mood][]Song{
	model.MoodHappy: {
		{"Happy - Pharrell Williams", "https://www.youtube.com/watch?v=ZbZSe6N_BXs"},
		{"Good as Hell - Lizzo", "https://www.youtube.com/watch?v=vuq-VAiW9kw"},
	},
	model.MoodCalm: {
		{"Better Together - Jack Johnson", "https://www.youtube.com/watch?v=u57d4_b_YgI"},
		{"Banana Pancakes - Jack Johnson", "https://www.youtube.com/watch?v=OkyrIRyrRdY"},
	},
	model.MoodNeutral: {
		{"Someone You Loved - Lewis Capaldi", "https://www.youtube.com/watch?v=zABLecsR5UE"},
	},
	model.MoodAnxious: {
		{"Weightless - Marconi Union", "https://www.youtube.com/watch?v=UfcAVejslrU"},
	},
	model.MoodSad: {
		{"Someone Like You - Adele", "https://www.youtube.com/watch?v=hLQl3WQQoQ0"},
	},
}

var careTips = map[model.Mood]string{
	model.MoodHappy:   "Share the joy: send a message to someone who cares about you.",
	model.MoodCalm:    "Use the moment to meditate for five minutes or walk outside.",
	model.MoodNeutral: "Try writing down three things you are grateful for today.",
	model.MoodAnxious: "Box breathing: in for 4s, hold 4s, out for 4s, for two minutes.",
	model.MoodSad:     "If you can, talk to someone you trust or write down how you felt.",
}

// Picker chooses an index in [0, n).
type Picker func(n int) int

func RandomPicker(n int) int { return rand.IntN(n) }

type Recommendation struct {
	Mood     model.Mood
	Song     *Song
	CareTip  string
	RecordID string
}

func Songs(m model.Mood) []Song {
	out := make([]Song, len(songs[m]))
	copy(out, songs[m])
	return out
}

func CareTip(m model.Mood) string { return careTips[m] }

// Recommend looks at the latest mood entry for sign and suggests a song and
// a self-care action. ok is false when the sign has no entries.
func Recommend(records []model.Record, sign model.Sign, pick Picker) (Recommendation, bool) {
	latest, ok := Latest(records, sign)
	if !ok {
		return Recommendation{}, false
	}
	entry := latest.Entry.(model.MoodEntry)
	out := Recommendation{Mood: entry.Mood, CareTip: careTips[entry.Mood], RecordID: latest.ID}
	if options := songs[entry.Mood]; len(options) > 0 {
		if pick == nil {
			pick = RandomPicker
		}
		song := options[pick(len(options))]
		out.Song = &song
	}
	return out, true
}

// Latest is the most recently created mood entry for sign. An empty sign
// matches every entry.
func Latest(records []model.Record, sign model.Sign) (model.Record, bool) {
	var best model.Record
	found := false
	for _, rec := range records {
		entry, ok := rec.Entry.(model.MoodEntry)
		if !ok || (sign != "" && entry.Sign != sign) {
			continue
		}
		if !found || !rec.Created.Before(best.Created) {
			best = rec
			found = true
		}
	}
	return best, found
}
