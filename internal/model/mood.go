package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidMood = errors.New("model: invalid mood")
	ErrInvalidSign = errors.New("model: invalid sign")
)

type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodCalm    Mood = "calm"
	MoodNeutral Mood = "neutral"
	MoodAnxious Mood = "anxious"
	MoodSad     Mood = "sad"
)

// Moods returns every mood from best to worst.
func Moods() []Mood {
	return []Mood{MoodHappy, MoodCalm, MoodNeutral, MoodAnxious, MoodSad}
}

func (m Mood) IsValid() bool {
	switch m {
	case MoodHappy, MoodCalm, MoodNeutral, MoodAnxious, MoodSad:
		return true
	default:
		return false
	}
}

// Score maps a mood onto the numeric scale used for trends.
func (m Mood) Score() int {
	switch m {
	case MoodHappy:
		return 3
	case MoodCalm:
		return 2
	case MoodNeutral:
		return 1
	case MoodAnxious:
		return 0
	case MoodSad:
		return -1
	default:
		return 0
	}
}

func ParseMood(raw string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(raw)))
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMood, raw)
	}
	return m, nil
}

type Sign string

const (
	SignAries       Sign = "aries"
	SignTaurus      Sign = "taurus"
	SignGemini      Sign = "gemini"
	SignCancer      Sign = "cancer"
	SignLeo         Sign = "leo"
	SignVirgo       Sign = "virgo"
	SignLibra       Sign = "libra"
	SignScorpio     Sign = "scorpio"
	SignSagittarius Sign = "sagittarius"
	SignCapricorn   Sign = "capricorn"
	SignAquarius    Sign = "aquarius"
	SignPisces      Sign = "pisces"
)

// Signs returns the zodiac in calendar order starting at Aries.
func Signs() []Sign {
	return []Sign{
		SignAries, SignTaurus, SignGemini, SignCancer, SignLeo, SignVirgo,
		SignLibra, SignScorpio, SignSagittarius, SignCapricorn, SignAquarius, SignPisces,
	}
}

func (s Sign) IsValid() bool {
	for _, known := range Signs() {
		if s == known {
			return true
		}
	}
	return false
}

func ParseSign(raw string) (Sign, error) {
	s := Sign(strings.ToLower(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSign, raw)
	}
	return s, nil
}

// MoodEntry is one journal line. Sign is optional.
type MoodEntry struct {
	Mood Mood
	Sign Sign
	Note string
}

func (MoodEntry) Category() Category { return CategoryMood }

func (e MoodEntry) Validate() error {
	if !e.Mood.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidMood, e.Mood)
	}
	if e.Sign != "" && !e.Sign.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidSign, e.Sign)
	}
	return nil
}
