package astro

import "github.com/sandeepkv93/dayboard/internal/model"

type SignInfo struct {
	Sign      model.Sign
	Name      string
	Glyph     string
	Color     string
	Horoscope string
}

var signs = map[model.Sign]SignInfo{
	model.SignAries:       {model.SignAries, "Aries", "♈", "#FF6B6B", "Today calls for courage. Small decisions lead to big surprises."},
	model.SignTaurus:      {model.SignTaurus, "Taurus", "♉", "#FFD166", "Stability shows up when you let yourself slow down and value the present."},
	model.SignGemini:      {model.SignGemini, "Gemini", "♊", "#F5CBA7", "Speak up. One conversation can clear what felt confusing."},
	model.SignCancer:      {model.SignCancer, "Cancer", "♋", "#9AD3BC", "Look after your home and your feelings; a small gesture brings comfort."},
	model.SignLeo:         {model.SignLeo, "Leo", "♌", "#FFD2A6", "Shine! Your enthusiasm draws important social opportunities."},
	model.SignVirgo:       {model.SignVirgo, "Virgo", "♍", "#C6D8FF", "Set up a small routine: it will bring wellbeing and focus."},
	model.SignLibra:       {model.SignLibra, "Libra", "♎", "#E7DAFF", "Seek balance in your relationships. Listening can be as powerful as speaking."},
	model.SignScorpio:     {model.SignScorpio, "Scorpio", "♏", "#E19AFF", "Emotional intensity favours deep change. Trust the process."},
	model.SignSagittarius: {model.SignSagittarius, "Sagittarius", "♐", "#F6B8B8", "Venture into a book or a short trip out. It will be refreshing."},
	model.SignCapricorn:   {model.SignCapricorn, "Capricorn", "♑", "#B8D8D8", "Plan carefully: well defined goals bring you closer to the target."},
	model.SignAquarius:    {model.SignAquarius, "Aquarius", "♒", "#BEE7E6", "Fresh ideas appear when you swap experiences with other people."},
	model.SignPisces:      {model.SignPisces, "Pisces", "♓", "#D3C0F9", "Let creativity flow. Art and music are strong allies today."},
}

const fallbackHoroscope = "Good energy is around today. Watch for the small opportunities."

// Lookup returns the card data for a sign. Unknown signs get a neutral card.
func Lookup(sign model.Sign) SignInfo {
	if info, ok := signs[sign]; ok {
		return info
	}
	return SignInfo{Sign: sign, Name: string(sign), Color: "#FFFFFF", Horoscope: fallbackHoroscope}
}

// DefaultSign is the sign preselected when none is configured.
const DefaultSign = model.SignLibra
