package chatbot

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeData struct {
	hotels []HotelSummary
	rooms  []UnitSummary
	apts   []UnitSummary
	venues []UnitSummary
	stats  *CityStats
}

func (f *fakeData) HotelsByCity(string) ([]HotelSummary, error)         { return f.hotels, nil }
func (f *fakeData) CheapestRooms(string, int) ([]UnitSummary, error)    { return f.rooms, nil }
func (f *fakeData) CheapestApartments(string, int) ([]UnitSummary, error) { return f.apts, nil }
func (f *fakeData) EventVenues(string, int) ([]UnitSummary, error)      { return f.venues, nil }
func (f *fakeData) Stats(string) (*CityStats, error)                    { return f.stats, nil }

func TestNormalizeStripsAccents(t *testing.T) {
	assert.Equal(t, "hotel a yaounde", Normalize("  Hôtel à Yaoundé "))
}

func TestExtractCity(t *testing.T) {
	assert.Equal(t, "douala", ExtractCity("Chambre pas chère à Douala"))
	assert.Equal(t, "yaounde", ExtractCity("quels hôtels à Yaoundé ?"))
	assert.Equal(t, "", ExtractCity("chambre pas chère"))
}

func TestExtractStars(t *testing.T) {
	assert.Equal(t, 4, ExtractStars("hôtels 4 étoiles"))
	// A digit with no star keyword is not a rating.
	assert.Equal(t, 0, ExtractStars("chambre pour 4 personnes"))
	assert.Equal(t, 0, ExtractStars("hôtels de luxe"))
}

func TestDetectIntent(t *testing.T) {
	in := DetectIntent("Chambre pas chère à Douala")
	assert.Equal(t, "chambre", in.UnitKind)
	assert.Equal(t, "douala", in.City)
	assert.True(t, in.Price)

	in = DetectIntent("Salle de mariage à Buea")
	assert.Equal(t, "salle", in.UnitKind)
	assert.Equal(t, "buea", in.City)

	in = DetectIntent("Hôtels 4 étoiles à Yaoundé")
	assert.Equal(t, "hotel", in.UnitKind)
	assert.Equal(t, 4, in.Stars)
}

func TestReplyGreeting(t *testing.T) {
	bot := New(&fakeData{}, nil)
	reply := bot.Reply(context.Background(), "Bonjour !")
	assert.Contains(t, reply, "assistant hotelier")
}

func TestReplyHelp(t *testing.T) {
	bot := New(&fakeData{}, nil)
	reply := bot.Reply(context.Background(), "aide")
	assert.Contains(t, reply, "Je peux vous aider")
}

func TestReplyHotelsByCity(t *testing.T) {
	bot := New(&fakeData{hotels: []HotelSummary{
		{Name: "Hotel Le Paradis", Stars: 4, City: "yaounde", Phone: "+237 690 00 00 00"},
		{Name: "Hotel du Centre", Stars: 2, City: "yaounde"},
	}}, nil)
	reply := bot.Reply(context.Background(), "Quels hotels a Yaounde ?")
	assert.Contains(t, reply, "Hotel Le Paradis")
	assert.Contains(t, reply, "Hotel du Centre")
}

func TestReplyHotelsStarFilter(t *testing.T) {
	bot := New(&fakeData{hotels: []HotelSummary{
		{Name: "Hotel Le Paradis", Stars: 4, City: "yaounde"},
		{Name: "Hotel du Centre", Stars: 2, City: "yaounde"},
	}}, nil)
	reply := bot.Reply(context.Background(), "Hotels 4 etoiles a Yaounde")
	assert.Contains(t, reply, "Hotel Le Paradis")
	assert.NotContains(t, reply, "Hotel du Centre")
}

func TestReplyHotelsNoCityAsksForOne(t *testing.T) {
	bot := New(&fakeData{}, nil)
	reply := bot.Reply(context.Background(), "je cherche un hotel")
	assert.Contains(t, reply, "Dans quelle ville")
}

func TestReplyCheapRooms(t *testing.T) {
	bot := New(&fakeData{rooms: []UnitSummary{
		{Label: "101", Detail: "simple", HotelName: "Hotel du Centre", City: "douala", Price: 15000},
	}}, nil)
	reply := bot.Reply(context.Background(), "Chambre pas chere a Douala")
	assert.Contains(t, reply, "101")
	assert.Contains(t, reply, "15000 FCFA/nuit")
}

func TestReplyVenues(t *testing.T) {
	bot := New(&fakeData{venues: []UnitSummary{
		{Label: "Salle Prestige", HotelName: "Hotel Le Paradis", City: "buea", Price: 250000, Capacity: 300},
	}}, nil)
	reply := bot.Reply(context.Background(), "Salle de mariage a Buea")
	assert.Contains(t, reply, "Salle Prestige")
	assert.Contains(t, reply, "300 personnes")
}

func TestReplyCityStats(t *testing.T) {
	bot := New(&fakeData{stats: &CityStats{
		Hotels: 3, Rooms: 40, Apartments: 8, EventRooms: 2,
		AvgRoomPrice: 22000, MinRoomPrice: 10000, MaxRoomPrice: 60000,
	}}, nil)
	reply := bot.Reply(context.Background(), "parle-moi de Kribi")
	assert.Contains(t, reply, "3 hotels")
	assert.Contains(t, reply, "40 chambres")
}

func TestReplyFallback(t *testing.T) {
	bot := New(&fakeData{}, nil)
	reply := bot.Reply(context.Background(), "xyzzy")
	assert.True(t, strings.Contains(reply, "pas bien compris"))
}

func TestSuggestionsNotEmpty(t *testing.T) {
	assert.NotEmpty(t, Suggestions())
}
