package chatbot

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cities the assistant knows about.
var Cities = []string{
	"yaounde", "douala", "bamenda", "bafoussam", "garoua", "maroua",
	"ngaoundere", "bertoua", "ebolowa", "kumba", "limbe", "buea",
	"mbouda", "foumban", "dschang", "kribi", "edea", "sangmelima",
	"abong-mbang", "mbalmayo", "yokadouma", "batouri", "kousseri",
	"wum", "fundong", "nkongsamba", "loum", "tiko", "mutengene",
}

var keywords = map[string][]string{
	"prix":        {"prix", "cout", "tarif", "cher", "pas cher", "moins cher", "economique", "budget"},
	"disponible":  {"disponible", "libre", "reserve", "occupe", "dispo"},
	"chambre":     {"chambre", "room", "lit", "dormir"},
	"appartement": {"appartement", "studio", "suite"},
	"salle":       {"salle", "fete", "evenement", "mariage", "conference", "meeting"},
	"hotel":       {"hotel", "etablissement", "hebergement"},
	"etoiles":     {"etoile", "etoiles", "star", "standing", "luxe"},
	"reservation": {"reservation", "reserver", "booking"},
}

var accentReplacer = strings.NewReplacer(
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"à", "a", "â", "a", "ä", "a",
	"ù", "u", "û", "u", "ü", "u",
	"ô", "o", "ö", "o",
	"î", "i", "ï", "i",
	"ç", "c", "ñ", "n",
)

var starsPattern = regexp.MustCompile(`\b([1-5])\b`)

// Normalize lowercases the message and strips French accents so keyword
// matching stays simple.
func Normalize(message string) string {
	return accentReplacer.Replace(strings.ToLower(strings.TrimSpace(message)))
}

func matchAny(norm string, group string) bool {
	for _, kw := range keywords[group] {
		if strings.Contains(norm, kw) {
			return true
		}
	}
	return false
}

// ExtractCity returns the first known city mentioned in the message, empty
// when none matches.
func ExtractCity(message string) string {
	norm := Normalize(message)
	for _, city := range Cities {
		if strings.Contains(norm, city) {
			return city
		}
	}
	return ""
}

// ExtractStars returns the star rating asked for, 0 when the message has no
// star keyword next to a digit 1 to 5.
func ExtractStars(message string) int {
	norm := Normalize(message)
	if !matchAny(norm, "etoiles") {
		return 0
	}
	m := starsPattern.FindStringSubmatch(norm)
	if m == nil {
		return 0
	}
	return int(m[1][0] - '0')
}

// Intent is what the assistant understood from one message.
type Intent struct {
	UnitKind     string // chambre, appartement, salle, hotel or empty
	City         string
	Stars        int
	Price        bool
	Availability bool
	Reservation  bool
}

func DetectIntent(message string) Intent {
	norm := Normalize(message)
	in := Intent{
		City:         ExtractCity(message),
		Stars:        ExtractStars(message),
		Price:        matchAny(norm, "prix"),
		Availability: matchAny(norm, "disponible"),
		Reservation:  matchAny(norm, "reservation"),
	}
	switch {
	case matchAny(norm, "chambre"):
		in.UnitKind = "chambre"
	case matchAny(norm, "appartement"):
		in.UnitKind = "appartement"
	case matchAny(norm, "salle"):
		in.UnitKind = "salle"
	case matchAny(norm, "hotel"):
		in.UnitKind = "hotel"
	}
	return in
}

type HotelSummary struct {
	Name  string
	Stars int
	City  string
	Phone string
	Email string
}

type UnitSummary struct {
	Label     string
	Detail    string
	HotelName string
	City      string
	Price     float64
	Capacity  int
}

type CityStats struct {
	Hotels       int
	Rooms        int
	Apartments   int
	EventRooms   int
	AvgRoomPrice float64
	MinRoomPrice float64
	MaxRoomPrice float64
}

// Data is the catalogue the assistant answers from.
type Data interface {
	HotelsByCity(city string) ([]HotelSummary, error)
	CheapestRooms(city string, limit int) ([]UnitSummary, error)
	CheapestApartments(city string, limit int) ([]UnitSummary, error)
	EventVenues(city string, limit int) ([]UnitSummary, error)
	Stats(city string) (*CityStats, error)
}

type Bot struct {
	data  Data
	cache *redis.Client
	ttl   time.Duration
}

// New builds an assistant. cache may be nil.
func New(data Data, cache *redis.Client) *Bot {
	return &Bot{data: data, cache: cache, ttl: 15 * time.Minute}
}

func (b *Bot) cacheKey(norm string) string {
	return "chatbot:" + norm
}

// Reply answers one message. Identical questions are served from redis for a
// short while since the catalogue changes slowly.
func (b *Bot) Reply(ctx context.Context, message string) string {
	norm := Normalize(message)
	if norm == "" {
		return "Bonjour ! Comment puis-je vous aider avec vos recherches d'hotels au Cameroun ?"
	}
	if b.cache != nil {
		if cached, err := b.cache.Get(ctx, b.cacheKey(norm)).Result(); err == nil {
			return cached
		}
	}
	reply := b.compose(message, norm)
	if b.cache != nil {
		if err := b.cache.SetEx(ctx, b.cacheKey(norm), reply, b.ttl).Err(); err != nil {
			log.Printf("[chatbot] Error caching reply: %s\n", err.Error())
		}
	}
	return reply
}

func (b *Bot) compose(message, norm string) string {
	for _, greeting := range []string{"bonjour", "bonsoir", "salut", "hello"} {
		if strings.Contains(norm, greeting) {
			return "Bonjour ! Je suis votre assistant hotelier pour le Cameroun. Je peux vous renseigner sur les hotels, chambres, appartements et salles d'evenements dans toutes les villes du Cameroun."
		}
	}
	for _, help := range []string{"aide", "help", "comment", "que peux-tu"} {
		if strings.Contains(norm, help) {
			return helpText
		}
	}

	in := DetectIntent(message)
	switch in.UnitKind {
	case "hotel":
		return b.replyHotels(in)
	case "chambre":
		return b.replyRooms(in)
	case "appartement":
		return b.replyApartments(in)
	case "salle":
		return b.replyVenues(in)
	}
	if in.City != "" {
		return b.replyCity(in)
	}
	return fallbackText
}

func title(city string) string {
	if city == "" {
		return ""
	}
	return strings.ToUpper(city[:1]) + city[1:]
}

func inCity(city string) string {
	if city == "" {
		return ""
	}
	return " a " + title(city)
}

func (b *Bot) replyHotels(in Intent) string {
	if in.City == "" {
		return "Dans quelle ville recherchez-vous un hotel ? (Yaounde, Douala, Bamenda, Bafoussam, Buea, Mbouda, etc.)"
	}
	hotels, err := b.data.HotelsByCity(in.City)
	if err != nil || len(hotels) == 0 {
		return fmt.Sprintf("Desole, je n'ai pas trouve d'hotels a %s. Voulez-vous que je vous propose des hotels dans d'autres villes ?", title(in.City))
	}
	if in.Stars > 0 {
		filtered := hotels[:0]
		for _, h := range hotels {
			if h.Stars == in.Stars {
				filtered = append(filtered, h)
			}
		}
		hotels = filtered
		if len(hotels) == 0 {
			return fmt.Sprintf("Aucun hotel %d etoiles trouve a %s.", in.Stars, title(in.City))
		}
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hotels a %s :\n", title(in.City))
	for i, h := range hotels {
		if i == 10 {
			break
		}
		fmt.Fprintf(&sb, "- %s (%d etoiles)", h.Name, h.Stars)
		if h.Phone != "" {
			fmt.Fprintf(&sb, " | Tel: %s", h.Phone)
		}
		if h.Email != "" {
			fmt.Fprintf(&sb, " | Email: %s", h.Email)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b *Bot) replyRooms(in Intent) string {
	if !in.Price && in.City == "" {
		return "Recherchez-vous des chambres pas cheres ? Dans quelle ville ?"
	}
	rooms, err := b.data.CheapestRooms(in.City, 10)
	if err != nil || len(rooms) == 0 {
		return fmt.Sprintf("Desole, aucune chambre disponible trouvee%s.", inCity(in.City))
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Chambres les moins cheres%s :\n", inCity(in.City))
	for _, r := range rooms {
		fmt.Fprintf(&sb, "- Chambre %s (%s) - %s (%s) - %.0f FCFA/nuit\n",
			r.Label, r.Detail, r.HotelName, title(r.City), r.Price)
	}
	return sb.String()
}

func (b *Bot) replyApartments(in Intent) string {
	apts, err := b.data.CheapestApartments(in.City, 10)
	if err != nil || len(apts) == 0 {
		return fmt.Sprintf("Desole, aucun appartement disponible trouve%s.", inCity(in.City))
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Appartements%s :\n", inCity(in.City))
	for _, a := range apts {
		fmt.Fprintf(&sb, "- %s (%s) - %s (%s) - %.0f FCFA/nuit\n",
			a.Label, a.Detail, a.HotelName, title(a.City), a.Price)
	}
	return sb.String()
}

func (b *Bot) replyVenues(in Intent) string {
	venues, err := b.data.EventVenues(in.City, 10)
	if err != nil || len(venues) == 0 {
		return fmt.Sprintf("Desole, aucune salle d'evenement disponible trouvee%s.", inCity(in.City))
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Salles d'evenements%s :\n", inCity(in.City))
	for _, v := range venues {
		fmt.Fprintf(&sb, "- %s - %s (%s) - Capacite : %d personnes - %.0f FCFA\n",
			v.Label, v.HotelName, title(v.City), v.Capacity, v.Price)
	}
	return sb.String()
}

func (b *Bot) replyCity(in Intent) string {
	stats, err := b.data.Stats(in.City)
	if err != nil || stats == nil || stats.Hotels == 0 {
		return fmt.Sprintf("Desole, je n'ai pas d'informations sur %s. Essayez Yaounde, Douala, Bamenda, Bafoussam, Buea, Mbouda, etc.", title(in.City))
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Informations sur %s :\n", title(in.City))
	fmt.Fprintf(&sb, "- %d hotels disponibles\n", stats.Hotels)
	fmt.Fprintf(&sb, "- %d chambres au total\n", stats.Rooms)
	fmt.Fprintf(&sb, "- %d appartements\n", stats.Apartments)
	fmt.Fprintf(&sb, "- %d salles d'evenements\n", stats.EventRooms)
	if stats.AvgRoomPrice > 0 {
		fmt.Fprintf(&sb, "Prix des chambres : moyenne %.0f, minimum %.0f, maximum %.0f FCFA/nuit\n",
			stats.AvgRoomPrice, stats.MinRoomPrice, stats.MaxRoomPrice)
	}
	fmt.Fprintf(&sb, "Que souhaitez-vous savoir de plus sur %s ?", title(in.City))
	return sb.String()
}

// Suggestions feed the chat widget's quick-question chips.
func Suggestions() []string {
	return []string{
		"Quels hotels a Yaounde ?",
		"Chambre pas chere a Douala",
		"Appartement disponible a Bafoussam",
		"Salle de mariage a Buea",
		"Hotels 4 etoiles au Cameroun",
		"Prix des chambres a Bamenda",
		"Appartements a Mbouda",
		"Salles de conference a Ngaoundere",
		"Hotels economiques a Kribi",
	}
}

const helpText = `Je peux vous aider avec :
- Hotels : trouver des hotels dans toutes les villes du Cameroun
- Chambres : prix, disponibilite, types de chambres
- Appartements : studios, suites, appartements meubles
- Salles d'evenements : mariages, conferences, fetes
- Prix : comparaisons, options economiques

Exemples : "Quels hotels a Yaounde ?", "Chambre pas chere a Douala", "Salle de mariage a Buea"`

const fallbackText = `Je n'ai pas bien compris votre demande. Voici ce que je peux faire :
- Hotels : "Hotels a Yaounde", "Hotels 4 etoiles"
- Chambres : "Chambre pas chere a Douala"
- Appartements : "Appartement a Bafoussam"
- Salles : "Salle de mariage a Buea"

Reformulez votre question ou tapez "aide" pour plus d'informations.`
