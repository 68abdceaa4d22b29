package usecase

import (
	"sort"
	"strings"

	"github.com/tripwise/itinerary-orchestration-service/internal/domain"
)

// ActivityClassifier assigns a category to an activity for duplicate-avoidance
// bookkeeping. Category tags from the completion service are authoritative;
// keyword matching against the title is the fallback signal for untagged or
// mistagged activities. Keyword scoring over natural language is best effort,
// never an invariant.
type ActivityClassifier interface {
	// Classify returns the effective category of the activity.
	Classify(a domain.Activity) domain.Category

	// IsHotelCheckIn reports whether the activity looks like a hotel check-in.
	IsHotelCheckIn(a domain.Activity) bool
}

// keywordClassifier classifies activities with a controlled keyword vocabulary.
// Tables carry both English and Hebrew terms because upstream trip data mixes
// the two languages.
type keywordClassifier struct {
	keywords map[domain.Category][]string
	checkIn  []string
}

// NewKeywordClassifier creates the default classifier.
func NewKeywordClassifier() ActivityClassifier {
	return &keywordClassifier{
		keywords: map[domain.Category][]string{
			domain.CategoryRestaurant: {
				"restaurant", "cafe", "bistro", "brasserie", "breakfast",
				"lunch", "dinner", "brunch",
				"מסעדה", "בית קפה", "ארוחת",
			},
			domain.CategoryAttraction: {
				"museum", "gallery", "palace", "castle", "cathedral",
				"tower", "aquarium", "zoo", "theme park",
				"מוזיאון", "גלריה", "ארמון", "מגדל",
			},
			domain.CategoryHotel: {
				"hotel", "hostel", "resort", "guesthouse",
				"מלון", "אכסניה",
			},
			domain.CategoryTransport: {
				"airport", "train", "transfer", "taxi", "metro",
				"שדה תעופה", "רכבת", "הסעה",
			},
		},
		checkIn: []string{"check-in", "check in", "צ'ק אין", "התארגנות במלון"},
	}
}

// Classify implements ActivityClassifier.Classify.
func (c *keywordClassifier) Classify(a domain.Activity) domain.Category {
	if a.Category.IsValid() && a.Category != domain.CategoryOther {
		return a.Category
	}

	haystack := strings.ToLower(a.Title + " " + a.Description)
	for _, category := range []domain.Category{
		domain.CategoryRestaurant,
		domain.CategoryHotel,
		domain.CategoryAttraction,
		domain.CategoryTransport,
	} {
		for _, keyword := range c.keywords[category] {
			if strings.Contains(haystack, keyword) {
				return category
			}
		}
	}
	return domain.CategoryOther
}

// IsHotelCheckIn implements ActivityClassifier.IsHotelCheckIn.
func (c *keywordClassifier) IsHotelCheckIn(a domain.Activity) bool {
	if a.Category == domain.CategoryHotel {
		return true
	}
	title := strings.ToLower(a.Title)
	for _, marker := range c.checkIn {
		if strings.Contains(title, marker) {
			return true
		}
	}
	for _, keyword := range c.keywords[domain.CategoryHotel] {
		if strings.Contains(title, keyword) {
			return true
		}
	}
	return false
}

// banList tracks venue names that must not repeat across days.
// Keys are lowercased, trimmed activity titles.
type banList struct {
	restaurants map[string]struct{}
	attractions map[string]struct{}
}

// newBanList builds the no-repeat sets from already-planned days.
func newBanList(days []domain.ItineraryDay, classifier ActivityClassifier) banList {
	b := banList{
		restaurants: make(map[string]struct{}),
		attractions: make(map[string]struct{}),
	}
	for _, day := range days {
		for _, activity := range day.Activities {
			b.add(activity, classifier)
		}
	}
	return b
}

func (b banList) add(a domain.Activity, classifier ActivityClassifier) {
	key := banKey(a.Title)
	if key == "" {
		return
	}
	switch classifier.Classify(a) {
	case domain.CategoryRestaurant:
		b.restaurants[key] = struct{}{}
	case domain.CategoryAttraction, domain.CategorySightseeing:
		b.attractions[key] = struct{}{}
	}
}

// banKey normalizes a title into a ban-set key.
func banKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// sortedKeys returns the set contents in deterministic order for prompt assembly.
func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
