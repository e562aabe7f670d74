package usecase

import (
	"errors"
	"regexp"
	"sort"
	"strings"
	"sync"

	"estimate_agent/internal/domain/entities"
)

var ErrNoCategories = errors.New("no system categories registered")

const (
	fallbackConfidence = 0.1
	// name and description hits weigh three points on top of the keywords.
	extraCategoryWeight = 3
)

// CategoryMatch is the outcome of categorizing a requirements description.
type CategoryMatch struct {
	Category   entities.SystemCategory
	Confidence float64
	Keywords   []string
	Fallback   bool
}

type categoryScore struct {
	category   entities.SystemCategory
	confidence float64
	keywords   []string
	matches    int
}

// Categorize picks the system category that best fits description.
//
// Keywords are case-insensitive regular expressions worth one point each, the
// category name is worth two and the first segment of its description one.
// When nothing matches at all the category whose name contains defaultName
// (or the first one) is returned with the minimum confidence.
func Categorize(description string, categories []entities.SystemCategory, defaultName string) (CategoryMatch, error) {
	if len(categories) == 0 {
		return CategoryMatch{}, ErrNoCategories
	}

	scores := make([]categoryScore, 0, len(categories))
	for _, c := range categories {
		scores = append(scores, scoreCategory(description, c))
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].confidence > scores[j].confidence
	})

	best := scores[0]
	if best.confidence < fallbackConfidence && best.matches == 0 {
		return CategoryMatch{
			Category:   defaultCategory(categories, defaultName),
			Confidence: fallbackConfidence,
			Keywords:   []string{},
			Fallback:   true,
		}, nil
	}

	return CategoryMatch{
		Category:   best.category,
		Confidence: best.confidence,
		Keywords:   best.keywords,
	}, nil
}

func scoreCategory(description string, c entities.SystemCategory) categoryScore {
	s := categoryScore{category: c, keywords: []string{}}

	for _, kw := range c.Keywords {
		if kw == "" {
			continue
		}
		if matchesFold(kw, description) {
			s.matches++
			s.keywords = append(s.keywords, kw)
		}
	}

	if c.Name != "" && matchesFold(c.Name, description) {
		s.matches += 2
		s.keywords = append(s.keywords, c.Name)
	}

	if lead := leadingSegment(c.Description); lead != "" && matchesFold(lead, description) {
		s.matches++
	}

	total := float64(len(c.Keywords) + extraCategoryWeight)
	s.confidence = float64(s.matches) / total
	if s.confidence > 1 {
		s.confidence = 1
	}
	return s
}

// patternCache maps a catalog pattern to its compiled *regexp.Regexp, or to
// nil when the pattern is not a valid expression.
var patternCache sync.Map

func compiledPattern(pattern string) *regexp.Regexp {
	if v, ok := patternCache.Load(pattern); ok {
		return v.(*regexp.Regexp)
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		re = nil
	}
	v, _ := patternCache.LoadOrStore(pattern, re)
	return v.(*regexp.Regexp)
}

// matchesFold treats pattern as a case-insensitive regular expression, or as a
// literal when it does not compile.
func matchesFold(pattern, text string) bool {
	re := compiledPattern(pattern)
	if re == nil {
		return strings.Contains(strings.ToLower(text), strings.ToLower(pattern))
	}
	return re.MatchString(text)
}

func leadingSegment(description string) string {
	lead, _, _ := strings.Cut(description, "、")
	lead, _, _ = strings.Cut(lead, ",")
	return strings.TrimSpace(lead)
}

func defaultCategory(categories []entities.SystemCategory, name string) entities.SystemCategory {
	if name != "" {
		for _, c := range categories {
			if strings.Contains(c.Name, name) {
				return c
			}
		}
	}
	return categories[0]
}
