package review

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/fwojciec/docreview"
)

var (
	fenceRe = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*\\n?(.*?)```")
	wordRe  = regexp.MustCompile(`[A-Za-z]+`)
)

// ParseFeedback decodes a model response into feedback for category.
// It accepts the JSON object wrapped in code fences or surrounded by prose,
// keys in any casing, an object nested under the category name, and issue
// or suggestion fields given as a single string. It never fails: a response
// that cannot be decoded yields Poor feedback explaining why.
func ParseFeedback(category docreview.Category, text string) *docreview.CategoryFeedback {
	objs := decodeObjects(text)
	if len(objs) == 0 {
		return docreview.DegradedFeedback(category, "could not parse response from the model")
	}

	var fields map[string]any
	for _, obj := range objs {
		if fields = feedbackFields(category, obj); fields != nil {
			break
		}
	}
	if fields == nil {
		return docreview.DegradedFeedback(category, "could not parse response: no score field")
	}

	fb := &docreview.CategoryFeedback{
		Category:    category,
		Score:       parseScore(fields["score"]),
		Issues:      stringList(fields["issues"]),
		Suggestions: stringList(fields["suggestions"]),
	}
	fb.Normalize()
	return fb
}

// decodeObjects returns every JSON object that starts at a brace in text or
// in one of its fenced blocks, in order of appearance. The decoder stops at
// the end of each object, so prose around it is ignored.
func decodeObjects(text string) []map[string]any {
	candidates := []string{text}
	for _, m := range fenceRe.FindAllStringSubmatch(text, -1) {
		candidates = append(candidates, m[1])
	}

	var objs []map[string]any
	for _, c := range candidates {
		for i := 0; i < len(c); i++ {
			next := strings.IndexByte(c[i:], '{')
			if next < 0 {
				break
			}
			i += next

			var obj map[string]any
			if err := json.NewDecoder(strings.NewReader(c[i:])).Decode(&obj); err == nil {
				objs = append(objs, lowerKeys(obj))
			}
		}
	}
	return objs
}

// feedbackFields returns the object holding the score, looking one level
// down when the model nested its answer under the category name.
func feedbackFields(category docreview.Category, obj map[string]any) map[string]any {
	if _, ok := obj["score"]; ok {
		return obj
	}

	title := strings.ToLower(category.Title())
	for _, key := range []string{string(category), title, strings.ReplaceAll(title, " ", "_")} {
		if nested, ok := obj[key].(map[string]any); ok {
			return lowerKeys(nested)
		}
	}

	for _, v := range obj {
		if nested, ok := v.(map[string]any); ok {
			nested = lowerKeys(nested)
			if _, ok := nested["score"]; ok {
				return nested
			}
		}
	}
	return nil
}

func lowerKeys(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return out
}

// parseScore accepts an exact label or the first label found in a phrase
// such as "Good (minor issues)". Anything else yields the zero Score.
func parseScore(v any) docreview.Score {
	label, ok := v.(string)
	if !ok {
		return 0
	}
	if s, err := docreview.ParseScore(label); err == nil {
		return s
	}
	for _, word := range wordRe.FindAllString(label, -1) {
		if s, err := docreview.ParseScore(word); err == nil {
			return s
		}
	}
	return 0
}

func stringList(v any) []string {
	var out []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}

	switch val := v.(type) {
	case string:
		add(val)
	case []any:
		for _, item := range val {
			switch item := item.(type) {
			case string:
				add(item)
			case nil:
			default:
				add(fmt.Sprint(item))
			}
		}
	}
	return out
}
