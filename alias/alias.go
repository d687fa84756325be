// Package alias canonicalizes tune names: many spellings of the same name
// collapse to one minimal, query-friendly list per tune.
package alias

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/tunedex/tunedex/model"
)

// Words that carry no discriminative value between two spellings of a name.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "at": {}, "by": {}, "for": {},
	"in": {}, "of": {}, "on": {}, "to": {}, "up": {}, "and": {},
	"as": {}, "but": {}, "or": {}, "nor": {},
}

var nonWordChars = regexp.MustCompile(`[^a-z ]`)

// TokenSet is the canonical bag of words of one alias. It is used only for
// equality and subset tests; the original spelling is what gets emitted.
type TokenSet map[string]struct{}

// Key is a stable string form usable as a map key.
func (s TokenSet) Key() string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return strings.Join(words, " ")
}

// SubsetOf reports whether s is a strict subset of other.
func (s TokenSet) SubsetOf(other TokenSet) bool {
	if len(s) >= len(other) {
		return false
	}
	for w := range s {
		if _, ok := other[w]; !ok {
			return false
		}
	}
	return true
}

// Clean reduces an alias to its canonical token set: lower case, letters
// only, stopwords out, trailing "s" stripped (close enough to singular for
// tune names), and the one American spelling that pops up a lot mapped back
// to the British one.
func Clean(raw string) TokenSet {
	stripped := nonWordChars.ReplaceAllString(strings.ToLower(raw), "")
	set := make(TokenSet)
	for _, w := range strings.Fields(stripped) {
		if _, stop := stopWords[w]; stop {
			continue
		}
		w = strings.TrimSuffix(w, "s")
		if w == "favorite" {
			w = "favourite"
		}
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

// Deduplicate collapses a tune's raw alias list into the minimal set of
// spellings. Aliases whose token sets are equal keep only the first spelling
// seen; an alias whose words are wholly contained in some longer surviving
// alias is dropped in favour of the more specific phrasing.
func Deduplicate(aliases []string) []string {
	type pair struct {
		set   TokenSet
		alias string
	}

	// First occurrence of each distinct token set wins. The insertion order
	// is tracked explicitly so the result is stable on input order.
	seen := make(map[string]struct{})
	var pairs []pair
	for _, a := range aliases {
		set := Clean(a)
		if len(set) == 0 {
			// A punctuation-only alias has no discriminative value.
			continue
		}
		key := set.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		pairs = append(pairs, pair{set, a})
	}

	// The subset pass requires ascending size: a set can only be a strict
	// subset of a strictly larger one.
	sort.SliceStable(pairs, func(i, j int) bool {
		return len(pairs[i].set) < len(pairs[j].set)
	})

	var survivors []string
	for i, p := range pairs {
		subset := false
		for _, q := range pairs[i:] {
			if p.set.SubsetOf(q.set) {
				subset = true
				break
			}
		}
		if !subset {
			survivors = append(survivors, p.alias)
		}
	}

	// Back to alphabetical at the end.
	sort.Strings(survivors)
	return survivors
}

// Gather merges the alias dump with each tune's display name into one alias
// group per tune id. The name leads every group: it is usually the most
// common name for the tune, so it is never deduped away and always comes
// first. Tune ids are opaque strings throughout.
func Gather(records []model.AliasRecord, tunes []model.SettingRecord) (map[string][]string, error) {
	groups := make(map[string][]string)
	for _, r := range records {
		groups[r.TuneID] = append(groups[r.TuneID], strings.ToLower(r.Alias))
	}

	for id := range groups {
		groups[id] = Deduplicate(groups[id])
	}

	for _, t := range tunes {
		name := strings.ToLower(t.Name)
		if name == "" {
			continue
		}
		group := groups[t.TuneID]
		// The name is identical across a tune's settings, so after the
		// first prepend every later setting sees it in front already.
		if len(group) > 0 && group[0] == name {
			continue
		}
		groups[t.TuneID] = append([]string{name}, remove(group, name)...)
	}

	// An empty group means the source corpus is corrupt; letting it through
	// would silently poison the search index.
	for id, group := range groups {
		if len(group) == 0 {
			return nil, fmt.Errorf("tune %v has an empty alias group", id)
		}
	}

	return groups, nil
}

func remove(list []string, s string) []string {
	var out []string
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
