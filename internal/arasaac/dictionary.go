package arasaac

import "strings"

// Dictionary is a local term to pictogram-id lookup for one language,
// covering the vocabulary the built-in templates need without a network
// round trip. It is built once and read-only afterwards; construct it at
// startup and hand it to the client.
type Dictionary struct {
	lang  string
	terms map[string][]int
}

// NewDictionary builds a lookup for lang from a term to id-list mapping.
// Terms are matched case-insensitively.
func NewDictionary(lang string, terms map[string][]int) *Dictionary {
	d := &Dictionary{
		lang:  lang,
		terms: make(map[string][]int, len(terms)),
	}
	for term, ids := range terms {
		d.terms[strings.ToLower(term)] = ids
	}
	return d
}

// Lang returns the language code this dictionary answers for.
func (d *Dictionary) Lang() string {
	return d.lang
}

// Lookup finds pictograms for a keyword: an exact term match wins, otherwise
// every term the keyword is a prefix of contributes its ids. Results are
// capped at MaxResults.
func (d *Dictionary) Lookup(keyword string) []Pictogram {
	key := strings.ToLower(strings.TrimSpace(keyword))
	if key == "" {
		return nil
	}

	var ids []int
	if exact, ok := d.terms[key]; ok {
		ids = exact
	} else {
		seen := map[int]bool{}
		for term, termIDs := range d.terms {
			if !strings.HasPrefix(term, key) {
				continue
			}
			for _, id := range termIDs {
				if !seen[id] {
					seen[id] = true
					ids = append(ids, id)
				}
			}
		}
	}

	if len(ids) > MaxResults {
		ids = ids[:MaxResults]
	}

	results := make([]Pictogram, 0, len(ids))
	for _, id := range ids {
		results = append(results, Pictogram{
			ID:       id,
			Keywords: []Keyword{{Keyword: key, Locale: d.lang}},
		})
	}
	return results
}

// SwedishTerms is the bundled Swedish vocabulary. Ids overlap with the
// built-in templates so template images resolve from the same cache.
func SwedishTerms() map[string][]int {
	return map[string][]int{
		"vakna":         {8988},
		"frukost":       {4625},
		"klä på sig":    {2781},
		"borsta tänder": {2326},
		"skola":         {3082},
		"lunch":         {4609},
		"komma hem":     {6964},
		"mellanmål":     {4694},
		"leka":          {11653},
		"fritid":        {11653},
		"middag":        {4592},
		"god natt":      {6942},
		"sova":          {6027},
		"vila":          {3299},
		"äta":           {4625, 4609, 4592},
		"bada":          {2326},
		"utomhus":       {11653},
	}
}
