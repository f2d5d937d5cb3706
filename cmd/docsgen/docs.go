package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/appengine-ltd/kingdom/internal/catalog"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func generateIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Card Sets\n\n")
	b.WriteString("Generated from the card catalog using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateSetDocs(cat *catalog.Catalog) []docFile {
	bySet := map[string][]catalog.Card{}
	for _, c := range cat.Cards() {
		bySet[c.Set] = append(bySet[c.Set], c)
	}
	files := make([]docFile, 0, len(bySet))
	for _, set := range cat.Sets() {
		files = append(files, generateSetDoc(cat, set, bySet[set]))
	}
	return files
}

func generateSetDoc(cat *catalog.Catalog, set string, items []catalog.Card) docFile {
	sort.Slice(items, func(i, j int) bool {
		si, sj := catalog.IsSupply(items[i]), catalog.IsSupply(items[j])
		if si != sj {
			return si
		}
		return items[i].Name < items[j].Name
	})

	supply := 0
	for _, c := range items {
		if catalog.IsSupply(c) {
			supply++
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("# %s\n\n", escape(set)))
	b.WriteString(fmt.Sprintf("Total cards: **%d** (%d supply).\n\n", len(items), supply))
	b.WriteString("| Name | Types | Cost | Supply | Referenced | Recommended With |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
	for _, c := range items {
		b.WriteString("| ")
		b.WriteString(escape(c.Name))
		b.WriteString(" | ")
		b.WriteString(escape(c.Types))
		b.WriteString(" | ")
		b.WriteString(escape(c.Cost))
		b.WriteString(" | ")
		b.WriteString(yesNo(catalog.IsSupply(c)))
		b.WriteString(" | ")
		b.WriteString(fmt.Sprintf("%d", cat.Normalization(c.Name)))
		b.WriteString(" | ")
		b.WriteString(escape(strings.Join(c.Recommended, ", ")))
		b.WriteString(" |\n")
	}

	return docFile{Name: slug(set) + ".md", Title: set, Content: b.String()}
}

func slug(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	var b strings.Builder
	lastDash := false
	for _, r := range v {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash && b.Len() > 0 {
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
